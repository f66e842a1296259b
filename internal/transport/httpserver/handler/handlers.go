package handler

import (
	accounthandler "aurora-app-go/internal/transport/httpserver/handler/account"
	commonhandler "aurora-app-go/internal/transport/httpserver/handler/common"
	dashboardhandler "aurora-app-go/internal/transport/httpserver/handler/dashboard"
	financeshandler "aurora-app-go/internal/transport/httpserver/handler/finances"
	habitshandler "aurora-app-go/internal/transport/httpserver/handler/habits"
	healthhandler "aurora-app-go/internal/transport/httpserver/handler/health"
	homehandler "aurora-app-go/internal/transport/httpserver/handler/home"
	nutritionhandler "aurora-app-go/internal/transport/httpserver/handler/nutrition"
	remindershandler "aurora-app-go/internal/transport/httpserver/handler/reminders"
	studieshandler "aurora-app-go/internal/transport/httpserver/handler/studies"
	workhandler "aurora-app-go/internal/transport/httpserver/handler/work"
	workouthandler "aurora-app-go/internal/transport/httpserver/handler/workout"
)

type Handlers struct {
	Common    *commonhandler.Handlers
	Account   *accounthandler.Handlers
	Dashboard *dashboardhandler.Handlers
	Reminders *remindershandler.Handlers
	Habits    *habitshandler.Handlers
	Nutrition *nutritionhandler.Handlers
	Workout   *workouthandler.Handlers
	Home      *homehandler.Handlers
	Studies   *studieshandler.Handlers
	Finances  *financeshandler.Handlers
	Work      *workhandler.Handlers
	Health    *healthhandler.Handlers
}
