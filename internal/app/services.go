package app

import (
	"aurora-app-go/internal/config"
	"aurora-app-go/internal/domain/dashboard"
	"aurora-app-go/internal/domain/finances"
	"aurora-app-go/internal/domain/habits"
	"aurora-app-go/internal/domain/health"
	"aurora-app-go/internal/domain/home"
	"aurora-app-go/internal/domain/nutrition"
	"aurora-app-go/internal/domain/reminders"
	"aurora-app-go/internal/domain/studies"
	userdomain "aurora-app-go/internal/domain/user"
	"aurora-app-go/internal/domain/work"
	"aurora-app-go/internal/domain/workout"
	"aurora-app-go/internal/repository/inmemory"
	"aurora-app-go/pkg/logger"
)

type Services struct {
	Users     *userdomain.Service
	Reminders *reminders.Service
	Habits    *habits.Service
	Finances  *finances.Service
	Nutrition *nutrition.Service
	Home      *home.Service
	Studies   *studies.Service
	Workout   *workout.Service
	Work      *work.Service
	Health    *health.Service
	Dashboard *dashboard.Service
}

func NewServices(cfg config.Config, storage *Storage, log logger.Logger) *Services {
	recs := storage.Records

	users := userdomain.NewService(recs, storage.Profiles, inmemory.NewUserCache[userdomain.Profile](), userdomain.Options{
		App:      cfg.Storage.Namespace,
		CacheTTL: cfg.Profile.CacheTTL,
		Timeout:  cfg.Profile.Timeout,
		Billing: userdomain.BillingOptions{
			PaymentLink:   cfg.Billing.PaymentLink,
			ReturnURL:     cfg.Billing.ReturnURL,
			RedirectDelay: cfg.Billing.RedirectDelay,
			SuccessParam:  cfg.Billing.SuccessParam,
			SuccessValue:  cfg.Billing.SuccessValue,
		},
	}, log.With("component", "profiles"))

	remindersService := reminders.NewService(recs)
	habitsService := habits.NewService(recs)
	financesService := finances.NewService(recs)
	nutritionService := nutrition.NewService(recs)

	return &Services{
		Users:     users,
		Reminders: remindersService,
		Habits:    habitsService,
		Finances:  financesService,
		Nutrition: nutritionService,
		Home:      home.NewService(recs),
		Studies:   studies.NewService(recs),
		Workout:   workout.NewService(recs),
		Work:      work.NewService(recs),
		Health:    health.NewService(recs),
		Dashboard: dashboard.NewService(habitsService, financesService, nutritionService, remindersService),
	}
}
