package app

import (
	"context"
	"net/http"

	"aurora-app-go/internal/config"
	"aurora-app-go/internal/identity/supabase"
	"aurora-app-go/internal/transport/httpserver"
	"aurora-app-go/internal/transport/httpserver/handler"
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
	authmw "aurora-app-go/internal/transport/httpserver/middleware"
	"aurora-app-go/pkg/logger"
)

type App struct {
	cfg        config.Config
	httpServer *http.Server
	storage    *Storage
}

func New(log logger.Logger) (*App, error) {
	log.Info("app: loading config")
	cfg, err := config.Load(log)
	if err != nil {
		return nil, err
	}

	client := supabase.New(cfg.Supabase)

	log.Info("app: initializing storage", "driver", cfg.Storage.Driver, "local_mode", cfg.LocalMode())
	storage, err := OpenStorage(context.Background(), cfg, client, log)
	if err != nil {
		return nil, err
	}

	services := NewServices(cfg, storage, log)

	var (
		verifier authmw.IdentityVerifier
		auth     accounthandler.Authenticator
	)
	if client.Configured() {
		auth = client
		if !cfg.LocalMode() {
			verifier = client
		}
	}

	log.Info("app: initializing router")
	router := httpserver.NewRouter(cfg, NewHandlers(cfg, services, storage, auth, log), verifier, services.Users, log)

	log.Info("app: initializing http server")
	srv := httpserver.New(cfg, router, log)

	return &App{
		cfg:        cfg,
		httpServer: srv,
		storage:    storage,
	}, nil
}

func NewHandlers(cfg config.Config, services *Services, storage *Storage, auth accounthandler.Authenticator, log logger.Logger) *handler.Handlers {
	return &handler.Handlers{
		Common:    commonhandler.New(cfg.Storage.Driver),
		Account:   accounthandler.New(services.Users, storage.Records, auth, log),
		Dashboard: dashboardhandler.New(services.Dashboard, log),
		Reminders: remindershandler.New(services.Reminders, log),
		Habits:    habitshandler.New(services.Habits, log),
		Nutrition: nutritionhandler.New(services.Nutrition, log),
		Workout:   workouthandler.New(services.Workout, log),
		Home:      homehandler.New(services.Home, log),
		Studies:   studieshandler.New(services.Studies, log),
		Finances:  financeshandler.New(services.Finances, log),
		Work:      workhandler.New(services.Work, log),
		Health:    healthhandler.New(services.Health, log),
	}
}

func (a *App) HTTPServer() *http.Server {
	return a.httpServer
}

func (a *App) Close() error {
	if a.storage == nil {
		return nil
	}
	return a.storage.Close()
}
