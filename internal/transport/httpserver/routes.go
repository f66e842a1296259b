package httpserver

import (
	"log/slog"
	"net/http"
	"time"

	"aurora-app-go/internal/config"
	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/transport/httpserver/handler"
	authmw "aurora-app-go/internal/transport/httpserver/middleware"
	"aurora-app-go/pkg/logger"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

const requestTimeout = 30 * time.Second

// Sessions is what the router needs from the profile service.
type Sessions interface {
	authmw.ProfileResolver
	authmw.NamespaceResolver
}

func NewRouter(cfg config.Config, handlers *handler.Handlers, verifier authmw.IdentityVerifier, sessions Sessions, log logger.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestLogger(&chimw.DefaultLogFormatter{Logger: log.StdLogger(slog.LevelInfo), NoColor: true}))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(requestTimeout))
	r.Use(authmw.SecurityHeaders)
	r.Use(authmw.NewCORS(cfg.AllowedOrigins))

	r.Route("/api", func(r chi.Router) {
		r.Get("/health", handlers.Common.Health)

		limiter := authmw.NewRateLimiter(cfg.AuthRateLimit.Max, cfg.AuthRateLimit.Window)
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/auth/signin", handlers.Account.SignIn)
			r.Post("/auth/signup", handlers.Account.SignUp)
		})

		auth := authmw.NewSupabaseAuth(cfg.Supabase, verifier, log)
		r.Group(func(r chi.Router) {
			r.Use(auth.Middleware)
			r.Use(authmw.Profiles(sessions, log))
			r.Use(authmw.Namespaces(sessions))

			r.Get("/auth/me", handlers.Account.AuthMe)
			r.Post("/auth/signout", handlers.Account.SignOut)

			r.Get("/profile", handlers.Account.GetProfile)
			r.Get("/subscription/tabs", handlers.Account.Tabs)

			r.Post("/billing/checkout", handlers.Account.Checkout)
			r.Get("/billing/return", handlers.Account.ConfirmPayment)
			r.Post("/billing/upgrade", handlers.Account.Upgrade)

			r.Get("/data/export", handlers.Account.Export)
			r.Post("/data/reset", handlers.Account.Reset)

			r.Get("/dashboard", handlers.Dashboard.Summary)

			r.Get("/reminders", handlers.Reminders.List)
			r.Post("/reminders", handlers.Reminders.Create)
			r.Post("/reminders/{id}/toggle", handlers.Reminders.Toggle)
			r.Delete("/reminders/{id}", handlers.Reminders.Delete)

			r.Get("/habits", handlers.Habits.List)
			r.Post("/habits", handlers.Habits.Create)
			r.Put("/habits/goal", handlers.Habits.SetGoal)
			r.Post("/habits/{id}/toggle", handlers.Habits.Toggle)
			r.Delete("/habits/{id}", handlers.Habits.Delete)

			r.Get("/nutrition", handlers.Nutrition.Overview)
			r.Get("/nutrition/foods", handlers.Nutrition.SearchFoods)
			r.Get("/nutrition/bio", handlers.Nutrition.GetBiometrics)
			r.Put("/nutrition/bio", handlers.Nutrition.UpdateBiometrics)
			r.Post("/nutrition/meals", handlers.Nutrition.CreateMeal)
			r.Delete("/nutrition/meals/{meal_id}", handlers.Nutrition.DeleteMeal)
			r.Post("/nutrition/meals/{meal_id}/items", handlers.Nutrition.AddFood)
			r.Delete("/nutrition/meals/{meal_id}/items/{item_id}", handlers.Nutrition.RemoveFood)

			r.Get("/workout/lifting", handlers.Workout.ListLifts)
			r.Post("/workout/lifting", handlers.Workout.CreateLift)
			r.Delete("/workout/lifting/{id}", handlers.Workout.DeleteLift)
			r.Get("/workout/progress", handlers.Workout.Progress)
			r.Get("/workout/runs", handlers.Workout.ListRuns)
			r.Post("/workout/runs", handlers.Workout.CreateRun)
			r.Delete("/workout/runs/{id}", handlers.Workout.DeleteRun)
			r.Get("/workout/sheets", handlers.Workout.ListSheets)
			r.Post("/workout/sheets", handlers.Workout.CreateSheet)
			r.Delete("/workout/sheets/{sheet_id}", handlers.Workout.DeleteSheet)
			r.Post("/workout/sheets/{sheet_id}/exercises", handlers.Workout.AddExercise)
			r.Delete("/workout/sheets/{sheet_id}/exercises/{exercise_id}", handlers.Workout.RemoveExercise)

			r.Get("/home/shopping", handlers.Home.List)
			r.Post("/home/shopping", handlers.Home.Create)
			r.Post("/home/shopping/{id}/toggle", handlers.Home.Toggle)
			r.Delete("/home/shopping/{id}", handlers.Home.Delete)
			r.Post("/home/compare", handlers.Home.CompareUnitPrice)

			r.Get("/studies", handlers.Studies.Overview)
			r.Post("/studies/topics", handlers.Studies.CreateTopic)
			r.Put("/studies/topics/{id}/status", handlers.Studies.SetTopicStatus)
			r.Delete("/studies/topics/{id}", handlers.Studies.DeleteTopic)
			r.Post("/studies/books", handlers.Studies.CreateBook)
			r.Post("/studies/books/{id}/toggle", handlers.Studies.ToggleBook)
			r.Put("/studies/books/{id}/rating", handlers.Studies.RateBook)
			r.Delete("/studies/books/{id}", handlers.Studies.DeleteBook)

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequirePlan(subscription.TabFinances))
				r.Get("/finances", handlers.Finances.List)
				r.Get("/finances/summary", handlers.Finances.Summary)
				r.Post("/finances", handlers.Finances.Create)
				r.Delete("/finances/{id}", handlers.Finances.Delete)
			})

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequirePlan(subscription.TabWork))
				r.Get("/work/jobs", handlers.Work.ListJobs)
				r.Post("/work/jobs", handlers.Work.CreateJob)
				r.Delete("/work/jobs/{id}", handlers.Work.DeleteJob)
				r.Get("/work/tasks", handlers.Work.ListTasks)
				r.Post("/work/tasks", handlers.Work.CreateTask)
				r.Post("/work/tasks/{id}/toggle", handlers.Work.ToggleTask)
				r.Delete("/work/tasks/{id}", handlers.Work.DeleteTask)
				r.Get("/work/calendar", handlers.Work.Calendar)
				r.Post("/work/calendar/{date}/toggle", handlers.Work.ToggleDay)
			})

			r.Group(func(r chi.Router) {
				r.Use(authmw.RequirePlan(subscription.TabHealth))
				r.Get("/health/references", handlers.Health.References)
				r.Get("/health/exams", handlers.Health.ListExams)
				r.Post("/health/exams", handlers.Health.CreateExam)
				r.Delete("/health/exams/{id}", handlers.Health.DeleteExam)
				r.Get("/health/latest", handlers.Health.Latest)
				r.Get("/health/series/{metric}", handlers.Health.Series)
			})
		})
	})

	return r
}
