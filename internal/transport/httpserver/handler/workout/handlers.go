package workout

import (
	workoutdomain "aurora-app-go/internal/domain/workout"
	"aurora-app-go/pkg/logger"
)

type Handlers struct {
	Workout *workoutdomain.Service
	log     logger.Logger
}

func New(workout *workoutdomain.Service, log logger.Logger) *Handlers {
	return &Handlers{
		Workout: workout,
		log:     log,
	}
}
