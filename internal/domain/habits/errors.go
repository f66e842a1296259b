package habits

import "aurora-app-go/internal/domain/records"

var (
	ErrHabitNotFound = records.NotFoundError("habit not found")
	ErrNameRequired  = records.IncompleteError("habit name is required")
	ErrInvalidGoal   = records.InvalidError("daily goal must be at least 1")
)
