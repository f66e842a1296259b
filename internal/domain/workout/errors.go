package workout

import "aurora-app-go/internal/domain/records"

var (
	ErrLiftNotFound      = records.NotFoundError("lifting entry not found")
	ErrRunNotFound       = records.NotFoundError("cardio session not found")
	ErrSheetNotFound     = records.NotFoundError("training sheet not found")
	ErrExerciseRequired  = records.IncompleteError("exercise is required")
	ErrRunFieldsRequired = records.IncompleteError("distance and time are required")
	ErrSheetNameRequired = records.IncompleteError("sheet name is required")
	ErrInvalidCardioType = records.InvalidError("invalid cardio type")
	ErrInvalidIntensity  = records.InvalidError("invalid intensity")
	ErrNegativeValue     = records.InvalidError("values must not be negative")
)
