package health

import "aurora-app-go/internal/domain/records"

var (
	ErrExamNotFound  = records.NotFoundError("exam not found")
	ErrDateRequired  = records.IncompleteError("exam date is required")
	ErrInvalidDate   = records.InvalidError("exam date must be formatted as YYYY-MM-DD")
	ErrUnknownMetric = records.InvalidError("unknown health metric")
)
