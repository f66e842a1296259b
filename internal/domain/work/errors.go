package work

import "aurora-app-go/internal/domain/records"

var (
	ErrJobNotFound      = records.NotFoundError("job not found")
	ErrTaskNotFound     = records.NotFoundError("task not found")
	ErrJobNameRequired  = records.IncompleteError("job name is required")
	ErrTaskTextRequired = records.IncompleteError("task text is required")
	ErrInvalidDay       = records.InvalidError("day must be formatted as YYYY-MM-DD")
	ErrInvalidMonth     = records.InvalidError("month must be between 1 and 12")
)
