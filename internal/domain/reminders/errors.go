package reminders

import "aurora-app-go/internal/domain/records"

var (
	ErrReminderNotFound = records.NotFoundError("reminder not found")
	ErrTextRequired     = records.IncompleteError("reminder text is required")
)
