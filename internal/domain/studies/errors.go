package studies

import "aurora-app-go/internal/domain/records"

var (
	ErrTopicNotFound = records.NotFoundError("study topic not found")
	ErrBookNotFound  = records.NotFoundError("book not found")
	ErrTopicRequired = records.IncompleteError("subject and topic are required")
	ErrTitleRequired = records.IncompleteError("book title is required")
	ErrInvalidStatus = records.InvalidError("invalid status")
	ErrInvalidRating = records.InvalidError("rating must be between 1 and 5")
)
