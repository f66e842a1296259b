package home

import "aurora-app-go/internal/domain/records"

var (
	ErrItemNotFound    = records.NotFoundError("shopping item not found")
	ErrNameRequired    = records.IncompleteError("item name is required")
	ErrInvalidCategory = records.InvalidError("unknown shopping category")
)
