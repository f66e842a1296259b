package nutrition

import "aurora-app-go/internal/domain/records"

var (
	ErrMealNotFound      = records.NotFoundError("meal not found")
	ErrFoodNotFound      = records.NotFoundError("food not found in database")
	ErrMealNameRequired  = records.IncompleteError("meal name is required")
	ErrFoodNameRequired  = records.IncompleteError("food name is required")
	ErrCaloriesRequired  = records.IncompleteError("calories are required")
	ErrInvalidBiometrics = records.InvalidError("weight, height and age must not be negative")
)
