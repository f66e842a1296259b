package finances

import "aurora-app-go/internal/domain/records"

var (
	ErrTransactionNotFound = records.NotFoundError("transaction not found")
	ErrDescriptionRequired = records.IncompleteError("description is required")
	ErrAmountRequired      = records.IncompleteError("amount is required")
	ErrNegativeAmount      = records.InvalidError("amount must not be negative")
	ErrInvalidType         = records.InvalidError("unknown transaction type")
)
