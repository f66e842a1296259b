package records

import (
	"fmt"

	"github.com/google/uuid"
)

// NewID returns a time-ordered (UUIDv7) identifier so ids sort in creation
// order.
func NewID() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return id.String(), nil
}
