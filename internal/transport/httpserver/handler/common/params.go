package common

import (
	"fmt"
	"strings"
	"time"
)

// ParseMonth reads a YYYY-MM value.
func ParseMonth(value string) (int, time.Month, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return 0, 0, fmt.Errorf("month is required")
	}
	parsed, err := time.Parse("2006-01", value)
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month")
	}
	return parsed.Year(), parsed.Month(), nil
}
