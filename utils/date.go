package utils

import (
	"time"
)

// ParseTransactionDate accepts an RFC 3339 timestamp or a plain
// YYYY-MM-DD date as sent by the frontend date picker.
func ParseTransactionDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}
