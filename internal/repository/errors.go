package repository

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrNotFound marks a lookup whose target, or a required parent
	// reference, does not exist for the tenant.
	ErrNotFound = errors.New("record not found")

	// ErrInvalidDate marks a date string that could not be parsed.
	ErrInvalidDate = errors.New("invalid date")
)

// dateLayouts are the accepted calendar-date formats, tried in order.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"01/02/2006",
}

// ParseDate parses an ISO-style date string and normalizes it to
// midnight UTC so stored dates compare by calendar day.
func ParseDate(value string) (time.Time, error) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, value)
}
