package analytics

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// InvalidInputError marks a malformed filter parameter, mapped to a 400 by
// the HTTP layer.
type InvalidInputError struct {
	Msg string
}

func (e *InvalidInputError) Error() string {
	return e.Msg
}

// parseOptionalDate accepts any common textual date format and truncates to
// the calendar date. An empty value means an open bound.
func parseOptionalDate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return nil, &InvalidInputError{Msg: fmt.Sprintf("invalid date %q: %v", value, err)}
	}
	date := time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC)
	return &date, nil
}

// parseOptionalISODate is the strict YYYY-MM-DD variant used by the
// transactions listing.
func parseOptionalISODate(raw string) (*time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return nil, nil
	}

	parsed, err := time.Parse("2006-01-02", value)
	if err != nil {
		return nil, &InvalidInputError{Msg: fmt.Sprintf("invalid date %q, expected YYYY-MM-DD", value)}
	}
	return &parsed, nil
}
