package validators

import (
	"strings"
	"time"

	"github.com/dailydoit/dailydoit/models"
)

// ParseDay parses a "YYYY-MM-DD" calendar date into UTC midnight.
func ParseDay(s string) (time.Time, error) {
	day, err := time.Parse(models.DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, newValidationError(FieldDate, MsgInvalidDate)
	}
	return day, nil
}

// IsFutureDay reports whether day lies after the calendar date of now.
// Only the date part is compared.
func IsFutureDay(day, now time.Time) bool {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	return day.After(today)
}

// ParsePastDay parses s like [ParseDay] and additionally rejects dates after
// the calendar date of now.
func ParsePastDay(s string, now time.Time) (time.Time, error) {
	day, err := ParseDay(s)
	if err != nil {
		return time.Time{}, err
	}
	if IsFutureDay(day, now) {
		return time.Time{}, newValidationError(FieldDate, MsgDateInFuture)
	}
	return day, nil
}
