// Package timeparse turns human-entered dates and times into UTC instants.
package timeparse

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// ErrInvalid is wrapped by every parse failure.
var ErrInvalid = errors.New("invalid date/time")

// FieldError reports an out-of-range calendar field.
type FieldError struct {
	Field string
	Value int
	Min   int
	Max   int
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s %d out of range %d-%d", e.Field, e.Value, e.Min, e.Max)
}

// Is lets errors.Is match ErrInvalid.
func (e *FieldError) Is(target error) bool {
	return target == ErrInvalid
}

// Parse interprets s in loc and returns the instant in UTC. Strings that
// carry their own offset or zone keep it. A nil loc means UTC.
func Parse(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, fmt.Errorf("%w: empty", ErrInvalid)
	}
	if loc == nil {
		loc = time.UTC
	}

	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q: %v", ErrInvalid, s, err)
	}
	return t.UTC(), nil
}

// FromFields builds an instant from calendar fields read as wall-clock time
// in loc. Every field is range checked; a nil loc means UTC. Second may
// carry a fraction.
func FromFields(year, month, day, hour, minute int, second float64, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}

	checks := []struct {
		field    string
		v        int
		min, max int
	}{
		{"year", year, 1, 9999},
		{"month", month, 1, 12},
		{"day", day, 1, daysIn(year, month)},
		{"hour", hour, 0, 23},
		{"minute", minute, 0, 59},
	}
	for _, c := range checks {
		if c.v < c.min || c.v > c.max {
			return time.Time{}, &FieldError{Field: c.field, Value: c.v, Min: c.min, Max: c.max}
		}
	}
	if second < 0 || second >= 60 {
		return time.Time{}, &FieldError{Field: "second", Value: int(second), Min: 0, Max: 59}
	}

	whole := int(second)
	nsec := int((second - float64(whole)) * 1e9)
	return time.Date(year, time.Month(month), day, hour, minute, whole, nsec, loc).UTC(), nil
}

// daysIn returns the length of a month, or 31 when month itself is invalid
// so that the month check reports first.
func daysIn(year, month int) int {
	if month < 1 || month > 12 {
		return 31
	}
	return time.Date(year, time.Month(month)+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
