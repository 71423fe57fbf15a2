package domain

import (
	"fmt"
	"time"
)

// timeOfDayLayout is the 24-hour, zero-padded, seconds-free format used for
// Event.StartTime and Event.EndTime.
const timeOfDayLayout = "15:04"

// TimeOfDay is a wall-clock time with minute precision.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// TimeOfDayOf extracts the hour and minute of t in t's own location.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}
}

// ParseTimeOfDay parses an "HH:mm" string such as "09:05" or "23:30".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	// time.Parse accepts single-digit hours for "15"; insist on the zero-padded form.
	t, err := time.Parse(timeOfDayLayout, s)
	if err != nil || len(s) != len(timeOfDayLayout) {
		return TimeOfDay{}, fmt.Errorf("%w: time %q must be HH:mm", ErrValidation, s)
	}
	return TimeOfDayOf(t), nil
}

// Valid reports whether the hour and minute are within a single day.
func (t TimeOfDay) Valid() bool {
	return t.Hour >= 0 && t.Hour < 24 && t.Minute >= 0 && t.Minute < 60
}

// String formats t as "HH:mm".
func (t TimeOfDay) String() string {
	return time.Date(0, time.January, 1, t.Hour, t.Minute, 0, 0, time.UTC).Format(timeOfDayLayout)
}
