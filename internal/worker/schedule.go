package worker

import (
	"fmt"
	"time"

	"github.com/riverqueue/river"
)

// DailySchedule fires once a day at a fixed UTC time of day.
type DailySchedule struct {
	hour   int
	minute int
}

// Ensure DailySchedule conforms to the river.PeriodicSchedule interface at compile time.
var _ river.PeriodicSchedule = DailySchedule{}

// ParseDailySchedule parses a "HH:MM" time of day, interpreted in UTC.
func ParseDailySchedule(at string) (DailySchedule, error) {
	t, err := time.Parse("15:04", at)
	if err != nil {
		return DailySchedule{}, fmt.Errorf("invalid daily schedule %q: %w", at, err)
	}

	return DailySchedule{hour: t.Hour(), minute: t.Minute()}, nil
}

// Next returns the first scheduled instant strictly after current.
func (d DailySchedule) Next(current time.Time) time.Time {
	current = current.UTC()
	next := time.Date(current.Year(), current.Month(), current.Day(), d.hour, d.minute, 0, 0, time.UTC)
	if !next.After(current) {
		next = next.AddDate(0, 0, 1)
	}

	return next
}

func (d DailySchedule) String() string {
	return fmt.Sprintf("daily at %02d:%02d UTC", d.hour, d.minute)
}
