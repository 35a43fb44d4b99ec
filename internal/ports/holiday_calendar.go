package ports

import (
	"context"
	"time"
)

// Contract for the public-holiday calendar.
type HolidayCalendar interface {
	// Return the last non-work-free day of the month containing date.
	LastWorkday(ctx context.Context, date time.Time) (time.Time, error)
}
