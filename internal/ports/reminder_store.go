package ports

import (
	"context"
	"time"
)

// Port: persisted state for scheduled reminders.
type ReminderStore interface {
	// Return the last date the reminder ran, or zero time if never.
	LastRun(ctx context.Context, reminder string) (time.Time, error)
	MarkRun(ctx context.Context, reminder string, day time.Time) error
}
