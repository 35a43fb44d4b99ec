package repositories

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"
	"trip-bot-service/internal/platform/obs"
)

// SQLReminderStore keeps reminder run dates in Postgres.
type SQLReminderStore struct {
	DB *sql.DB
}

func NewSQLReminderStore(db *sql.DB) *SQLReminderStore {
	return &SQLReminderStore{DB: db}
}

func (s *SQLReminderStore) LastRun(ctx context.Context, reminder string) (_ time.Time, err error) {
	defer obs.Time(ctx, "reminder.store.LastRun")(&err)

	if s.DB == nil {
		return time.Time{}, errors.New("reminder store: db is nil")
	}

	q := `
	SELECT last_run
	FROM reminder_runs
	WHERE reminder = $1;
	`

	var day string
	if err := s.DB.QueryRowContext(ctx, q, reminder).Scan(&day); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("get reminder run %q: %w", reminder, err)
	}

	return parseRunDate(reminder, day)
}

func (s *SQLReminderStore) MarkRun(ctx context.Context, reminder string, day time.Time) (err error) {
	defer obs.Time(ctx, "reminder.store.MarkRun")(&err)

	if s.DB == nil {
		return errors.New("reminder store: db is nil")
	}
	if strings.TrimSpace(reminder) == "" {
		return errors.New("mark reminder run: reminder must not be empty")
	}

	q := `
	INSERT INTO reminder_runs (reminder, last_run)
	VALUES ($1, $2)
	ON CONFLICT (reminder) DO UPDATE SET last_run = EXCLUDED.last_run;
	`

	if _, err := s.DB.ExecContext(ctx, q, reminder, day.Format(time.DateOnly)); err != nil {
		return fmt.Errorf("mark reminder run %q: %w", reminder, err)
	}
	return nil
}

// parseRunDate returns the stored calendar date as midnight UTC.
func parseRunDate(reminder, day string) (time.Time, error) {
	t, err := time.Parse(time.DateOnly, day)
	if err != nil {
		return time.Time{}, fmt.Errorf("get reminder run %q: parse %q: %w", reminder, day, err)
	}
	return t, nil
}
