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

// SQLite backed reminder run dates, used when no DATABASE_URL is set.
type SqliteReminderStore struct {
	DB *sql.DB
}

func NewSqliteReminderStore(db *sql.DB) *SqliteReminderStore {
	return &SqliteReminderStore{DB: db}
}

func (s *SqliteReminderStore) LastRun(ctx context.Context, reminder string) (_ time.Time, err error) {
	defer obs.Time(ctx, "reminder.sqlite.LastRun")(&err)

	if s.DB == nil {
		return time.Time{}, errors.New("reminder store: db is nil")
	}

	var day string
	err = s.DB.QueryRowContext(ctx, `SELECT last_run FROM reminder_runs WHERE reminder = ?;`, reminder).Scan(&day)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get reminder run %q: %w", reminder, err)
	}

	return parseRunDate(reminder, day)
}

func (s *SqliteReminderStore) MarkRun(ctx context.Context, reminder string, day time.Time) (err error) {
	defer obs.Time(ctx, "reminder.sqlite.MarkRun")(&err)

	if s.DB == nil {
		return errors.New("reminder store: db is nil")
	}
	if strings.TrimSpace(reminder) == "" {
		return errors.New("mark reminder run: reminder must not be empty")
	}

	q := `
	INSERT OR REPLACE INTO reminder_runs (
		reminder,
		last_run
	)
	VALUES (?, ?);
	`

	if _, err := s.DB.ExecContext(ctx, q, reminder, day.Format(time.DateOnly)); err != nil {
		return fmt.Errorf("mark reminder run %q: %w", reminder, err)
	}
	return nil
}
