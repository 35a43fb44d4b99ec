package services

import (
	"context"
	"fmt"
	"log"
	"time"
	"trip-bot-service/internal/ports"
)

const (
	TimeReportReminder = "time_report"

	defaultReminderInterval = time.Minute
)

// Reminder posts a template message to a channel on the last workday of
// each month, once, at or after a local time of day.
type Reminder struct {
	Name    string
	Channel string
	Hour    int
	Minute  int

	Calendar  ports.HolidayCalendar
	Poster    ports.ChatPoster
	Store     ports.ReminderStore
	Templates ports.MessageTemplates

	Location *time.Location
	Now      func() time.Time
	Interval time.Duration
}

// Run checks immediately and then once per Interval until ctx is done.
func (r *Reminder) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = defaultReminderInterval
	}

	r.check(ctx)

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.check(ctx)
		}
	}
}

func (r *Reminder) check(ctx context.Context) {
	posted, err := r.Tick(ctx)
	if err != nil {
		log.Printf("reminder=%s tick: %v", r.Name, err)
		return
	}
	if posted {
		log.Printf("reminder=%s posted channel=%s", r.Name, r.Channel)
	}
}

// Tick runs one scheduling decision and reports whether a message was posted.
// Days that are not the last workday are marked as handled so the calendar is
// consulted at most once per day.
func (r *Reminder) Tick(ctx context.Context) (bool, error) {
	now := localNow(r.Now, r.Location)
	due := time.Date(now.Year(), now.Month(), now.Day(), r.Hour, r.Minute, 0, 0, now.Location())
	if now.Before(due) {
		return false, nil
	}

	lastRun, err := r.Store.LastRun(ctx, r.Name)
	if err != nil {
		return false, fmt.Errorf("reminder %s: %w", r.Name, err)
	}
	if !lastRun.IsZero() && sameDate(lastRun, now) {
		return false, nil
	}

	_, today, err := lastWorkdayOfMonth(ctx, r.Calendar, now)
	if err != nil {
		return false, fmt.Errorf("reminder %s: %w", r.Name, err)
	}
	if !today {
		return false, r.markRun(ctx, now)
	}

	channelID, err := r.Poster.ChannelIDByName(ctx, r.Channel)
	if err != nil {
		return false, fmt.Errorf("reminder %s: resolve channel %q: %w", r.Name, r.Channel, err)
	}
	if err := r.Poster.PostMessage(ctx, channelID, r.Templates.Message(r.Name)); err != nil {
		return false, fmt.Errorf("reminder %s: post: %w", r.Name, err)
	}

	return true, r.markRun(ctx, now)
}

func (r *Reminder) markRun(ctx context.Context, now time.Time) error {
	if err := r.Store.MarkRun(ctx, r.Name, now); err != nil {
		return fmt.Errorf("reminder %s: mark run: %w", r.Name, err)
	}
	return nil
}
