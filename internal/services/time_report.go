package services

import (
	"context"
	"fmt"
	"log"
	"math/rand/v2"
	"time"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/ports"
)

const (
	TimeReportAckMessage     = "Ska ta en titt i kalendern..."
	timeReportFailureMessage = "Misslyckades stenhårt..."

	DefaultTimeReportPause = 2 * time.Second
)

var calculations = []string{
	"vänta",
	"beräknar",
	"processerar",
	"finurlar",
	"gnuggar halvledarna",
	"tömmer kvicksilver-depå",
}

// TimeReporter answers "/tidrapport": when is the last workday of the month?
type TimeReporter struct {
	Calendar  ports.HolidayCalendar
	Deliverer ports.Deliverer
	Runner    ports.TaskRunner
	Location  *time.Location
	Now       func() time.Time
	// Pause between deferred messages. Each message is its own task on
	// Runner, scheduled Pause after the previous one.
	Pause time.Duration
	// Pick returns a value in [0, n); nil uses math/rand.
	Pick func(n int) int
}

func (r *TimeReporter) HandleCommand(ctx context.Context, responseURL string) string {
	r.Runner.Go(ctx, "time_report", func(ctx context.Context) {
		r.respond(ctx, responseURL)
	})
	return TimeReportAckMessage
}

func (r *TimeReporter) respond(ctx context.Context, responseURL string) {
	msgs, err := r.Messages(ctx)
	if err != nil {
		log.Printf("req_id=%s time report: %v", obs.RequestID(ctx), err)
		msgs = []string{timeReportFailureMessage}
	}

	for i, msg := range msgs {
		r.Runner.GoAfter(ctx, time.Duration(i+1)*r.Pause, "time_report.message", func(ctx context.Context) {
			if err := r.Deliverer.DeliverText(ctx, responseURL, msg); err != nil {
				log.Printf("req_id=%s time report deliver: %v", obs.RequestID(ctx), err)
			}
		})
	}
}

// Messages returns the texts to send, in order.
func (r *TimeReporter) Messages(ctx context.Context) ([]string, error) {
	last, today, err := lastWorkdayOfMonth(ctx, r.Calendar, r.now())
	if err != nil {
		return nil, err
	}

	if !today {
		return []string{fmt.Sprintf(
			"Nu har jag gjort diverse uppslag och scrape:at nätet och det är inte förrän *%s* som du behöver tidrapportera!",
			last.Format(time.DateOnly),
		)}, nil
	}

	pick := r.Pick
	if pick == nil {
		pick = rand.IntN
	}
	return []string{
		fmt.Sprintf("Okej, jag har kikat i kalendern och det är först *%s* som du behöver tidrapportera!", last.Format(time.DateOnly)),
		"... " + calculations[pick(len(calculations))],
		"... " + calculations[pick(len(calculations))],
		"... det är ju idag!",
	}, nil
}

func (r *TimeReporter) now() time.Time {
	return localNow(r.Now, r.Location)
}

// lastWorkdayOfMonth looks up the last workday of today's month and reports
// whether it is today. today must already be in the reference location.
func lastWorkdayOfMonth(ctx context.Context, cal ports.HolidayCalendar, today time.Time) (time.Time, bool, error) {
	last, err := cal.LastWorkday(ctx, today)
	if err != nil {
		return time.Time{}, false, fmt.Errorf("last workday of %s: %w", today.Format("2006-01"), err)
	}
	return last, sameDate(last, today), nil
}

// sameDate compares calendar dates, each in its own location.
func sameDate(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

func localNow(now func() time.Time, loc *time.Location) time.Time {
	if now == nil {
		now = time.Now
	}
	if loc == nil {
		loc = time.Local
	}
	return now().In(loc)
}
