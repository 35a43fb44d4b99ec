package services

import (
	"context"
	"errors"
	"sync"
	"time"
	"trip-bot-service/internal/domain"
)

var testZone = time.FixedZone("CET", 3600)

func fixedNow(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

// inlineRunner runs tasks on the calling goroutine, ignoring delays.
type inlineRunner struct {
	names  []string
	delays []time.Duration
}

func (r *inlineRunner) Go(ctx context.Context, name string, task func(ctx context.Context)) {
	r.names = append(r.names, name)
	task(ctx)
}

func (r *inlineRunner) GoAfter(ctx context.Context, delay time.Duration, name string, task func(ctx context.Context)) {
	r.delays = append(r.delays, delay)
	r.Go(ctx, name, task)
}

type delivery struct {
	destination string
	text        string
	msg         *domain.FormattedMessage
}

type recordingDeliverer struct {
	mu         sync.Mutex
	deliveries []delivery
	err        error
}

func (d *recordingDeliverer) DeliverMessage(ctx context.Context, destination string, msg domain.FormattedMessage) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliveries = append(d.deliveries, delivery{destination: destination, msg: &msg})
	return d.err
}

func (d *recordingDeliverer) DeliverText(ctx context.Context, destination string, text string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.deliveries = append(d.deliveries, delivery{destination: destination, text: text})
	return d.err
}

func point(name, date, clock string) domain.StationTimePoint {
	return domain.StationTimePoint{Name: name, Date: date, Time: clock}
}

func metro(from, to, depart, arrive string) domain.VehicleLeg {
	return domain.VehicleLeg{
		Origin:      point(from, "2024-03-01", depart),
		Destination: point(to, "2024-03-01", arrive),
		Name:        "tunnelbanans gröna linje",
		Direction:   "Hässelby strand",
		Category:    domain.CategoryMetro,
	}
}

func walk(from, to, depart, arrive string, hide *bool) domain.WalkLeg {
	return domain.WalkLeg{
		Origin:         point(from, "2024-03-01", depart),
		Destination:    point(to, "2024-03-01", arrive),
		Duration:       "PT5M",
		DistanceMeters: 350,
		Hide:           hide,
	}
}

func blockTexts(msg domain.FormattedMessage) []string {
	var out []string
	for _, b := range msg.Blocks {
		if b.Text != "" {
			out = append(out, b.Text)
		}
		out = append(out, b.Fields...)
	}
	return out
}

type fakeCalendar struct {
	last  time.Time
	err   error
	calls int
}

func (c *fakeCalendar) LastWorkday(ctx context.Context, date time.Time) (time.Time, error) {
	c.calls++
	return c.last, c.err
}

type post struct {
	channelID string
	text      string
}

type fakePoster struct {
	channels map[string]string
	posts    []post
	err      error
}

func (p *fakePoster) ChannelIDByName(ctx context.Context, name string) (string, error) {
	id, ok := p.channels[name]
	if !ok {
		return "", errors.New("channel not found")
	}
	return id, nil
}

func (p *fakePoster) PostMessage(ctx context.Context, channelID string, text string) error {
	if p.err != nil {
		return p.err
	}
	p.posts = append(p.posts, post{channelID: channelID, text: text})
	return nil
}

type memoryReminderStore struct {
	runs map[string]time.Time
}

func (s *memoryReminderStore) LastRun(ctx context.Context, reminder string) (time.Time, error) {
	return s.runs[reminder], nil
}

func (s *memoryReminderStore) MarkRun(ctx context.Context, reminder string, day time.Time) error {
	if s.runs == nil {
		s.runs = map[string]time.Time{}
	}
	s.runs[reminder] = day
	return nil
}

type staticTemplates struct {
	authors []string
}

func (staticTemplates) Message(context string) string { return "template:" + context }

func (t staticTemplates) Authors() []string { return t.authors }
