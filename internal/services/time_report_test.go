package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestReporter(cal *fakeCalendar, now time.Time) (*TimeReporter, *recordingDeliverer) {
	deliverer := &recordingDeliverer{}
	return &TimeReporter{
		Calendar:  cal,
		Deliverer: deliverer,
		Runner:    &inlineRunner{},
		Pause:     2 * time.Second,
		Location:  testZone,
		Now:       fixedNow(now),
		Pick:      func(n int) int { return n - 1 },
	}, deliverer
}

func deliveredTexts(d *recordingDeliverer) []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	var out []string
	for _, x := range d.deliveries {
		out = append(out, x.text)
	}
	return out
}

func TestTimeReportOtherDay(t *testing.T) {
	cal := &fakeCalendar{last: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	r, deliverer := newTestReporter(cal, time.Date(2024, 5, 10, 12, 0, 0, 0, testZone))

	ack := r.HandleCommand(context.Background(), "https://hooks.example/t")

	assert.Equal(t, TimeReportAckMessage, ack)
	assert.Equal(t, []string{
		"Nu har jag gjort diverse uppslag och scrape:at nätet och det är inte förrän *2024-05-31* som du behöver tidrapportera!",
	}, deliveredTexts(deliverer))
}

func TestTimeReportToday(t *testing.T) {
	cal := &fakeCalendar{last: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	// 00:30 local is still the previous day in UTC.
	r, deliverer := newTestReporter(cal, time.Date(2024, 5, 31, 0, 30, 0, 0, testZone))

	r.HandleCommand(context.Background(), "https://hooks.example/t")

	assert.Equal(t, []string{
		"Okej, jag har kikat i kalendern och det är först *2024-05-31* som du behöver tidrapportera!",
		"... tömmer kvicksilver-depå",
		"... tömmer kvicksilver-depå",
		"... det är ju idag!",
	}, deliveredTexts(deliverer))

	runner := r.Runner.(*inlineRunner)
	assert.Equal(t, []string{"time_report", "time_report.message", "time_report.message", "time_report.message", "time_report.message"}, runner.names)
	assert.Equal(t, []time.Duration{2 * time.Second, 4 * time.Second, 6 * time.Second, 8 * time.Second}, runner.delays)
}

func TestTimeReportPausesDoNotHoldQueueSlots(t *testing.T) {
	cal := &fakeCalendar{last: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	r, deliverer := newTestReporter(cal, time.Date(2024, 5, 31, 9, 0, 0, 0, testZone))
	q := NewTaskQueue(1)
	r.Runner = q
	r.Pause = 100 * time.Millisecond

	r.HandleCommand(context.Background(), "https://hooks.example/t")

	tripDone := make(chan struct{})
	q.Go(context.Background(), "trip", func(ctx context.Context) { close(tripDone) })
	select {
	case <-tripDone:
	case <-time.After(80 * time.Millisecond):
		t.Fatal("trip task waited behind time-report pauses")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, q.Wait(ctx))
	assert.Len(t, deliveredTexts(deliverer), 4)
	assert.Equal(t, "... det är ju idag!", deliveredTexts(deliverer)[3])
}

func TestTimeReportCalendarFailure(t *testing.T) {
	cal := &fakeCalendar{err: errors.New("status 500")}
	r, deliverer := newTestReporter(cal, time.Date(2024, 5, 10, 12, 0, 0, 0, testZone))

	r.HandleCommand(context.Background(), "https://hooks.example/t")

	assert.Equal(t, []string{"Misslyckades stenhårt..."}, deliveredTexts(deliverer))
}

func TestMentionReplies(t *testing.T) {
	cal := &fakeCalendar{last: time.Date(2024, 5, 31, 0, 0, 0, 0, time.UTC)}
	m := &MentionResponder{
		Calendar:  cal,
		Templates: staticTemplates{authors: []string{"Anna", "Bo", "Cecilia"}},
		Location:  testZone,
		Now:       fixedNow(time.Date(2024, 5, 31, 9, 0, 0, 0, testZone)),
	}
	ctx := context.Background()

	assert.Equal(t, "template:introduction", m.Reply(ctx, "U1", "<@BOT>"))
	assert.Equal(t, pricingMessage, m.Reply(ctx, "U1", "<@BOT> pricing"))
	assert.Equal(t, "Mina skribenter är Anna, Bo och Cecilia", m.Reply(ctx, "U1", "<@BOT> skribenter"))
	assert.Equal(t,
		"Är du skön eller <@U1>? Tror du att _jag_ vet något om *vädret i morgon*? :joel:",
		m.Reply(ctx, "U1", "<@BOT> vädret i morgon"),
	)
	assert.Equal(t,
		"Okej, jag har kikat i kalendern och det är först *2024-05-31* som du behöver tidrapportera!\n\n... vänta\n... beräknar\n... det är ju idag!",
		m.Reply(ctx, "U1", "<@BOT> tid"),
	)

	cal.err = errors.New("down")
	assert.Equal(t, genericFailureMessage, m.Reply(ctx, "U1", "<@BOT> tid"))
}

func TestMentionHandlePosts(t *testing.T) {
	poster := &fakePoster{}
	m := &MentionResponder{Poster: poster, Templates: staticTemplates{}}

	require.NoError(t, m.Handle(context.Background(), "C42", "U1", "<@BOT> pricing"))
	assert.Equal(t, []post{{channelID: "C42", text: pricingMessage}}, poster.posts)

	poster.err = errors.New("not_in_channel")
	assert.Error(t, m.Handle(context.Background(), "C42", "U1", "<@BOT> pricing"))
}
