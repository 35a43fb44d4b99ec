package services

import (
	"context"
	"fmt"
	"log"
	"strings"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/platform/obs"
	"trip-bot-service/internal/ports"

	"golang.org/x/sync/errgroup"
)

// TripWorkflow answers the trip slash command served at /take-me-home,
// whose text is "<from> <to>".
//
// HandleCommand acknowledges immediately and finishes the work on Runner,
// delivering the result (or a Swedish error text) through Deliverer.
type TripWorkflow struct {
	Searcher  ports.StationSearcher
	Planner   ports.TripPlanner
	Deliverer ports.Deliverer
	Runner    ports.TaskRunner
	Formatter *ItineraryFormatter
}

// HandleCommand validates text and schedules the lookup.
// It returns the text to show right away; a usage error is returned
// synchronously together with its message and nothing is scheduled.
func (w *TripWorkflow) HandleCommand(ctx context.Context, text, responseURL string) (string, error) {
	args := strings.Fields(text)
	if len(args) != 2 {
		err := &domain.UsageError{Text: text}
		return UserMessage(err), err
	}
	from, to := args[0], args[1]

	w.Runner.Go(ctx, "trip", func(ctx context.Context) {
		w.respond(ctx, from, to, responseURL)
	})

	return TripAckMessage, nil
}

func (w *TripWorkflow) respond(ctx context.Context, from, to, responseURL string) {
	msg, err := w.Plan(ctx, from, to)
	if err != nil {
		log.Printf("req_id=%s trip from=%q to=%q err=%v", obs.RequestID(ctx), from, to, err)
		if derr := w.Deliverer.DeliverText(ctx, responseURL, UserMessage(err)); derr != nil {
			log.Printf("req_id=%s trip deliver error text: %v", obs.RequestID(ctx), derr)
		}
		return
	}

	if err := w.Deliverer.DeliverMessage(ctx, responseURL, msg); err != nil {
		log.Printf("req_id=%s trip deliver itineraries: %v", obs.RequestID(ctx), err)
	}
}

// Plan resolves both stations concurrently, lists trips between them and
// formats the result. When both lookups fail the origin's error wins.
func (w *TripWorkflow) Plan(ctx context.Context, from, to string) (msg domain.FormattedMessage, err error) {
	defer obs.Time(ctx, "trip.Plan")(&err)

	var (
		origin, dest       domain.StationCandidate
		originErr, destErr error
	)

	var g errgroup.Group
	g.Go(func() error {
		origin, originErr = ResolveStation(ctx, w.Searcher, from)
		return originErr
	})
	g.Go(func() error {
		dest, destErr = ResolveStation(ctx, w.Searcher, to)
		return destErr
	})
	if err := g.Wait(); err != nil {
		if originErr != nil {
			return domain.FormattedMessage{}, fmt.Errorf("plan trip: resolve origin: %w", originErr)
		}
		return domain.FormattedMessage{}, fmt.Errorf("plan trip: resolve destination: %w", destErr)
	}

	trips, err := RetrieveTrips(ctx, w.Planner, TripQuery{FromName: from, ToName: to, From: origin, To: dest})
	if err != nil {
		return domain.FormattedMessage{}, fmt.Errorf("plan trip: %w", err)
	}

	return w.Formatter.Format(from, to, trips), nil
}
