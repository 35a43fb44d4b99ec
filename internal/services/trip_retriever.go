package services

import (
	"context"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/ports"
)

// TripQuery pairs the resolved stations with the names the user typed.
type TripQuery struct {
	FromName string
	ToName   string
	From     domain.StationCandidate
	To       domain.StationCandidate
}

// RetrieveTrips lists itineraries in planner order. Any planner failure
// becomes *domain.TripRetrievalError named after the user's text.
func RetrieveTrips(ctx context.Context, planner ports.TripPlanner, q TripQuery) ([]domain.Itinerary, error) {
	trips, err := planner.ListTrips(ctx, q.From.SiteID, q.To.SiteID)
	if err != nil {
		return nil, &domain.TripRetrievalError{From: q.FromName, To: q.ToName, Err: err}
	}
	return trips, nil
}
