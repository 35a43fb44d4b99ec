package ports

import (
	"context"
	"trip-bot-service/internal/domain"
)

// Contract for the remote trip-planner service.
type TripPlanner interface {
	// Return itineraries between two site ids in the planner's own order.
	ListTrips(ctx context.Context, originSiteID, destinationSiteID string) ([]domain.Itinerary, error)
}
