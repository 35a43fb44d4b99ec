package ports

import (
	"context"
	"trip-bot-service/internal/domain"
)

// Contract for the remote station-search service.
type StationSearcher interface {
	// Return candidates ranked by the provider. An empty slice with a nil
	// error means the search succeeded but matched nothing.
	SearchStations(ctx context.Context, query domain.StationQuery) ([]domain.StationCandidate, error)
}
