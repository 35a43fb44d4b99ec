package services

import (
	"context"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/ports"
)

// ResolveStation returns the best-ranked candidate for name.
//
// A failed search becomes *domain.StationLookupError and an empty result
// becomes *domain.StationNotFoundError, both carrying the user's text.
func ResolveStation(ctx context.Context, searcher ports.StationSearcher, name string) (domain.StationCandidate, error) {
	candidates, err := searcher.SearchStations(ctx, domain.StationQuery{Name: name, MaxResults: 1})
	if err != nil {
		return domain.StationCandidate{}, &domain.StationLookupError{Name: name, Err: err}
	}
	if len(candidates) == 0 {
		return domain.StationCandidate{}, &domain.StationNotFoundError{Name: name}
	}
	return candidates[0], nil
}
