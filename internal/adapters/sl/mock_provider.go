package sl

import (
	"context"
	"sync"
	"trip-bot-service/internal/domain"
)

// MockProvider is an in-memory StationSearcher and TripPlanner.
// Unknown station names return an empty candidate list.
type MockProvider struct {
	mu        sync.Mutex
	stations  map[string][]domain.StationCandidate
	trips     map[string][]domain.Itinerary
	SearchErr map[string]error
	TripsErr  error

	Searches  []string
	TripCalls int
}

func NewMockProvider() *MockProvider {
	return &MockProvider{
		stations:  map[string][]domain.StationCandidate{},
		trips:     map[string][]domain.Itinerary{},
		SearchErr: map[string]error{},
	}
}

func (p *MockProvider) AddStation(query string, candidates ...domain.StationCandidate) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.stations[query] = candidates
}

func (p *MockProvider) AddTrips(originSiteID, destinationSiteID string, trips ...domain.Itinerary) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.trips[originSiteID+"|"+destinationSiteID] = trips
}

func (p *MockProvider) SearchStations(ctx context.Context, query domain.StationQuery) ([]domain.StationCandidate, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.Searches = append(p.Searches, query.Name)

	if err := p.SearchErr[query.Name]; err != nil {
		return nil, err
	}

	return p.stations[query.Name], nil
}

func (p *MockProvider) ListTrips(ctx context.Context, originSiteID, destinationSiteID string) ([]domain.Itinerary, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.TripCalls++

	if p.TripsErr != nil {
		return nil, p.TripsErr
	}

	return p.trips[originSiteID+"|"+destinationSiteID], nil
}

// Calls returns the number of remote calls recorded so far.
func (p *MockProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.Searches) + p.TripCalls
}
