package domain

// Free-text station search sent to the station-search service.
type StationQuery struct {
	Name       string
	MaxResults int
}

// A station returned by the station-search service.
// SiteID is the opaque key the trip planner expects.
type StationCandidate struct {
	Name   string
	SiteID string
}
