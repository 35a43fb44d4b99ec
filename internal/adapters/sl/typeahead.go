package sl

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/platform/obs"
)

type typeaheadResponse struct {
	StatusCode   int             `json:"StatusCode"`
	Message      *string         `json:"Message"`
	ResponseData []typeaheadSite `json:"ResponseData"`
}

type typeaheadSite struct {
	Name   string `json:"Name"`
	SiteID string `json:"SiteId"`
}

// SearchStations queries the typeahead endpoint. A non-zero StatusCode is an
// error; a zero StatusCode with no data yields an empty slice.
func (c *Client) SearchStations(
	ctx context.Context,
	query domain.StationQuery,
) (_ []domain.StationCandidate, err error) {
	defer obs.Time(ctx, "sl.SearchStations")(&err)

	if query.Name == "" {
		return nil, errors.New("search stations: name must be non-empty")
	}

	maxResults := query.MaxResults
	if maxResults <= 0 {
		maxResults = 1
	}

	q := url.Values{}
	q.Set("key", c.stationAPIKey)
	q.Set("searchstring", query.Name)
	q.Set("stationsonly", "false")
	q.Set("maxresults", strconv.Itoa(maxResults))

	var decoded typeaheadResponse
	if err := c.getJSON(ctx, c.baseURL+"/typeahead.json", q, &decoded); err != nil {
		return nil, fmt.Errorf("search stations %q: %w", query.Name, err)
	}

	if decoded.StatusCode != 0 {
		msg := ""
		if decoded.Message != nil {
			msg = *decoded.Message
		}
		return nil, fmt.Errorf("search stations %q: status %d: %s", query.Name, decoded.StatusCode, msg)
	}

	out := make([]domain.StationCandidate, 0, len(decoded.ResponseData))
	for _, s := range decoded.ResponseData {
		out = append(out, domain.StationCandidate{Name: s.Name, SiteID: s.SiteID})
	}

	return out, nil
}
