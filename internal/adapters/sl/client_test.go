package sl

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"trip-bot-service/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)

	c, err := NewClient(Config{BaseURL: srv.URL, TripAPIKey: "trip-key", StationAPIKey: "station-key"})
	require.NoError(t, err)
	return c
}

func TestNewClientRequiresKeys(t *testing.T) {
	_, err := NewClient(Config{StationAPIKey: "x"})
	assert.Error(t, err)

	_, err = NewClient(Config{TripAPIKey: "x"})
	assert.Error(t, err)
}

func TestSearchStations(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/typeahead.json", r.URL.Path)
		assert.Equal(t, "station-key", r.URL.Query().Get("key"))
		assert.Equal(t, "t-centr", r.URL.Query().Get("searchstring"))
		assert.Equal(t, "1", r.URL.Query().Get("maxresults"))
		_, _ = w.Write([]byte(`{"StatusCode":0,"ResponseData":[{"Name":"T-Centralen (Stockholm)","SiteId":"9001"},{"Name":"Other","SiteId":"2"}]}`))
	})

	got, err := c.SearchStations(context.Background(), domain.StationQuery{Name: "t-centr", MaxResults: 1})
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, domain.StationCandidate{Name: "T-Centralen (Stockholm)", SiteID: "9001"}, got[0])
}

func TestSearchStationsEmptyData(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"StatusCode":0}`))
	})

	got, err := c.SearchStations(context.Background(), domain.StationQuery{Name: "nowhere"})
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchStationsNonZeroStatus(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"StatusCode":1002,"Message":"Key is invalid"}`))
	})

	_, err := c.SearchStations(context.Background(), domain.StationQuery{Name: "x"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "status 1002")
	assert.Contains(t, err.Error(), "Key is invalid")
}

func TestSearchStationsHTTPError(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "nope", http.StatusServiceUnavailable)
	})

	_, err := c.SearchStations(context.Background(), domain.StationQuery{Name: "x"})
	require.Error(t, err)

	var he *httpStatusError
	require.True(t, errors.As(err, &he))
	assert.Equal(t, http.StatusServiceUnavailable, he.Code)
}

const tripFixture = `{
  "Trip": [
    {"LegList": {"Leg": [
      {"type": "WALK", "name": "Promenad", "duration": "PT0M", "dist": 0, "hide": true,
       "Origin": {"name": "A", "date": "2024-03-01", "time": "09:58:00"},
       "Destination": {"name": "A", "date": "2024-03-01", "time": "10:00:00"}},
      {"type": "JNY", "name": "tunnelbanans gröna linje 17", "direction": "Åkeshov", "category": "MET",
       "Origin": {"name": "A", "date": "2024-03-01", "time": "10:00:00", "rtTime": "10:02:00", "rtDate": "2024-03-01"},
       "Destination": {"name": "B", "date": "2024-03-01", "time": "10:20:00"}},
      {"type": "WALK", "name": "Promenad", "duration": "PT5M", "dist": 350,
       "Origin": {"name": "B", "date": "2024-03-01", "time": "10:20:00"},
       "Destination": {"name": "C", "date": "2024-03-01", "time": "10:25:00"}}
    ]}},
    {"LegList": {"Leg": []}},
    {"LegList": {"Leg": [
      {"type": "JNY", "name": "buss 4", "direction": "Radiohuset", "category": "XYZ",
       "Origin": {"name": "A", "date": "2024-03-01", "time": "10:05:00"},
       "Destination": {"name": "C", "date": "2024-03-01", "time": "10:40:00"}}
    ]}}
  ]
}`

func TestListTrips(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/TravelplannerV3_1/trip.json", r.URL.Path)
		assert.Equal(t, "trip-key", r.URL.Query().Get("key"))
		assert.Equal(t, "9001", r.URL.Query().Get("originId"))
		assert.Equal(t, "9192", r.URL.Query().Get("destId"))
		_, _ = w.Write([]byte(tripFixture))
	})

	trips, err := c.ListTrips(context.Background(), "9001", "9192")
	require.NoError(t, err)
	require.Len(t, trips, 2, "trip without legs is skipped")

	first := trips[0]
	require.Len(t, first.Legs, 3)

	walk, ok := first.Legs[0].(domain.WalkLeg)
	require.True(t, ok)
	assert.True(t, walk.Hidden())

	ride, ok := first.Legs[1].(domain.VehicleLeg)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryMetro, ride.Category)
	assert.Equal(t, "Åkeshov", ride.Direction)
	assert.Equal(t, "10:02:00", ride.Origin.EffectiveTime())

	lastWalk, ok := first.Legs[2].(domain.WalkLeg)
	require.True(t, ok)
	assert.Nil(t, lastWalk.Hide)
	assert.Equal(t, 350, lastWalk.DistanceMeters)
	assert.Equal(t, "PT5M", lastWalk.Duration)

	bus, ok := trips[1].Legs[0].(domain.VehicleLeg)
	require.True(t, ok)
	assert.Equal(t, domain.CategoryUnknown, bus.Category)
}

func TestListTripsMalformedPayload(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Trip": [`))
	})

	_, err := c.ListTrips(context.Background(), "1", "2")
	assert.Error(t, err)
}

func TestListTripsUnsupportedLeg(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"Trip":[{"LegList":{"Leg":[{"type":"TELEPORT"}]}}]}`))
	})

	_, err := c.ListTrips(context.Background(), "1", "2")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TELEPORT")
}

func TestParseCategory(t *testing.T) {
	cases := map[string]domain.Category{
		"TRN": domain.CategoryTrain,
		"TRM": domain.CategoryTram,
		"BUS": domain.CategoryBus,
		"MET": domain.CategoryMetro,
		"UUU": domain.CategoryUnknown,
		"":    domain.CategoryUnknown,
	}
	for in, want := range cases {
		assert.Equal(t, want, parseCategory(in), in)
	}
}
