package sl

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"golang.org/x/time/rate"
)

const defaultBaseURL = "https://api.sl.se/api2"

type Config struct {
	BaseURL       string
	TripAPIKey    string
	StationAPIKey string
	// RequestsPerSecond throttles outgoing calls; zero disables throttling.
	RequestsPerSecond float64
	Timeout           time.Duration
}

// Client implements StationSearcher (typeahead) and TripPlanner
// (TravelplannerV3_1) against the SL open APIs.
//
// Every call is a single attempt. Transport errors, non-success statuses
// and undecodable payloads are returned to the caller unchanged.
//
// The client is safe for concurrent use.
type Client struct {
	session       *http.Client
	baseURL       string
	tripAPIKey    string
	stationAPIKey string
	limiter       *rate.Limiter
}

func NewClient(cfg Config) (*Client, error) {
	if strings.TrimSpace(cfg.TripAPIKey) == "" {
		return nil, errors.New("SL trip api key is empty")
	}
	if strings.TrimSpace(cfg.StationAPIKey) == "" {
		return nil, errors.New("SL station api key is empty")
	}

	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = defaultBaseURL
	}

	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}

	limiter := rate.NewLimiter(rate.Inf, 1)
	if cfg.RequestsPerSecond > 0 {
		limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}

	return &Client{
		session:       &http.Client{Timeout: timeout},
		baseURL:       baseURL,
		tripAPIKey:    cfg.TripAPIKey,
		stationAPIKey: cfg.StationAPIKey,
		limiter:       limiter,
	}, nil
}
