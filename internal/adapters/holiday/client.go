package holiday

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
	"trip-bot-service/internal/platform/obs"
)

const DefaultBaseURL = "https://sholiday.faboul.se/dagar/v2.1"

// Client reads the Swedish day calendar published by sholiday.faboul.se.
type Client struct {
	session *http.Client
	baseURL string
}

func NewClient(baseURL string, timeout time.Duration) *Client {
	if strings.TrimSpace(baseURL) == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		session: &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

type monthResponse struct {
	Days []struct {
		Date    string `json:"datum"`
		DayOff  string `json:"arbetsfri dag"`
		Weekday string `json:"veckodag"`
	} `json:"dagar"`
}

// LastWorkday returns the last day of date's month that is not work-free.
// The result is midnight UTC on that calendar date.
func (c *Client) LastWorkday(ctx context.Context, date time.Time) (last time.Time, err error) {
	defer obs.Time(ctx, "holiday.LastWorkday")(&err)

	endpoint := fmt.Sprintf("%s/%d/%02d", c.baseURL, date.Year(), int(date.Month()))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return time.Time{}, fmt.Errorf("holiday: build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.session.Do(req)
	if err != nil {
		return time.Time{}, fmt.Errorf("holiday: do request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(res.Body, 4<<10))
		return time.Time{}, fmt.Errorf("holiday: status %d: %s", res.StatusCode, strings.TrimSpace(string(body)))
	}

	var month monthResponse
	if err := json.NewDecoder(res.Body).Decode(&month); err != nil {
		return time.Time{}, fmt.Errorf("holiday: decode response: %w", err)
	}

	for i := len(month.Days) - 1; i >= 0; i-- {
		day := month.Days[i]
		if day.DayOff != "Nej" {
			continue
		}
		t, err := time.Parse(time.DateOnly, day.Date)
		if err != nil {
			return time.Time{}, fmt.Errorf("holiday: parse date %q: %w", day.Date, err)
		}
		return t, nil
	}

	return time.Time{}, errors.New("holiday: month has no workdays")
}
