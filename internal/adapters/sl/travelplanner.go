package sl

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/url"
	"trip-bot-service/internal/domain"
	"trip-bot-service/internal/platform/obs"
)

type tripResponse struct {
	Trip []struct {
		LegList struct {
			Leg []wireLeg `json:"Leg"`
		} `json:"LegList"`
	} `json:"Trip"`
}

// wireLeg is the union of the WALK and JNY leg payloads, tagged by Type.
type wireLeg struct {
	Type        string   `json:"type"`
	Origin      wireStop `json:"Origin"`
	Destination wireStop `json:"Destination"`
	Name        string   `json:"name"`

	// JNY only
	Direction string `json:"direction"`
	Category  string `json:"category"`

	// WALK only
	Duration string `json:"duration"`
	Dist     int    `json:"dist"`
	Hide     *bool  `json:"hide"`
}

type wireStop struct {
	Name   string  `json:"name"`
	Time   string  `json:"time"`
	Date   string  `json:"date"`
	RtTime *string `json:"rtTime"`
	RtDate *string `json:"rtDate"`
}

// ListTrips returns the planner's itineraries in the order received.
// Trips without legs are skipped.
func (c *Client) ListTrips(
	ctx context.Context,
	originSiteID string,
	destinationSiteID string,
) (_ []domain.Itinerary, err error) {
	defer obs.Time(ctx, "sl.ListTrips")(&err)

	if originSiteID == "" || destinationSiteID == "" {
		return nil, errors.New("list trips: origin and destination must be non-empty")
	}

	q := url.Values{}
	q.Set("key", c.tripAPIKey)
	q.Set("originId", originSiteID)
	q.Set("destId", destinationSiteID)

	var decoded tripResponse
	if err := c.getJSON(ctx, c.baseURL+"/TravelplannerV3_1/trip.json", q, &decoded); err != nil {
		return nil, fmt.Errorf("list trips %q -> %q: %w", originSiteID, destinationSiteID, err)
	}

	out := make([]domain.Itinerary, 0, len(decoded.Trip))
	for i, trip := range decoded.Trip {
		if len(trip.LegList.Leg) == 0 {
			log.Printf("req_id=%s op=sl.ListTrips skip trip=%d reason=no_legs", obs.RequestID(ctx), i)
			continue
		}

		legs := make([]domain.Leg, 0, len(trip.LegList.Leg))
		for j, wl := range trip.LegList.Leg {
			leg, err := wl.toDomain()
			if err != nil {
				return nil, fmt.Errorf("list trips: trip %d leg %d: %w", i, j, err)
			}
			legs = append(legs, leg)
		}
		out = append(out, domain.Itinerary{Legs: legs})
	}

	return out, nil
}

func (w wireLeg) toDomain() (domain.Leg, error) {
	switch w.Type {
	case "WALK":
		return domain.WalkLeg{
			Origin:         w.Origin.toDomain(),
			Destination:    w.Destination.toDomain(),
			Duration:       w.Duration,
			DistanceMeters: w.Dist,
			Hide:           w.Hide,
		}, nil
	case "JNY":
		return domain.VehicleLeg{
			Origin:      w.Origin.toDomain(),
			Destination: w.Destination.toDomain(),
			Name:        w.Name,
			Direction:   w.Direction,
			Category:    parseCategory(w.Category),
		}, nil
	default:
		return nil, fmt.Errorf("unsupported leg type %q", w.Type)
	}
}

func (s wireStop) toDomain() domain.StationTimePoint {
	return domain.StationTimePoint{
		Name:         s.Name,
		Date:         s.Date,
		Time:         s.Time,
		RealTimeDate: s.RtDate,
		RealTimeTime: s.RtTime,
	}
}

func parseCategory(s string) domain.Category {
	switch s {
	case "TRN":
		return domain.CategoryTrain
	case "TRM":
		return domain.CategoryTram
	case "BUS":
		return domain.CategoryBus
	case "MET":
		return domain.CategoryMetro
	default:
		return domain.CategoryUnknown
	}
}
