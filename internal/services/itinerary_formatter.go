package services

import (
	"fmt"
	"time"
	"trip-bot-service/internal/domain"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	DefaultMaxItineraries = 3

	plannerDateTimeLayout = "2006-01-02 15:04:05"
)

var ordinalIcons = [...]string{
	":one:", ":two:", ":three:", ":four:", ":five:",
	":six:", ":seven:", ":eight:", ":nine:",
}

// ItineraryFormatter renders planner itineraries as chat blocks.
//
// The planner reports local wall-clock times without an offset. The formatter
// reads the reference zone's current UTC offset once per message and applies
// it to every timestamp in that message, so itineraries crossing a DST switch
// are off by the DST delta. Now is the only source of the current time.
type ItineraryFormatter struct {
	Location       *time.Location
	Now            func() time.Time
	MaxItineraries int
}

func NewItineraryFormatter(loc *time.Location, now func() time.Time) *ItineraryFormatter {
	if loc == nil {
		loc = time.UTC
	}
	if now == nil {
		now = time.Now
	}
	return &ItineraryFormatter{Location: loc, Now: now, MaxItineraries: DefaultMaxItineraries}
}

// Format never fails: unparseable timestamps and unknown categories degrade
// to textual fallbacks.
func (f *ItineraryFormatter) Format(from, to string, itineraries []domain.Itinerary) domain.FormattedMessage {
	blocks := []domain.Block{
		domain.Section(fmt.Sprintf("*Sökning:* %s _till_ %s", from, to)),
		domain.Context(":warning: *Tänk på att vissa byten kan innehålla förseningar*"),
	}

	limit := f.MaxItineraries
	if limit <= 0 {
		limit = DefaultMaxItineraries
	}
	if len(itineraries) > limit {
		itineraries = itineraries[:limit]
	}

	zone := f.plannerZone()
	for _, it := range itineraries {
		blocks = append(blocks, domain.Divider())
		blocks = append(blocks, f.legBlocks(it, zone)...)
		blocks = append(blocks, f.summaryBlock(it, zone))
	}

	return domain.FormattedMessage{Blocks: blocks}
}

// plannerZone is a fixed zone carrying the reference location's current offset.
func (f *ItineraryFormatter) plannerZone() *time.Location {
	name, offset := f.Now().In(f.Location).Zone()
	return time.FixedZone(name, offset)
}

func (f *ItineraryFormatter) legBlocks(it domain.Itinerary, zone *time.Location) []domain.Block {
	var blocks []domain.Block
	n := 0
	for _, leg := range it.Legs {
		switch l := leg.(type) {
		case domain.WalkLeg:
			if l.Hidden() {
				continue
			}
			n++
			blocks = append(blocks, walkBlocks(n, l)...)
		case domain.VehicleLeg:
			n++
			blocks = append(blocks, vehicleBlocks(n, l, zone)...)
		}
	}
	return blocks
}

func walkBlocks(n int, walk domain.WalkLeg) []domain.Block {
	return []domain.Block{
		domain.Section(fmt.Sprintf("%s Gå :walking:", ordinalIcon(n))),
		domain.FieldSection(
			"*Från*\n"+walk.Origin.Name,
			"*Till*\n"+walk.Destination.Name,
			"*Tid att gå:*\n"+walk.Duration,
			fmt.Sprintf("*Avstånd:*\n%d meter", walk.DistanceMeters),
		),
	}
}

func vehicleBlocks(n int, ride domain.VehicleLeg, zone *time.Location) []domain.Block {
	return []domain.Block{
		domain.Section(fmt.Sprintf("%s *%s* mot *%s* %s",
			ordinalIcon(n),
			capitalizeFirst(ride.Name),
			ride.Direction,
			CategoryIcon(ride.Category),
		)),
		domain.FieldSection(
			"*Från*\n"+ride.Origin.Name,
			"*Till*\n"+ride.Destination.Name,
			"*Avgår (preliminärt):*\n"+dateToken(ride.Origin, zone),
			"*Framme (preliminärt):*\n"+dateToken(ride.Destination, zone),
		),
	}
}

// summaryBlock uses the unfiltered legs, so hidden walks still count.
func (f *ItineraryFormatter) summaryBlock(it domain.Itinerary, zone *time.Location) domain.Block {
	now := f.Now().In(f.Location)

	origin, _ := it.Origin()
	dest, _ := it.Destination()

	start := f.effectiveOr(origin, zone, now)
	end := f.effectiveOr(dest, zone, now)

	return domain.Context(fmt.Sprintf(
		"Start: %s - Framme: %s - Total restid: %s\nTar du denna resa är du framme om ungefär %s",
		start.Format("15:04"),
		end.Format("15:04"),
		FormatDuration(end.Sub(start)),
		FormatDuration(end.Sub(now)),
	))
}

// effectiveOr returns p's effective time in the reference location, or
// fallback when it cannot be parsed.
func (f *ItineraryFormatter) effectiveOr(p domain.StationTimePoint, zone *time.Location, fallback time.Time) time.Time {
	t, ok := parseEffective(p, zone)
	if !ok {
		return fallback
	}
	return t.In(f.Location)
}

func parseEffective(p domain.StationTimePoint, zone *time.Location) (time.Time, bool) {
	t, err := time.ParseInLocation(plannerDateTimeLayout, p.EffectiveDate()+" "+p.EffectiveTime(), zone)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// dateToken renders a Slack date token, falling back to the raw strings.
func dateToken(p domain.StationTimePoint, zone *time.Location) string {
	t, ok := parseEffective(p, zone)
	if !ok {
		return p.EffectiveDate() + " " + p.EffectiveTime()
	}
	return fmt.Sprintf("<!date^%d^{date_short_pretty} %s|%s>", t.Unix(), t.Format("15:04"), t.Format("2006-01-02 15:04"))
}

func ordinalIcon(n int) string {
	if n >= 1 && n <= len(ordinalIcons) {
		return ordinalIcons[n-1]
	}
	return ":1234:"
}

// CategoryIcon maps a transport category to its chat emoji.
func CategoryIcon(c domain.Category) string {
	switch c {
	case domain.CategoryTrain:
		return ":bullettrain_front:"
	case domain.CategoryTram:
		return ":tram:"
	case domain.CategoryBus:
		return ":bus:"
	case domain.CategoryMetro:
		return ":metro:"
	default:
		return ":thonking:"
	}
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	// Casers are stateful; one per call.
	first := cases.Upper(language.Swedish).String(s[:size])
	return first + s[size:]
}
