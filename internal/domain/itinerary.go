package domain

// Transport category of a vehicle leg.
type Category int

const (
	CategoryUnknown Category = iota
	CategoryTrain
	CategoryTram
	CategoryBus
	CategoryMetro
)

func (c Category) String() string {
	switch c {
	case CategoryTrain:
		return "train"
	case CategoryTram:
		return "tram"
	case CategoryBus:
		return "bus"
	case CategoryMetro:
		return "metro"
	default:
		return "unknown"
	}
}

// A named stop on a leg with its scheduled and (optionally) real-time
// corrected wall-clock date and time, exactly as the planner reports them.
// Date is "2006-01-02" and Time is "15:04:05" in planner local time.
type StationTimePoint struct {
	Name         string
	Date         string
	Time         string
	RealTimeDate *string
	RealTimeTime *string
}

// EffectiveDate returns the real-time date when present, else the scheduled one.
func (p StationTimePoint) EffectiveDate() string {
	if p.RealTimeDate != nil {
		return *p.RealTimeDate
	}
	return p.Date
}

// EffectiveTime returns the real-time time when present, else the scheduled one.
func (p StationTimePoint) EffectiveTime() string {
	if p.RealTimeTime != nil {
		return *p.RealTimeTime
	}
	return p.Time
}

// Leg is one segment of an itinerary. It is implemented only by WalkLeg and
// VehicleLeg; switch on the concrete type to tell them apart.
type Leg interface {
	LegOrigin() StationTimePoint
	LegDestination() StationTimePoint
	isLeg()
}

// Walking segment between two stops.
// Hide is nil when the planner omitted the flag.
type WalkLeg struct {
	Origin         StationTimePoint
	Destination    StationTimePoint
	Duration       string
	DistanceMeters int
	Hide           *bool
}

func (w WalkLeg) LegOrigin() StationTimePoint      { return w.Origin }
func (w WalkLeg) LegDestination() StationTimePoint { return w.Destination }
func (WalkLeg) isLeg()                             {}

// Hidden reports whether the planner explicitly marked the walk as hidden.
func (w WalkLeg) Hidden() bool {
	return w.Hide != nil && *w.Hide
}

// Ride on a single vehicle (train, tram, bus, metro).
type VehicleLeg struct {
	Origin      StationTimePoint
	Destination StationTimePoint
	Name        string
	Direction   string
	Category    Category
}

func (v VehicleLeg) LegOrigin() StationTimePoint      { return v.Origin }
func (v VehicleLeg) LegDestination() StationTimePoint { return v.Destination }
func (VehicleLeg) isLeg()                             {}

// Represents one complete trip option.
// Legs is ordered and never empty for itineraries produced by a TripPlanner.
type Itinerary struct {
	Legs []Leg
}

// Origin returns the first leg's origin.
func (it Itinerary) Origin() (StationTimePoint, bool) {
	if len(it.Legs) == 0 {
		return StationTimePoint{}, false
	}
	return it.Legs[0].LegOrigin(), true
}

// Destination returns the last leg's destination.
func (it Itinerary) Destination() (StationTimePoint, bool) {
	if len(it.Legs) == 0 {
		return StationTimePoint{}, false
	}
	return it.Legs[len(it.Legs)-1].LegDestination(), true
}
