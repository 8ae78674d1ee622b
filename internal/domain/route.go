package domain

import "strings"

// TrafficLevel is the congestion class of a Route.
type TrafficLevel int

const (
	TrafficLow TrafficLevel = iota
	TrafficMedium
	TrafficHigh
)

// ParseTrafficLevel maps a traffic label to its level, ignoring case and surrounding whitespace.
// Empty or unrecognized labels are treated as TrafficLow. This is policy, not an error.
func ParseTrafficLevel(s string) TrafficLevel {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "medium":
		return TrafficMedium
	case "high":
		return TrafficHigh
	default:
		return TrafficLow
	}
}

func (t TrafficLevel) String() string {
	switch t {
	case TrafficMedium:
		return "Medium"
	case TrafficHigh:
		return "High"
	default:
		return "Low"
	}
}

// Represents a delivery route loaded for a planning run.
// DistanceKm is informational only; BaseTimeMin drives time estimation.
// Routes are immutable once loaded.
type Route struct {
	RouteID     string
	DistanceKm  float64
	Traffic     TrafficLevel
	BaseTimeMin float64
}
