package services

import (
	"driver-assignment-service/internal/domain"
	"driver-assignment-service/internal/ports"
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	leadingFloat = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)
	leadingInt   = regexp.MustCompile(`^[+-]?\d+`)
)

// parseLeadingFloat reads the longest numeric prefix of s ("7.5h" -> 7.5).
// Anything without a numeric prefix yields 0.
func parseLeadingFloat(s string) float64 {
	m := leadingFloat.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0
	}
	return v
}

func parseLeadingInt(s string) int {
	m := leadingInt.FindString(strings.TrimSpace(s))
	if m == "" {
		return 0
	}
	v, err := strconv.Atoi(m)
	if err != nil {
		return 0
	}
	return v
}

// ParseClock converts an "HH:MM" clock time to minutes since midnight.
// A missing or empty hour or minute part yields 0 for the whole value;
// a non-numeric part counts as 0.
func ParseClock(s string) int {
	parts := strings.Split(s, ":")
	if len(parts) < 2 || parts[0] == "" || parts[1] == "" {
		return 0
	}
	return parseLeadingInt(parts[0])*60 + parseLeadingInt(parts[1])
}

// ParsePastWeek splits a "|"-delimited list of daily hours.
// An empty field yields an empty sequence; tokens that are not numbers count as 0.
func ParsePastWeek(s string) []float64 {
	if s == "" {
		return []float64{}
	}

	tokens := strings.Split(s, "|")
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(strings.TrimSpace(tok), 64)
		if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
			v = 0
		}
		out = append(out, v)
	}
	return out
}

// BuildRoutes indexes route records by trimmed route id. A later duplicate id replaces an earlier one.
func BuildRoutes(records []ports.RouteRecord) map[string]domain.Route {
	routes := make(map[string]domain.Route, len(records))
	for _, r := range records {
		id := strings.TrimSpace(r.RouteID)
		routes[id] = domain.Route{
			RouteID:     id,
			DistanceKm:  parseLeadingFloat(r.DistanceKm),
			Traffic:     domain.ParseTrafficLevel(r.TrafficLevel),
			BaseTimeMin: parseLeadingFloat(r.BaseTimeMin),
		}
	}
	return routes
}

// BuildDrivers converts driver records in input order. Input order is the final
// tie-break when ranking candidates.
func BuildDrivers(records []ports.DriverRecord) []*domain.Driver {
	drivers := make([]*domain.Driver, 0, len(records))
	for _, r := range records {
		drivers = append(drivers, domain.NewDriver(
			r.Name,
			parseLeadingFloat(r.ShiftHours),
			ParsePastWeek(r.PastWeekHours),
		))
	}
	return drivers
}

// BuildOrders converts order records in input order. Adjusted time and traffic
// are filled in later by TimeEstimator.Annotate.
func BuildOrders(records []ports.OrderRecord) []*domain.Order {
	orders := make([]*domain.Order, 0, len(records))
	for _, r := range records {
		orders = append(orders, &domain.Order{
			OrderID:     strings.TrimSpace(r.OrderID),
			ValueRs:     parseLeadingFloat(r.ValueRs),
			RouteID:     strings.TrimSpace(r.RouteID),
			DeadlineMin: ParseClock(r.DeliveryTime),
		})
	}
	return orders
}
