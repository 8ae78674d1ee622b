package services

import (
	"driver-assignment-service/internal/domain"
	"math"
)

// TrafficFactors maps a traffic level to its travel time multiplier.
type TrafficFactors map[domain.TrafficLevel]float64

func DefaultTrafficFactors() TrafficFactors {
	return TrafficFactors{
		domain.TrafficLow:    1.0,
		domain.TrafficMedium: 1.2,
		domain.TrafficHigh:   1.5,
	}
}

// TimeEstimator derives each order's adjusted duration from its route.
type TimeEstimator struct {
	factors TrafficFactors
}

// NewTimeEstimator copies factors; levels missing from factors keep their default multiplier.
func NewTimeEstimator(factors TrafficFactors) *TimeEstimator {
	table := DefaultTrafficFactors()
	for level, f := range factors {
		table[level] = f
	}
	return &TimeEstimator{factors: table}
}

func (e *TimeEstimator) Multiplier(level domain.TrafficLevel) float64 {
	if f, ok := e.factors[level]; ok {
		return f
	}
	return e.factors[domain.TrafficLow]
}

// EstimatedTime is the route base time scaled by traffic, rounded half up to whole minutes.
func (e *TimeEstimator) EstimatedTime(route domain.Route) int {
	return roundHalfUp(route.BaseTimeMin * e.Multiplier(route.Traffic))
}

// AdjustedTime returns max(estimated duration, deadline clock minutes).
// The comparison mixes a duration with a time of day; downstream totals depend on
// this exact formula, so it is kept as is.
func (e *TimeEstimator) AdjustedTime(route domain.Route, deadlineMin int) int {
	return max(e.EstimatedTime(route), deadlineMin)
}

// Annotate resolves every order's route and sets its traffic level and adjusted time.
// The first order whose route is missing aborts annotation with an *UnknownRouteError.
func (e *TimeEstimator) Annotate(orders []*domain.Order, routes map[string]domain.Route) error {
	for _, o := range orders {
		route, ok := routes[o.RouteID]
		if !ok {
			return &UnknownRouteError{OrderID: o.OrderID, RouteID: o.RouteID}
		}
		o.Traffic = route.Traffic
		o.AdjustedTimeMin = e.AdjustedTime(route, o.DeadlineMin)
	}
	return nil
}

func roundHalfUp(x float64) int {
	f := math.Floor(x)
	if x-f >= 0.5 {
		f++
	}
	return int(f)
}
