package services

import (
	"driver-assignment-service/internal/domain"
	"errors"
	"testing"
)

func TestAdjustedTimeHighTrafficDeadlineWins(t *testing.T) {
	e := NewTimeEstimator(DefaultTrafficFactors())
	route := domain.Route{RouteID: "R1", BaseTimeMin: 30, Traffic: domain.TrafficHigh}

	if got := e.EstimatedTime(route); got != 45 {
		t.Fatalf("estimated = %d, want 45", got)
	}

	deadline := ParseClock("08:30")
	if deadline != 510 {
		t.Fatalf("deadline = %d, want 510", deadline)
	}

	if got := e.AdjustedTime(route, deadline); got != 510 {
		t.Fatalf("adjusted = %d, want 510", got)
	}
}

func TestEstimatedTime(t *testing.T) {
	e := NewTimeEstimator(DefaultTrafficFactors())

	tests := []struct {
		name    string
		base    float64
		traffic domain.TrafficLevel
		want    int
	}{
		{name: "low", base: 60, traffic: domain.TrafficLow, want: 60},
		{name: "medium rounds down", base: 41, traffic: domain.TrafficMedium, want: 49},
		{name: "low half up", base: 34.5, traffic: domain.TrafficLow, want: 35},
		{name: "high half up", base: 25, traffic: domain.TrafficHigh, want: 38},
		{name: "zero", base: 0, traffic: domain.TrafficHigh, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.EstimatedTime(domain.Route{BaseTimeMin: tt.base, Traffic: tt.traffic})
			if got != tt.want {
				t.Fatalf("estimated = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestAdjustedTimeEstimateWins(t *testing.T) {
	e := NewTimeEstimator(nil)
	route := domain.Route{BaseTimeMin: 100, Traffic: domain.TrafficMedium}

	if got := e.AdjustedTime(route, 0); got != 120 {
		t.Fatalf("adjusted = %d, want 120", got)
	}
}

func TestNewTimeEstimatorOverridesFactors(t *testing.T) {
	e := NewTimeEstimator(TrafficFactors{domain.TrafficHigh: 2.0})

	if got := e.Multiplier(domain.TrafficHigh); got != 2.0 {
		t.Fatalf("high multiplier = %v, want 2", got)
	}
	if got := e.Multiplier(domain.TrafficMedium); got != 1.2 {
		t.Fatalf("medium multiplier = %v, want default 1.2", got)
	}
	if got := e.Multiplier(domain.TrafficLevel(99)); got != 1.0 {
		t.Fatalf("unknown level multiplier = %v, want low 1.0", got)
	}
}

func TestAnnotateUnknownRoute(t *testing.T) {
	e := NewTimeEstimator(nil)
	routes := map[string]domain.Route{"R1": {RouteID: "R1", BaseTimeMin: 10}}
	orders := []*domain.Order{
		{OrderID: "1", RouteID: "R1"},
		{OrderID: "2", RouteID: "R99"},
	}

	err := e.Annotate(orders, routes)
	if !errors.Is(err, ErrUnknownRoute) {
		t.Fatalf("err = %v, want ErrUnknownRoute", err)
	}

	var ure *UnknownRouteError
	if !errors.As(err, &ure) {
		t.Fatalf("err is not *UnknownRouteError: %T", err)
	}
	if ure.OrderID != "2" || ure.RouteID != "R99" {
		t.Fatalf("error identifies order=%q route=%q", ure.OrderID, ure.RouteID)
	}
}
