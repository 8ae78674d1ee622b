package services

import (
	"driver-assignment-service/internal/ports"
	"fmt"
)

// PlanningConfig is the static configuration captured by a Planner at construction.
type PlanningConfig struct {
	TrafficFactors  TrafficFactors
	CapacityEpsilon float64
}

func DefaultPlanningConfig() PlanningConfig {
	return PlanningConfig{
		TrafficFactors:  DefaultTrafficFactors(),
		CapacityEpsilon: DefaultCapacityEpsilon,
	}
}

// Planner turns raw records into a finished assignment Report.
// It has no I/O and keeps no state between calls.
type Planner struct {
	estimator *TimeEstimator
	scheduler *AssignmentScheduler
}

func NewPlanner(cfg PlanningConfig) *Planner {
	return &Planner{
		estimator: NewTimeEstimator(cfg.TrafficFactors),
		scheduler: NewAssignmentScheduler(NewCapacityTracker(cfg.CapacityEpsilon)),
	}
}

// Plan runs one scheduling pass over freshly built entities.
// An unresolvable route reference returns an *UnknownRouteError and no report.
func (p *Planner) Plan(
	driverRecords []ports.DriverRecord,
	orderRecords []ports.OrderRecord,
	routeRecords []ports.RouteRecord,
) (*Report, error) {
	routes := BuildRoutes(routeRecords)
	drivers := BuildDrivers(driverRecords)
	orders := BuildOrders(orderRecords)

	if err := p.estimator.Annotate(orders, routes); err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	sequence, err := p.scheduler.Schedule(orders, drivers)
	if err != nil {
		return nil, fmt.Errorf("plan: %w", err)
	}

	return BuildReport(drivers, sequence), nil
}
