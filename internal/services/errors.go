package services

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRoute marks an order whose route_id does not resolve to a loaded route.
	// It aborts the whole run.
	ErrUnknownRoute = errors.New("unknown route reference")

	// ErrSourceIO marks failures of the input sources or output sinks, as opposed to
	// domain errors raised by planning.
	ErrSourceIO = errors.New("assignment source i/o")
)

// UnknownRouteError identifies the order and the route reference that failed to resolve.
type UnknownRouteError struct {
	OrderID string
	RouteID string
}

func (e *UnknownRouteError) Error() string {
	return fmt.Sprintf("%s: order %q references route %q", ErrUnknownRoute, e.OrderID, e.RouteID)
}

func (e *UnknownRouteError) Is(target error) bool { return target == ErrUnknownRoute }
