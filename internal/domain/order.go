package domain

// Represents a single delivery order for one planning run.
// DeadlineMin is the delivery clock time in minutes since midnight.
// AdjustedTimeMin is filled in by time estimation before scheduling, and
// AssignedTo is set at most once by the scheduler.
type Order struct {
	OrderID         string
	ValueRs         float64
	RouteID         string
	DeadlineMin     int
	Traffic         TrafficLevel
	AdjustedTimeMin int
	AssignedTo      *Driver
}

// IsAssigned reports whether a driver has been committed to the order.
func (o *Order) IsAssigned() bool { return o.AssignedTo != nil }

// AssignedName returns the committed driver's name, or "" when unassigned.
func (o *Order) AssignedName() string {
	if o.AssignedTo == nil {
		return ""
	}
	return o.AssignedTo.Name
}
