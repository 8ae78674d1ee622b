package ports

// Raw driver record as yielded by a DriverSource.
// PastWeekHours is a "|"-delimited list of daily hours.
type DriverRecord struct {
	Name          string
	ShiftHours    string
	PastWeekHours string
}

// Raw order record as yielded by an OrderSource.
// DeliveryTime is an "HH:MM" clock time.
type OrderRecord struct {
	OrderID      string
	ValueRs      string
	RouteID      string
	DeliveryTime string
}

// Raw route record as yielded by a RouteSource.
type RouteRecord struct {
	RouteID      string
	DistanceKm   string
	TrafficLevel string
	BaseTimeMin  string
}

// One output row per order. AssignedTo is a driver name or "UNASSIGNED".
type AssignmentRow struct {
	OrderID         string
	RouteID         string
	ValueRs         float64
	AdjustedTimeMin int
	TrafficLevel    string
	AssignedTo      string
}
