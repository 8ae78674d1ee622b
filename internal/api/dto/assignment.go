package dto

type AssignmentRowResponse struct {
	OrderID         string  `json:"order_id"`
	RouteID         string  `json:"route_id"`
	ValueRs         float64 `json:"value_rs"`
	AdjustedTimeMin int     `json:"adjusted_time_min"`
	TrafficLevel    string  `json:"traffic_level"`
	AssignedTo      string  `json:"assigned_to"`
}

type DriverAssignmentResponse struct {
	OrderID         string  `json:"order_id"`
	RouteID         string  `json:"route_id"`
	AdjustedTimeMin int     `json:"adjusted_time_min"`
	ValueRs         float64 `json:"value_rs"`
}

type DriverSummaryResponse struct {
	Name          string                     `json:"name"`
	ShiftHours    float64                    `json:"shift_hours"`
	PastWeekAvg   float64                    `json:"past_week_avg"`
	AssignedHours float64                    `json:"assigned_hours"`
	Assignments   []DriverAssignmentResponse `json:"assignments"`
}

type UnassignedOrderResponse struct {
	OrderID         string `json:"order_id"`
	RouteID         string `json:"route_id"`
	AdjustedTimeMin int    `json:"adjusted_time_min"`
}

type RunResponse struct {
	RunID      string                    `json:"run_id"`
	Rows       []AssignmentRowResponse   `json:"rows"`
	Drivers    []DriverSummaryResponse   `json:"drivers"`
	Unassigned []UnassignedOrderResponse `json:"unassigned"`
	Summary    string                    `json:"summary"`
}
