package domain

// Assignment is the record a Driver keeps for each committed order.
type Assignment struct {
	OrderID         string
	RouteID         string
	AdjustedTimeMin int
	ValueRs         float64
}
