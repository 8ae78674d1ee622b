package services

import (
	"driver-assignment-service/internal/domain"
	"driver-assignment-service/internal/ports"
	"fmt"
	"strconv"
	"strings"
)

// UnassignedLabel is written in place of a driver name for orders nobody could take.
const UnassignedLabel = "UNASSIGNED"

type DriverSummary struct {
	Name          string
	ShiftHours    float64
	PastWeekAvg   float64
	AssignedHours float64
	Assignments   []domain.Assignment
}

type UnassignedOrder struct {
	OrderID         string
	RouteID         string
	AdjustedTimeMin int
}

// Report is the read-only outcome of one run.
type Report struct {
	Rows       []ports.AssignmentRow
	Drivers    []DriverSummary
	Unassigned []UnassignedOrder
}

// BuildReport reads the final driver and order state. Rows and the unassigned
// list follow the order of orders; driver summaries follow the order of drivers.
func BuildReport(drivers []*domain.Driver, orders []*domain.Order) *Report {
	r := &Report{
		Rows:       make([]ports.AssignmentRow, 0, len(orders)),
		Drivers:    make([]DriverSummary, 0, len(drivers)),
		Unassigned: []UnassignedOrder{},
	}

	for _, d := range drivers {
		r.Drivers = append(r.Drivers, DriverSummary{
			Name:          d.Name,
			ShiftHours:    d.ShiftHours,
			PastWeekAvg:   d.PastWeekAvg,
			AssignedHours: d.AssignedHours(),
			Assignments:   append([]domain.Assignment(nil), d.Assignments...),
		})
	}

	for _, o := range orders {
		assignedTo := UnassignedLabel
		if o.IsAssigned() {
			assignedTo = o.AssignedName()
		} else {
			r.Unassigned = append(r.Unassigned, UnassignedOrder{
				OrderID:         o.OrderID,
				RouteID:         o.RouteID,
				AdjustedTimeMin: o.AdjustedTimeMin,
			})
		}

		r.Rows = append(r.Rows, ports.AssignmentRow{
			OrderID:         o.OrderID,
			RouteID:         o.RouteID,
			ValueRs:         o.ValueRs,
			AdjustedTimeMin: o.AdjustedTimeMin,
			TrafficLevel:    o.Traffic.String(),
			AssignedTo:      assignedTo,
		})
	}

	return r
}

func (r *Report) AssignedCount() int { return len(r.Rows) - len(r.Unassigned) }

// Summary renders the human-readable per-driver report followed by the unassigned list.
func (r *Report) Summary() string {
	var b strings.Builder

	b.WriteString("Driver summary:\n")
	for _, d := range r.Drivers {
		fmt.Fprintf(&b, "\nDriver: %s\n", d.Name)
		fmt.Fprintf(&b, "  Shift hours: %s\n", FormatNumber(d.ShiftHours))
		fmt.Fprintf(&b, "  Past week avg hrs/day: %.2f\n", d.PastWeekAvg)
		fmt.Fprintf(&b, "  Assigned hours today: %.2f\n", d.AssignedHours)
		fmt.Fprintf(&b, "  Orders assigned (%d):\n", len(d.Assignments))
		for _, a := range d.Assignments {
			fmt.Fprintf(&b, "    - Order %s (route %s) - %d min - Rs %s\n",
				a.OrderID, a.RouteID, a.AdjustedTimeMin, FormatNumber(a.ValueRs))
		}
	}

	if len(r.Unassigned) == 0 {
		b.WriteString("\nAll orders assigned.\n")
		return b.String()
	}

	b.WriteString("\nUnassigned orders:\n")
	for _, u := range r.Unassigned {
		fmt.Fprintf(&b, "  - Order %s (route %s) requires %d min\n", u.OrderID, u.RouteID, u.AdjustedTimeMin)
	}
	return b.String()
}

// FormatNumber writes v in its shortest decimal form ("8", "250.5").
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
