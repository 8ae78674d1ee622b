package domain

import "fmt"

// Driver aggregate holding shift capacity, recent load history and the
// orders committed to it during the current run.
type Driver struct {
	Name            string
	ShiftHours      float64
	PastWeekHours   []float64
	PastWeekTotal   float64
	PastWeekAvg     float64
	AssignedMinutes int
	Assignments     []Assignment
}

func NewDriver(name string, shiftHours float64, pastWeek []float64) *Driver {
	total := 0.0
	for _, h := range pastWeek {
		total += h
	}

	avg := 0.0
	if len(pastWeek) > 0 {
		avg = total / float64(len(pastWeek))
	}

	return &Driver{
		Name:          name,
		ShiftHours:    shiftHours,
		PastWeekHours: pastWeek,
		PastWeekTotal: total,
		PastWeekAvg:   avg,
	}
}

// AssignedHours is the work committed so far today, in hours.
func (d *Driver) AssignedHours() float64 { return float64(d.AssignedMinutes) / 60.0 }

// RemainingHours is the shift capacity not yet committed.
func (d *Driver) RemainingHours() float64 { return d.ShiftHours - d.AssignedHours() }

// FairnessScore combines historical and current load; lower means less loaded.
func (d *Driver) FairnessScore() float64 { return d.PastWeekAvg + d.AssignedHours() }

// Commit an order to the driver.
// Capacity is not checked here; callers filter feasibility first.
func (d *Driver) Commit(o *Order) error {
	if o.AssignedTo != nil {
		return fmt.Errorf("commit order: order %q is already assigned to %q", o.OrderID, o.AssignedTo.Name)
	}

	d.AssignedMinutes += o.AdjustedTimeMin
	d.Assignments = append(d.Assignments, Assignment{
		OrderID:         o.OrderID,
		RouteID:         o.RouteID,
		AdjustedTimeMin: o.AdjustedTimeMin,
		ValueRs:         o.ValueRs,
	})
	o.AssignedTo = d

	return nil
}
