package services

import (
	"cmp"
	"driver-assignment-service/internal/domain"
	"fmt"
	"log"
	"slices"
)

// AssignmentScheduler commits orders to drivers with a greedy fairness heuristic.
//
// Orders are visited once in deadline order. Each order goes to the feasible driver
// with the lowest fairness score (past-week average plus hours assigned so far),
// preferring more remaining capacity on equal scores and earlier input position after that.
// There is no backtracking: an early commit can leave a later order unassigned even when
// a different choice would have served both.
type AssignmentScheduler struct {
	capacity CapacityTracker
}

func NewAssignmentScheduler(capacity CapacityTracker) *AssignmentScheduler {
	return &AssignmentScheduler{capacity: capacity}
}

// Schedule mutates orders and drivers to their committed state and returns the orders
// in the sequence they were processed. Orders with no feasible driver stay unassigned.
// The loop must stay sequential: every commit changes the capacity and score seen by
// the next order.
func (s *AssignmentScheduler) Schedule(orders []*domain.Order, drivers []*domain.Driver) ([]*domain.Order, error) {
	sequence := slices.Clone(orders)

	// Stable sort so equal deadlines keep input order.
	slices.SortStableFunc(sequence, func(a, b *domain.Order) int {
		return cmp.Compare(a.DeadlineMin, b.DeadlineMin)
	})

	candidates := make([]*domain.Driver, 0, len(drivers))
	for _, o := range sequence {
		orderHours := float64(o.AdjustedTimeMin) / 60.0

		candidates = candidates[:0]
		for _, d := range drivers {
			if s.capacity.Feasible(d, orderHours) {
				candidates = append(candidates, d)
			}
		}

		if len(candidates) == 0 {
			log.Printf("schedule: order_id=%s unassigned required_min=%d", o.OrderID, o.AdjustedTimeMin)
			continue
		}

		chosen := pickDriver(candidates)
		if err := chosen.Commit(o); err != nil {
			return nil, fmt.Errorf("schedule: %w", err)
		}
	}

	return sequence, nil
}

// pickDriver returns the best ranked candidate. Only a strictly better candidate
// replaces the current best, so exact ties resolve to the earliest driver in input order.
func pickDriver(candidates []*domain.Driver) *domain.Driver {
	best := candidates[0]
	for _, d := range candidates[1:] {
		if compareCandidates(d, best) < 0 {
			best = d
		}
	}
	return best
}

// compareCandidates orders by fairness score ascending, then remaining hours descending.
func compareCandidates(a, b *domain.Driver) int {
	if c := cmp.Compare(a.FairnessScore(), b.FairnessScore()); c != 0 {
		return c
	}
	return cmp.Compare(b.RemainingHours(), a.RemainingHours())
}
