package services

import "driver-assignment-service/internal/domain"

// DefaultCapacityEpsilon absorbs float error when an order exactly fills a shift.
const DefaultCapacityEpsilon = 1e-9

// CapacityTracker answers whether a driver can take more work.
// It holds no per-driver state and reads the driver's committed minutes at call time.
type CapacityTracker struct {
	epsilon float64
}

func NewCapacityTracker(epsilon float64) CapacityTracker {
	if epsilon < 0 {
		epsilon = DefaultCapacityEpsilon
	}
	return CapacityTracker{epsilon: epsilon}
}

// Feasible reports whether adding orderHours keeps the driver within shift hours.
func (c CapacityTracker) Feasible(d *domain.Driver, orderHours float64) bool {
	return d.AssignedHours()+orderHours <= d.ShiftHours+c.epsilon
}
