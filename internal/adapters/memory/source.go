package memory

import (
	"context"
	"driver-assignment-service/internal/ports"
	"slices"
	"sync"
)

// Source serves fixed records for all three record ports.
// A non-nil Err is returned from every List call.
type Source struct {
	Drivers []ports.DriverRecord
	Orders  []ports.OrderRecord
	Routes  []ports.RouteRecord
	Err     error
}

func NewSource(drivers []ports.DriverRecord, orders []ports.OrderRecord, routes []ports.RouteRecord) *Source {
	return &Source{Drivers: drivers, Orders: orders, Routes: routes}
}

func (s *Source) ListDrivers(ctx context.Context) ([]ports.DriverRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Drivers), nil
}

func (s *Source) ListOrders(ctx context.Context) ([]ports.OrderRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Orders), nil
}

func (s *Source) ListRoutes(ctx context.Context) ([]ports.RouteRecord, error) {
	if s.Err != nil {
		return nil, s.Err
	}
	return slices.Clone(s.Routes), nil
}

// Sink records every batch written to it.
type Sink struct {
	mu     sync.Mutex
	writes [][]ports.AssignmentRow
	Err    error
}

func (s *Sink) WriteAssignments(ctx context.Context, rows []ports.AssignmentRow) error {
	if s.Err != nil {
		return s.Err
	}
	s.mu.Lock()
	s.writes = append(s.writes, slices.Clone(rows))
	s.mu.Unlock()
	return nil
}

// Writes returns every batch received, oldest first.
func (s *Sink) Writes() [][]ports.AssignmentRow {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.writes)
}

// ArtifactStore keeps the latest artifact in process memory.
type ArtifactStore struct {
	mu   sync.RWMutex
	data []byte
}

func (s *ArtifactStore) Save(ctx context.Context, data []byte) error {
	s.mu.Lock()
	s.data = slices.Clone(data)
	s.mu.Unlock()
	return nil
}

func (s *ArtifactStore) Latest(ctx context.Context) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, ports.ErrNoArtifact
	}
	return slices.Clone(s.data), nil
}
