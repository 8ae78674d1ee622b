package artifacts

import (
	"context"
	"driver-assignment-service/internal/adapters/csvfile"
	"driver-assignment-service/internal/ports"
	"fmt"
)

// Sink encodes assignment rows as the CSV artifact and saves it to a store.
type Sink struct {
	Store ports.ArtifactStore
}

func NewSink(store ports.ArtifactStore) *Sink { return &Sink{Store: store} }

func (s *Sink) WriteAssignments(ctx context.Context, rows []ports.AssignmentRow) error {
	data, err := csvfile.Marshal(rows)
	if err != nil {
		return err
	}
	if err := s.Store.Save(ctx, data); err != nil {
		return fmt.Errorf("save artifact: %w", err)
	}
	return nil
}
