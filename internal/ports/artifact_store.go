package ports

import (
	"context"
	"errors"
)

// ErrNoArtifact is returned by ArtifactStore.Latest before any run has produced output.
var ErrNoArtifact = errors.New("no artifact available")

// Holds the most recent output artifact so it can be downloaded after a run.
type ArtifactStore interface {
	Save(ctx context.Context, data []byte) error
	// Return the latest artifact or ErrNoArtifact.
	Latest(ctx context.Context) ([]byte, error)
}
