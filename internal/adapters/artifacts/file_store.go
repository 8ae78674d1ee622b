package artifacts

import (
	"context"
	"driver-assignment-service/internal/adapters/csvfile"
	"driver-assignment-service/internal/ports"
	"errors"
	"fmt"
	"io/fs"
	"os"
)

// FileStore keeps the latest artifact as a single file on disk.
type FileStore struct {
	Path string
}

func NewFileStore(path string) *FileStore { return &FileStore{Path: path} }

func (s *FileStore) Save(ctx context.Context, data []byte) error {
	if s.Path == "" {
		return errors.New("file artifact store: path is empty")
	}
	if err := csvfile.WriteFileAtomic(s.Path, data); err != nil {
		return fmt.Errorf("file artifact store: %w", err)
	}
	return nil
}

func (s *FileStore) Latest(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(s.Path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, ports.ErrNoArtifact
	}
	if err != nil {
		return nil, fmt.Errorf("file artifact store: read %q: %w", s.Path, err)
	}
	return data, nil
}
