package csvfile

import (
	"bytes"
	"context"
	"driver-assignment-service/internal/ports"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
)

// Header is the column layout of the assignments artifact.
var Header = []string{"order_id", "route_id", "value_rs", "adjusted_time_min", "traffic_level", "assigned_to"}

// Encode writes the header and one line per row.
func Encode(w io.Writer, rows []ports.AssignmentRow) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(Header); err != nil {
		return fmt.Errorf("encode assignments: header: %w", err)
	}

	for _, r := range rows {
		rec := []string{
			r.OrderID,
			r.RouteID,
			strconv.FormatFloat(r.ValueRs, 'f', -1, 64),
			strconv.Itoa(r.AdjustedTimeMin),
			r.TrafficLevel,
			r.AssignedTo,
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("encode assignments: order_id=%s: %w", r.OrderID, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("encode assignments: flush: %w", err)
	}
	return nil
}

func Marshal(rows []ports.AssignmentRow) ([]byte, error) {
	var buf bytes.Buffer
	if err := Encode(&buf, rows); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FileSink writes the assignments artifact to Path.
type FileSink struct {
	Path string
}

func NewFileSink(path string) *FileSink { return &FileSink{Path: path} }

// WriteAssignments replaces the file atomically so readers never see a partial artifact.
func (s *FileSink) WriteAssignments(ctx context.Context, rows []ports.AssignmentRow) error {
	data, err := Marshal(rows)
	if err != nil {
		return err
	}
	return WriteFileAtomic(s.Path, data)
}

// WriteFileAtomic writes data to a temp file next to path and renames it into place.
func WriteFileAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("write %q: create dir: %w", path, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("write %q: create temp: %w", path, err)
	}
	defer func() { _ = os.Remove(tmp.Name()) }()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: %w", path, err)
	}
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		return fmt.Errorf("write %q: chmod temp: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("write %q: close temp: %w", path, err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("write %q: rename: %w", path, err)
	}
	return nil
}
