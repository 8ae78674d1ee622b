package artifacts

import (
	"bytes"
	"context"
	"driver-assignment-service/internal/ports"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	redis "github.com/redis/go-redis/v9"
)

func exerciseStore(t *testing.T, store ports.ArtifactStore) {
	t.Helper()
	ctx := context.Background()

	if _, err := store.Latest(ctx); !errors.Is(err, ports.ErrNoArtifact) {
		t.Fatalf("Latest on empty store: err = %v, want ErrNoArtifact", err)
	}

	if err := store.Save(ctx, []byte("first")); err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := store.Save(ctx, []byte("second")); err != nil {
		t.Fatalf("save: %v", err)
	}

	got, err := store.Latest(ctx)
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !bytes.Equal(got, []byte("second")) {
		t.Fatalf("latest = %q, want %q", got, "second")
	}
}

func TestFileStore(t *testing.T) {
	exerciseStore(t, NewFileStore(filepath.Join(t.TempDir(), "assignments.csv")))
}

func TestRedisStore(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	store := NewRedisStoreFromClient(rdb, "")
	t.Cleanup(func() { _ = store.Close() })

	exerciseStore(t, store)

	if !mr.Exists(DefaultRedisKey) {
		t.Fatalf("expected key %q in redis", DefaultRedisKey)
	}
}

func TestNewRedisStoreRejectsBadURL(t *testing.T) {
	if _, err := NewRedisStore("not-a-url", ""); err == nil {
		t.Fatal("expected error for invalid redis url")
	}
}

func TestSinkStoresCSV(t *testing.T) {
	store := NewFileStore(filepath.Join(t.TempDir(), "assignments.csv"))
	sink := NewSink(store)

	rows := []ports.AssignmentRow{{OrderID: "1", RouteID: "2", ValueRs: 10, AdjustedTimeMin: 60, TrafficLevel: "Low", AssignedTo: "Amit"}}
	if err := sink.WriteAssignments(context.Background(), rows); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := store.Latest(context.Background())
	if err != nil {
		t.Fatalf("latest: %v", err)
	}
	if !strings.HasSuffix(string(data), "1,2,10,60,Low,Amit\n") {
		t.Fatalf("artifact = %q", data)
	}
}
