// Package app holds the adapter selection shared by the cmd binaries.
package app

import (
	"database/sql"
	"driver-assignment-service/internal/adapters/artifacts"
	"driver-assignment-service/internal/adapters/csvfile"
	"driver-assignment-service/internal/adapters/repositories"
	"driver-assignment-service/internal/config"
	"driver-assignment-service/internal/platform/db"
	"driver-assignment-service/internal/ports"
	"driver-assignment-service/internal/services"
	"fmt"
	"log"
)

// Closer releases whatever OpenSources or OpenArtifactStore acquired.
type Closer func() error

func noop() error { return nil }

// OpenSources returns the record sources selected by cfg.Source.
func OpenSources(cfg config.Config) (services.Sources, Closer, error) {
	switch cfg.Source {
	case config.SourcePostgres:
		conn, err := db.Open(cfg.DatabaseURL)
		if err != nil {
			return services.Sources{}, nil, fmt.Errorf("open sources: %w", err)
		}
		return postgresSources(conn), conn.Close, nil
	default:
		src := csvfile.NewSource(cfg.DriversCSV, cfg.OrdersCSV, cfg.RoutesCSV)
		return services.Sources{Drivers: src, Orders: src, Routes: src}, noop, nil
	}
}

func postgresSources(conn *sql.DB) services.Sources {
	src := repositories.NewPostgresSource(conn)
	return services.Sources{Drivers: src, Orders: src, Routes: src}
}

// OpenArtifactStore returns the Redis store when REDIS_URL is set, otherwise
// the file at OUTPUT_CSV.
func OpenArtifactStore(cfg config.Config) (ports.ArtifactStore, Closer, error) {
	if cfg.RedisURL == "" {
		return artifacts.NewFileStore(cfg.OutputCSV), noop, nil
	}

	store, err := artifacts.NewRedisStore(cfg.RedisURL, artifacts.DefaultRedisKey)
	if err != nil {
		return nil, nil, fmt.Errorf("open artifact store: %w", err)
	}
	log.Printf("artifact store: redis key=%s", artifacts.DefaultRedisKey)
	return store, store.Close, nil
}

// NewService builds the run pipeline with the planning config loaded from cfg.
func NewService(cfg config.Config, sources services.Sources, sink ports.AssignmentSink) (*services.AssignmentService, error) {
	planning, err := config.LoadPlanning(cfg.PlanningConfig)
	if err != nil {
		return nil, fmt.Errorf("new service: %w", err)
	}

	return &services.AssignmentService{
		Planner: services.NewPlanner(planning),
		Sources: sources,
		Sink:    sink,
	}, nil
}
