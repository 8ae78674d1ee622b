package services

import (
	"context"
	"driver-assignment-service/internal/platform/metrics"
	"driver-assignment-service/internal/platform/obs"
	"driver-assignment-service/internal/ports"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Sources bundles the three record collaborators of a run.
type Sources struct {
	Drivers ports.DriverSource
	Orders  ports.OrderSource
	Routes  ports.RouteSource
}

type RunResult struct {
	RunID  string
	Report *Report
}

// AssignmentService executes complete runs: load, plan, write.
// Sink may be nil when the caller only needs the report.
type AssignmentService struct {
	Planner *Planner
	Sources Sources
	Sink    ports.AssignmentSink
}

// Run loads all inputs, plans, and writes the rows to the sink.
// Either the whole run succeeds or nothing is written.
func (s *AssignmentService) Run(ctx context.Context) (_ *RunResult, err error) {
	start := time.Now()

	runID := obs.RequestID(ctx)
	if runID == "" {
		runID = uuid.NewString()
		ctx = obs.WithRequestID(ctx, runID)
	}
	defer obs.Time(ctx, "assignment.Run")(&err)

	var report *Report
	defer func() {
		assigned, unassigned := 0, 0
		if report != nil {
			assigned, unassigned = report.AssignedCount(), len(report.Unassigned)
		}
		metrics.ObserveRun(runOutcome(err), time.Since(start).Seconds(), assigned, unassigned)
	}()

	drivers, orders, routes, err := s.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("run assignment: %w", err)
	}

	report, err = s.Planner.Plan(drivers, orders, routes)
	if err != nil {
		return nil, fmt.Errorf("run assignment: %w", err)
	}

	if s.Sink != nil {
		if err := s.write(ctx, report.Rows); err != nil {
			return nil, fmt.Errorf("run assignment: %w", err)
		}
	}

	log.Printf("req_id=%s op=assignment.Run orders=%d assigned=%d unassigned=%d",
		runID, len(report.Rows), report.AssignedCount(), len(report.Unassigned))

	return &RunResult{RunID: runID, Report: report}, nil
}

// load reads the three independent sources concurrently. Scheduling starts only
// after all of them are materialized.
func (s *AssignmentService) load(ctx context.Context) (
	drivers []ports.DriverRecord,
	orders []ports.OrderRecord,
	routes []ports.RouteRecord,
	err error,
) {
	defer obs.Time(ctx, "assignment.load")(&err)

	if s.Sources.Drivers == nil || s.Sources.Orders == nil || s.Sources.Routes == nil {
		return nil, nil, nil, fmt.Errorf("%w: load: driver, order and route sources are required", ErrSourceIO)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var e error
		if drivers, e = s.Sources.Drivers.ListDrivers(gctx); e != nil {
			return fmt.Errorf("%w: load drivers: %w", ErrSourceIO, e)
		}
		return nil
	})
	g.Go(func() error {
		var e error
		if orders, e = s.Sources.Orders.ListOrders(gctx); e != nil {
			return fmt.Errorf("%w: load orders: %w", ErrSourceIO, e)
		}
		return nil
	})
	g.Go(func() error {
		var e error
		if routes, e = s.Sources.Routes.ListRoutes(gctx); e != nil {
			return fmt.Errorf("%w: load routes: %w", ErrSourceIO, e)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return drivers, orders, routes, nil
}

func (s *AssignmentService) write(ctx context.Context, rows []ports.AssignmentRow) (err error) {
	defer obs.Time(ctx, "assignment.write")(&err)

	if err := s.Sink.WriteAssignments(ctx, rows); err != nil {
		return fmt.Errorf("%w: write assignments: %w", ErrSourceIO, err)
	}
	return nil
}

func runOutcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrUnknownRoute):
		return "unknown_route"
	case errors.Is(err, ErrSourceIO):
		return "io_error"
	default:
		return "error"
	}
}
