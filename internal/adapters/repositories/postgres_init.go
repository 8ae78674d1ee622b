package repositories

import (
	"context"
	"database/sql"
	"driver-assignment-service/internal/ports"
	"errors"
	"fmt"
)

// Initialize the Postgres schema for planning inputs.
// Columns hold the raw record text and the planner normalizes it. seq keeps input order.
func InitSchema(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return errors.New("init schema: DB is nil")
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("init schema: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	createDriversQuery := `
	CREATE TABLE IF NOT EXISTS drivers (
		seq BIGSERIAL PRIMARY KEY,
		name TEXT NOT NULL,
		shift_hours TEXT NOT NULL DEFAULT '',
		past_week_hours TEXT NOT NULL DEFAULT ''
	);
	`

	createOrdersQuery := `
	CREATE TABLE IF NOT EXISTS orders (
		seq BIGSERIAL PRIMARY KEY,
		order_id TEXT NOT NULL,
		value_rs TEXT NOT NULL DEFAULT '',
		route_id TEXT NOT NULL,
		delivery_time TEXT NOT NULL DEFAULT ''
	);
	`

	createRoutesQuery := `
	CREATE TABLE IF NOT EXISTS routes (
		seq BIGSERIAL PRIMARY KEY,
		route_id TEXT NOT NULL,
		distance_km TEXT NOT NULL DEFAULT '',
		traffic_level TEXT NOT NULL DEFAULT '',
		base_time_min TEXT NOT NULL DEFAULT ''
	);
	`

	statements := []string{
		createDriversQuery,
		createOrdersQuery,
		createRoutesQuery,
	}

	for i, stmt := range statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: exec statement #%d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("init schema: commit tx: %w", err)
	}

	return nil
}

// Replace the contents of the input tables with the records of the given sources.
func Seed(
	ctx context.Context,
	db *sql.DB,
	drivers ports.DriverSource,
	orders ports.OrderSource,
	routes ports.RouteSource,
) error {
	if db == nil {
		return errors.New("seed: DB is nil")
	}

	ds, err := drivers.ListDrivers(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	ords, err := orders.ListOrders(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}
	rs, err := routes.ListRoutes(ctx)
	if err != nil {
		return fmt.Errorf("seed: %w", err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("seed: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `TRUNCATE drivers, orders, routes RESTART IDENTITY;`); err != nil {
		return fmt.Errorf("seed: truncate: %w", err)
	}

	for i, d := range ds {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO drivers (name, shift_hours, past_week_hours) VALUES ($1, $2, $3);`,
			d.Name, d.ShiftHours, d.PastWeekHours,
		); err != nil {
			return fmt.Errorf("seed: insert driver #%d %q: %w", i+1, d.Name, err)
		}
	}

	for i, o := range ords {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO orders (order_id, value_rs, route_id, delivery_time) VALUES ($1, $2, $3, $4);`,
			o.OrderID, o.ValueRs, o.RouteID, o.DeliveryTime,
		); err != nil {
			return fmt.Errorf("seed: insert order #%d %q: %w", i+1, o.OrderID, err)
		}
	}

	for i, r := range rs {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO routes (route_id, distance_km, traffic_level, base_time_min) VALUES ($1, $2, $3, $4);`,
			r.RouteID, r.DistanceKm, r.TrafficLevel, r.BaseTimeMin,
		); err != nil {
			return fmt.Errorf("seed: insert route #%d %q: %w", i+1, r.RouteID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed: commit tx: %w", err)
	}

	return nil
}
