package repositories

import (
	"context"
	"database/sql"
	"driver-assignment-service/internal/platform/obs"
	"driver-assignment-service/internal/ports"
	"errors"
	"fmt"
)

var errNilDB = errors.New("postgres source: DB is nil")

// Postgres-backed implementation of the driver, order and route source ports.
type PostgresSource struct{ DB *sql.DB }

func NewPostgresSource(db *sql.DB) *PostgresSource {
	return &PostgresSource{DB: db}
}

// Return all drivers in insertion order.
func (s *PostgresSource) ListDrivers(ctx context.Context) (_ []ports.DriverRecord, err error) {
	defer obs.Time(ctx, "postgres.ListDrivers")(&err)

	if s.DB == nil {
		return nil, errNilDB
	}

	query := `
	SELECT
		name,
		shift_hours,
		past_week_hours
	FROM drivers
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list drivers: query drivers table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.DriverRecord, 0, 64)
	for rows.Next() {
		var d ports.DriverRecord
		if err := rows.Scan(&d.Name, &d.ShiftHours, &d.PastWeekHours); err != nil {
			return nil, fmt.Errorf("list drivers: scan row: %w", err)
		}
		out = append(out, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list drivers: row iteration: %w", err)
	}

	return out, nil
}

// Return all orders in insertion order.
func (s *PostgresSource) ListOrders(ctx context.Context) (_ []ports.OrderRecord, err error) {
	defer obs.Time(ctx, "postgres.ListOrders")(&err)

	if s.DB == nil {
		return nil, errNilDB
	}

	query := `
	SELECT
		order_id,
		value_rs,
		route_id,
		delivery_time
	FROM orders
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list orders: query orders table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.OrderRecord, 0, 64)
	for rows.Next() {
		var o ports.OrderRecord
		if err := rows.Scan(&o.OrderID, &o.ValueRs, &o.RouteID, &o.DeliveryTime); err != nil {
			return nil, fmt.Errorf("list orders: scan row: %w", err)
		}
		out = append(out, o)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list orders: row iteration: %w", err)
	}

	return out, nil
}

// Return all routes in insertion order.
func (s *PostgresSource) ListRoutes(ctx context.Context) (_ []ports.RouteRecord, err error) {
	defer obs.Time(ctx, "postgres.ListRoutes")(&err)

	if s.DB == nil {
		return nil, errNilDB
	}

	query := `
	SELECT
		route_id,
		distance_km,
		traffic_level,
		base_time_min
	FROM routes
	ORDER BY seq;
	`
	rows, err := s.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list routes: query routes table: %w", err)
	}
	defer rows.Close()

	out := make([]ports.RouteRecord, 0, 64)
	for rows.Next() {
		var r ports.RouteRecord
		if err := rows.Scan(&r.RouteID, &r.DistanceKm, &r.TrafficLevel, &r.BaseTimeMin); err != nil {
			return nil, fmt.Errorf("list routes: scan row: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list routes: row iteration: %w", err)
	}

	return out, nil
}
