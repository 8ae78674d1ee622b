package csvfile

import (
	"context"
	"driver-assignment-service/internal/ports"
	"fmt"
)

// Source reads drivers, orders and routes from three CSV files.
//
//	drivers.csv: name,shift_hours,past_week_hours
//	orders.csv:  order_id,value_rs,route_id,delivery_time
//	routes.csv:  route_id,distance_km,traffic_level,base_time_min
type Source struct {
	DriversPath string
	OrdersPath  string
	RoutesPath  string
}

func NewSource(driversPath, ordersPath, routesPath string) *Source {
	return &Source{DriversPath: driversPath, OrdersPath: ordersPath, RoutesPath: routesPath}
}

func (s *Source) ListDrivers(ctx context.Context) ([]ports.DriverRecord, error) {
	rows, err := readFile(s.DriversPath)
	if err != nil {
		return nil, fmt.Errorf("list drivers: %w", err)
	}

	out := make([]ports.DriverRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.DriverRecord{
			Name:          r["name"],
			ShiftHours:    r["shift_hours"],
			PastWeekHours: r["past_week_hours"],
		})
	}
	return out, nil
}

func (s *Source) ListOrders(ctx context.Context) ([]ports.OrderRecord, error) {
	rows, err := readFile(s.OrdersPath)
	if err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}

	out := make([]ports.OrderRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.OrderRecord{
			OrderID:      r["order_id"],
			ValueRs:      r["value_rs"],
			RouteID:      r["route_id"],
			DeliveryTime: r["delivery_time"],
		})
	}
	return out, nil
}

func (s *Source) ListRoutes(ctx context.Context) ([]ports.RouteRecord, error) {
	rows, err := readFile(s.RoutesPath)
	if err != nil {
		return nil, fmt.Errorf("list routes: %w", err)
	}

	out := make([]ports.RouteRecord, 0, len(rows))
	for _, r := range rows {
		out = append(out, ports.RouteRecord{
			RouteID:      r["route_id"],
			DistanceKm:   r["distance_km"],
			TrafficLevel: r["traffic_level"],
			BaseTimeMin:  r["base_time_min"],
		})
	}
	return out, nil
}
