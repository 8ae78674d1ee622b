package ports

import "context"

// Port: a boundary for loading driver records for a planning run.
type DriverSource interface {
	ListDrivers(ctx context.Context) ([]DriverRecord, error)
}

// Port: a boundary for loading order records for a planning run.
type OrderSource interface {
	ListOrders(ctx context.Context) ([]OrderRecord, error)
}

// Port: a boundary for loading route records for a planning run.
type RouteSource interface {
	ListRoutes(ctx context.Context) ([]RouteRecord, error)
}
