package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

var (
	// Registry is the dedicated Prometheus registry for the service.
	Registry = prometheus.NewRegistry()

	// HTTPRequests counts requests by method, path, and status.
	HTTPRequests = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "http_requests_total", Help: "Total HTTP requests."},
		[]string{"method", "path", "status"},
	)

	// Runs counts assignment runs by outcome (ok, unknown_route, io_error, error).
	Runs = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "assignment_runs_total", Help: "Assignment runs by outcome."},
		[]string{"outcome"},
	)

	// Orders counts processed orders by status (assigned, unassigned).
	Orders = prometheus.NewCounterVec(
		prometheus.CounterOpts{Name: "assignment_orders_total", Help: "Orders processed by assignment status."},
		[]string{"status"},
	)

	RunDuration = prometheus.NewHistogram(
		prometheus.HistogramOpts{Name: "assignment_run_duration_seconds", Help: "Assignment run duration in seconds.", Buckets: prometheus.DefBuckets},
	)
)

var regOnce sync.Once

// RegisterDefault registers the collectors on Registry. Safe to call more than once.
func RegisterDefault() {
	regOnce.Do(func() {
		Registry.MustRegister(HTTPRequests)
		Registry.MustRegister(Runs)
		Registry.MustRegister(Orders)
		Registry.MustRegister(RunDuration)
		Registry.MustRegister(collectors.NewGoCollector())
		Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	})
}

// ObserveRun records one finished run.
func ObserveRun(outcome string, seconds float64, assigned, unassigned int) {
	Runs.WithLabelValues(outcome).Inc()
	RunDuration.Observe(seconds)
	Orders.WithLabelValues("assigned").Add(float64(assigned))
	Orders.WithLabelValues("unassigned").Add(float64(unassigned))
}
