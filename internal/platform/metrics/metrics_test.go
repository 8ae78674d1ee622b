package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestObserveRun(t *testing.T) {
	RegisterDefault()
	RegisterDefault()

	beforeOK := testutil.ToFloat64(Runs.WithLabelValues("ok"))
	beforeUnassigned := testutil.ToFloat64(Orders.WithLabelValues("unassigned"))

	ObserveRun("ok", 0.01, 3, 2)

	if got := testutil.ToFloat64(Runs.WithLabelValues("ok")) - beforeOK; got != 1 {
		t.Fatalf("ok runs delta = %v, want 1", got)
	}
	if got := testutil.ToFloat64(Orders.WithLabelValues("unassigned")) - beforeUnassigned; got != 2 {
		t.Fatalf("unassigned delta = %v, want 2", got)
	}
}
