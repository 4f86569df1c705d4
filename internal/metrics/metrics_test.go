package metrics_test

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"

	"github.com/appnetwork/backend/internal/metrics"
)

func TestProbeHook_CountsByOutcome(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	hook := m.ProbeHook()

	hook("connected", 10*time.Millisecond)
	hook("error", 2*time.Second)
	hook("error", time.Millisecond)

	if got := testutil.ToFloat64(m.ProbesTotal.WithLabelValues("connected")); got != 1 {
		t.Fatalf("expected 1 connected probe, got %v", got)
	}
	if got := testutil.ToFloat64(m.ProbesTotal.WithLabelValues("error")); got != 2 {
		t.Fatalf("expected 2 failed probes, got %v", got)
	}
	if n := testutil.CollectAndCount(m.ProbeDuration); n != 2 {
		t.Fatalf("expected 2 histogram series, got %d", n)
	}
}

func TestNew_RegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics.New(reg)

	defer func() {
		if recover() == nil {
			t.Fatal("expected a panic on duplicate registration")
		}
	}()
	metrics.New(reg)
}
