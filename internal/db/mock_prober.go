package db

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/appnetwork/backend/internal/domain"
)

// MockProber is a hand-written Prober for unit tests. It reports Err (nil
// means success) after an optional Delay and counts how often it ran.
type MockProber struct {
	Err   error
	Delay time.Duration

	// ProbeFunc, when set, replaces the fixed Err/Delay behaviour.
	ProbeFunc func(ctx context.Context) domain.ProbeResult

	calls atomic.Int64
}

func (m *MockProber) Probe(ctx context.Context) domain.ProbeResult {
	m.calls.Add(1)
	if m.ProbeFunc != nil {
		return m.ProbeFunc(ctx)
	}
	if m.Delay > 0 {
		time.Sleep(m.Delay)
	}
	if m.Err != nil {
		return domain.Failed(m.Err, m.Delay)
	}
	return domain.Succeeded(m.Delay)
}

// Calls reports how many times Probe ran.
func (m *MockProber) Calls() int64 { return m.calls.Load() }

var _ Prober = (*MockProber)(nil)
