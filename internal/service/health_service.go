package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/appnetwork/backend/internal/db"
	"github.com/appnetwork/backend/internal/domain"
)

// ProbeHook observes every finished probe. Wired to Prometheus in main.
type ProbeHook func(outcome string, d time.Duration)

// HealthService runs database probes on behalf of the HTTP handlers.
// It holds no per-request state and is safe for concurrent use.
type HealthService struct {
	prober db.Prober
	logger *zap.Logger
	hook   ProbeHook
}

// NewHealthService wires a prober; hook may be nil.
func NewHealthService(prober db.Prober, logger *zap.Logger, hook ProbeHook) *HealthService {
	return &HealthService{prober: prober, logger: logger, hook: hook}
}

// CheckDatabase opens and closes one connection and reports the outcome.
// The probe is detached from ctx's cancellation: once started it runs until
// the driver connects, fails or times out. Values on ctx are kept.
func (s *HealthService) CheckDatabase(ctx context.Context) domain.ProbeResult {
	res := s.prober.Probe(context.WithoutCancel(ctx))

	if !res.OK() {
		s.logger.Warn("database probe failed",
			zap.Duration("duration", res.Duration),
			zap.Error(res.Err),
		)
	} else {
		s.logger.Debug("database probe succeeded", zap.Duration("duration", res.Duration))
	}

	if s.hook != nil {
		s.hook(res.Outcome(), res.Duration)
	}
	return res
}
