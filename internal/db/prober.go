package db

import (
	"context"
	"fmt"

	"github.com/appnetwork/backend/internal/config"
	"github.com/appnetwork/backend/internal/domain"
)

// Prober opens a single database session, closes it and reports the outcome.
// Implementations never return a Go error: every failure is folded into the
// result. They must be safe for concurrent use and must not share a
// connection between calls.
type Prober interface {
	Probe(ctx context.Context) domain.ProbeResult
}

// NewProber builds the prober for driver ("pgx" or "postgres") that connects
// with the parameters of attempt.
func NewProber(driver string, attempt domain.ConnectionAttempt) (Prober, error) {
	switch driver {
	case config.DriverPgx, "":
		return NewPgxProber(attempt.DSN())
	case config.DriverPq:
		return NewPqProber(attempt.DSN())
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}
}
