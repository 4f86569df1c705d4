package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/appnetwork/backend/internal/domain"
)

// PgxProber connects with a bare pgx.Conn. No pool is involved, so the
// connection is gone once Probe returns.
type PgxProber struct {
	connConfig *pgx.ConnConfig
}

// NewPgxProber parses dsn once; each Probe works on a copy of the result.
func NewPgxProber(dsn string) (*PgxProber, error) {
	cc, err := pgx.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	return &PgxProber{connConfig: cc}, nil
}

func (p *PgxProber) Probe(ctx context.Context) domain.ProbeResult {
	start := time.Now()

	conn, err := pgx.ConnectConfig(ctx, p.connConfig.Copy())
	if err != nil {
		return domain.Failed(err, time.Since(start))
	}

	// Close tears down the socket even when the terminate message fails to
	// send, so its error does not change the outcome.
	_ = conn.Close(ctx)

	return domain.Succeeded(time.Since(start))
}

var _ Prober = (*PgxProber)(nil)
