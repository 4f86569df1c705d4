package db

import (
	"context"
	"fmt"
	"time"

	"github.com/lib/pq"

	"github.com/appnetwork/backend/internal/domain"
)

// PqProber connects through lib/pq's driver.Connector directly, bypassing
// database/sql's pool.
type PqProber struct {
	connector *pq.Connector
}

func NewPqProber(dsn string) (*PqProber, error) {
	c, err := pq.NewConnector(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}
	return &PqProber{connector: c}, nil
}

func (p *PqProber) Probe(ctx context.Context) domain.ProbeResult {
	start := time.Now()

	conn, err := p.connector.Connect(ctx)
	if err != nil {
		return domain.Failed(err, time.Since(start))
	}
	_ = conn.Close()

	return domain.Succeeded(time.Since(start))
}

var _ Prober = (*PqProber)(nil)
