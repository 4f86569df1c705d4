package main

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/appnetwork/backend/internal/api"
	"github.com/appnetwork/backend/internal/config"
	"github.com/appnetwork/backend/internal/db"
	"github.com/appnetwork/backend/internal/metrics"
	"github.com/appnetwork/backend/internal/service"
)

func main() {
	logger, _ := zap.NewProduction()
	defer logger.Sync() //nolint:errcheck

	// ---- configuration ----
	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load config", zap.Error(err))
	}

	// ---- database probe ----
	// No connection is opened here; every /db-check dials its own.
	prober, err := db.NewProber(cfg.DBDriver, cfg.Attempt())
	if err != nil {
		logger.Fatal("failed to build database prober", zap.Error(err))
	}

	reg := prometheus.NewRegistry()
	m := metrics.New(reg)
	svc := service.NewHealthService(prober, logger, m.ProbeHook())

	// ---- metrics listener (optional) ----
	if cfg.MetricsAddr != "" {
		metricsSrv := newMetricsServer(cfg, reg)
		go func() {
			logger.Info("metrics listener starting", zap.String("addr", metricsSrv.Addr))
			if err := metricsSrv.ListenAndServe(); err != nil {
				logger.Error("metrics listener stopped", zap.Error(err))
			}
		}()
	}

	// ---- HTTP server ----
	srv := &http.Server{
		Addr:         ":" + cfg.HTTPPort,
		Handler:      api.NewRouter(svc, logger),
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	logger.Info("server starting",
		zap.String("addr", srv.Addr),
		zap.String("db_driver", cfg.DBDriver),
		zap.String("db_host", cfg.DBHost),
		zap.String("db_name", cfg.DBName),
	)
	if err := srv.ListenAndServe(); err != nil {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newMetricsServer builds the private /metrics listener with the same read
// timeout as the public server.
func newMetricsServer(cfg *config.Config, reg prometheus.Gatherer) *http.Server {
	return &http.Server{
		Addr:        cfg.MetricsAddr,
		Handler:     api.NewMetricsRouter(reg),
		ReadTimeout: cfg.ReadTimeout,
	}
}
