package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/appnetwork/backend/internal/api/handler"
	apimw "github.com/appnetwork/backend/internal/api/middleware"
)

// NewRouter builds the public HTTP surface: GET / and GET /db-check.
func NewRouter(checker handler.DatabaseChecker, logger *zap.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(chimw.Recoverer)
	r.Use(apimw.RequestID)
	r.Use(apimw.AccessLog(logger))

	hh := handler.NewHealthHandler(checker)

	r.Get("/", hh.Root)
	r.Get("/db-check", hh.DBCheck)

	return r
}

// NewMetricsRouter serves the Prometheus scrape endpoint. It runs on its own
// listener (METRICS_ADDR) so the public router keeps only its two routes.
func NewMetricsRouter(reg prometheus.Gatherer) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	return r
}
