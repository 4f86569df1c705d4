package handler

import (
	"context"
	"net/http"

	"github.com/appnetwork/backend/internal/domain"
)

// DatabaseChecker is the slice of service.HealthService the handler needs.
type DatabaseChecker interface {
	CheckDatabase(ctx context.Context) domain.ProbeResult
}

// HealthHandler serves the liveness and database-connectivity endpoints.
type HealthHandler struct {
	checker DatabaseChecker
}

func NewHealthHandler(checker DatabaseChecker) *HealthHandler {
	return &HealthHandler{checker: checker}
}

// Root handles GET /
//
// @Summary  Liveness probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  map[string]string
// @Router   / [get]
func (h *HealthHandler) Root(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, map[string]string{"message": domain.MessageRunning})
}

// DBCheck handles GET /db-check
//
// The status code is 200 whatever the probe outcome; callers read the
// "status" field to tell success from failure.
//
// @Summary  Database connectivity probe
// @Tags     system
// @Produce  json
// @Success  200  {object}  domain.DBCheckResponse
// @Router   /db-check [get]
func (h *HealthHandler) DBCheck(w http.ResponseWriter, r *http.Request) {
	res := h.checker.CheckDatabase(r.Context())
	respondJSON(w, http.StatusOK, res.Response())
}
