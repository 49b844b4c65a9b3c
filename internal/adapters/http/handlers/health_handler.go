package handlers

import (
	"log/slog"
	"net/http"
	"slices"

	"github.com/jsamuelsen11/go-admin-workflow/internal/platform/logging"
	"github.com/jsamuelsen11/go-admin-workflow/internal/ports"
)

const (
	statusOK       = "ok"
	statusReady    = "ready"
	statusNotReady = "not_ready"
)

// readinessResponse is the body of GET /health/ready. Checks maps each
// backend to "ok" or its error text; Failing lists the failed ones by name.
type readinessResponse struct {
	Status  string            `json:"status"`
	Checks  map[string]string `json:"checks"`
	Failing []string          `json:"failing,omitempty"`
}

// HealthHandler serves the probes of the admin process. They sit outside the
// admin middleware stack, so no session or actor is resolved for them.
type HealthHandler struct {
	registry ports.HealthRegistry
}

// NewHealthHandler creates a HealthHandler over the backend registry.
func NewHealthHandler(registry ports.HealthRegistry) *HealthHandler {
	return &HealthHandler{registry: registry}
}

// Liveness handles GET /health/live. The process answering is enough.
func (h *HealthHandler) Liveness(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, http.StatusOK, map[string]string{"status": statusOK})
}

// Readiness handles GET /health/ready: 200 when every registered backend
// answers, 503 otherwise. Each failure is logged at Warn.
func (h *HealthHandler) Readiness(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	results := h.registry.CheckAll(ctx)

	resp := readinessResponse{Status: statusReady, Checks: make(map[string]string, len(results))}
	for name, err := range results {
		if err == nil {
			resp.Checks[name] = statusOK
			continue
		}
		resp.Checks[name] = err.Error()
		resp.Failing = append(resp.Failing, name)
	}

	code := http.StatusOK
	if len(resp.Failing) > 0 {
		slices.Sort(resp.Failing)
		resp.Status = statusNotReady
		code = http.StatusServiceUnavailable

		logger := logging.FromContext(ctx)
		for _, name := range resp.Failing {
			logger.WarnContext(ctx, "readiness check failed",
				slog.String("check", name),
				slog.String("error", resp.Checks[name]),
			)
		}
	}

	w.Header().Set("Cache-Control", "no-store")
	writeJSON(w, r, code, resp)
}
