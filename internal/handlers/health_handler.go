// File: internal/handlers/health_handler.go
package handlers

import (
	"context"
	"net/http"

	"github.com/dcastano/go-shopchat/internal/services/ai"
)

// ProviderStatusReporter is the slice of the generator the health endpoint
// needs.
type ProviderStatusReporter interface {
	GetStatus(ctx context.Context) ai.ProviderStatus
}

type HealthHandler struct {
	Provider ProviderStatusReporter
	Version  string
}

func NewHealthHandler(provider ProviderStatusReporter, version string) *HealthHandler {
	return &HealthHandler{Provider: provider, Version: version}
}

type healthResponse struct {
	Status     string            `json:"status"`
	Version    string            `json:"version"`
	AIProvider ai.ProviderStatus `json:"ai_provider"`
}

// Health handles GET /health.
func (h *HealthHandler) Health(w http.ResponseWriter, r *http.Request) {
	status := h.Provider.GetStatus(r.Context())

	out := healthResponse{
		Status:     "ok",
		Version:    h.Version,
		AIProvider: status,
	}
	if !status.IsHealthy {
		out.Status = "degraded"
	}
	writeJSON(w, http.StatusOK, out)
}
