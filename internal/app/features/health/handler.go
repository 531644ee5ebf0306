// internal/app/features/health/handler.go
package health

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/dalemusser/internhub/internal/app/gateway"
	"github.com/dalemusser/internhub/internal/app/system/timeouts"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Gateway *gateway.Client
	Log     *zap.Logger
}

// NewHandler constructs a health Handler.
func NewHandler(gw *gateway.Client, logger *zap.Logger) *Handler {
	return &Handler{Gateway: gw, Log: logger}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status   string `json:"status"`
	Upstream string `json:"upstream"`
	Error    string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and {"status":"ok","upstream":"reachable"}.
// When the internship service is unreachable the dashboard itself is still
// up, so this degrades to 200 with upstream:"unreachable" rather than 503.
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), timeouts.Ping())
	defer cancel()

	w.Header().Set("Content-Type", "application/json")

	resp := healthResponse{Status: "ok", Upstream: "reachable"}
	if err := h.Gateway.Ping(ctx); err != nil {
		h.Log.Warn("upstream health check failed", zap.Error(err))
		resp.Upstream = "unreachable"
		resp.Error = gateway.AsError(err).Message
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		h.Log.Error("health response encode failed", zap.Error(err))
	}
}
