// internal/app/features/health/handler.go
package health

import (
	"net/http"

	"github.com/dalemusser/reviewhub/internal/app/store/localstore"
	"github.com/dalemusser/reviewhub/internal/app/system/respond"
	"go.uber.org/zap"
)

// Handler holds dependencies needed for health checks.
type Handler struct {
	Local *localstore.Store
	Log   *zap.Logger
}

// NewHandler constructs a health Handler with the storage probe and logger.
func NewHandler(local *localstore.Store, logger *zap.Logger) *Handler {
	return &Handler{
		Local: local,
		Log:   logger,
	}
}

// healthResponse is the JSON structure for the health check response.
type healthResponse struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Serve handles GET /health.
//
// On success: 200 and
//
//	{ "status":"ok", "storage":"available" }
//
// On storage failure: 503 and
//
//	{ "status":"error", "storage":"unavailable", "message":"Storage unavailable", "error":"…" }
func (h *Handler) Serve(w http.ResponseWriter, r *http.Request) {
	if err := h.Local.Ping(); err != nil {
		h.Log.Error("health-check: storage probe failed", zap.Error(err))
		respond.JSON(w, http.StatusServiceUnavailable, healthResponse{
			Status:  "error",
			Storage: "unavailable",
			Message: "Storage unavailable",
			Error:   err.Error(),
		})
		return
	}
	respond.JSON(w, http.StatusOK, healthResponse{
		Status:  "ok",
		Storage: "available",
	})
}
