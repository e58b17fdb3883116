package api

import (
	"context"
	"net/http"
	"time"

	"go.uber.org/zap"

	shared "github.com/IvanChernomyrdin/go-tabkeeper/internal/shared/models"
)

const healthTimeout = 2 * time.Second

// HealthResponse — ответ GET /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// Health проверяет доступность хранилища.
//
// @Summary      Health check
// @Tags         service
// @Produce      json
// @Success      200 {object} HealthResponse
// @Failure      503 {object} shared.ErrorsResponse "Store unavailable"
// @Router       /health [get]
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthTimeout)
	defer cancel()

	if err := h.Svc.Health.Ping(ctx); err != nil {
		h.Log.Warn("health check failed", zap.Error(err))
		WriteJSON(w, http.StatusServiceUnavailable, shared.ErrorsResponse{Errors: []string{"store unavailable"}})
		return
	}
	WriteJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
}
