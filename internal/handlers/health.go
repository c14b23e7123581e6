package handlers

import "net/http"

// HealthResponse represents the liveness check response
// swagger:model HealthResponse
type HealthResponse struct {
	// example: ok
	Status string `json:"status"`
}

// NewHealthHandler returns a liveness check handler.
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "ok"})
	}
}
