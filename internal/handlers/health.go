package handlers

import "net/http"

// HealthResponse reports service liveness
// swagger:model HealthResponse
type HealthResponse struct {
	// default: healthy
	Status string `json:"status"`
}

// NewHealthHandler returns the liveness probe handler.
// @Summary Health check
// @Tags system
// @Produce json
// @Success 200 {object} handlers.HealthResponse
// @Router /health [get]
func NewHealthHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, HealthResponse{Status: "healthy"})
	}
}
