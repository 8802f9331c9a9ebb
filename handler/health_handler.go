package handler

import (
	"net/http"
)

// Health verifies storage liveness with a cheap read.
func (h *FuelStationHandler) Health(w http.ResponseWriter, r *http.Request) {
	if err := h.Analytics.HealthCheck(); err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{
			"status": "unhealthy",
			"error":  err.Error(),
		})
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status":  "healthy",
		"message": "API is running",
	})
}
