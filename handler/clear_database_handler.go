package handler

import (
	"net/http"
)

// ClearDatabase deletes every stored transaction and resets the stats cache.
func (h *FuelStationHandler) ClearDatabase(w http.ResponseWriter, r *http.Request) {
	if err := h.Analytics.ClearAll(); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to delete data: "+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"message": "All data deleted successfully",
		"status":  "success",
	})
}
