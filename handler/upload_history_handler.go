package handler

import (
	"net/http"
	"strconv"
)

const defaultUploadHistoryLimit = 20

// UploadHistory lists recent upload audit rows, newest first.
func (h *FuelStationHandler) UploadHistory(w http.ResponseWriter, r *http.Request) {
	limit := defaultUploadHistoryLimit
	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			writeError(w, http.StatusBadRequest, "limit must be a positive integer")
			return
		}
		limit = parsed
	}

	logs, err := h.Analytics.GetUploadHistory(limit)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, logs)
}
