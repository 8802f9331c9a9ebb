package handler

import (
	"errors"
	"net/http"

	"github.com/radhian/fuel-station-analytics/usecase/analytics"
)

// DashboardStats serves the aggregate snapshot, optionally bounded by an
// inclusive start_date/end_date range in any common date format.
func (h *FuelStationHandler) DashboardStats(w http.ResponseWriter, r *http.Request) {
	startDate := r.URL.Query().Get("start_date")
	endDate := r.URL.Query().Get("end_date")

	stats, err := h.Analytics.GetDashboardStats(startDate, endDate)
	if err != nil {
		var inputErr *analytics.InvalidInputError
		if errors.As(err, &inputErr) {
			writeError(w, http.StatusBadRequest, inputErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
