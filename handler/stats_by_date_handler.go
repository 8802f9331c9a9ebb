package handler

import (
	"errors"
	"net/http"

	"github.com/radhian/fuel-station-analytics/usecase/analytics"
)

// StatsByDate serves the daily sales/liters summary for a date range.
func (h *FuelStationHandler) StatsByDate(w http.ResponseWriter, r *http.Request) {
	dateFrom := r.URL.Query().Get("date_from")
	dateTo := r.URL.Query().Get("date_to")

	stats, err := h.Analytics.GetStatsByDate(dateFrom, dateTo)
	if err != nil {
		var inputErr *analytics.InvalidInputError
		switch {
		case errors.Is(err, analytics.ErrNoData):
			writeError(w, http.StatusNotFound, "No data found")
		case errors.As(err, &inputErr):
			writeError(w, http.StatusBadRequest, inputErr.Error())
		default:
			writeError(w, http.StatusInternalServerError, err.Error())
		}
		return
	}

	writeJSON(w, http.StatusOK, stats)
}
