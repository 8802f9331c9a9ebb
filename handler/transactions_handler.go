package handler

import (
	"errors"
	"net/http"

	"github.com/radhian/fuel-station-analytics/usecase/analytics"
)

// Transactions lists stored records, newest first, with optional exact fuel
// match and strict YYYY-MM-DD range bounds.
func (h *FuelStationHandler) Transactions(w http.ResponseWriter, r *http.Request) {
	fuel := r.URL.Query().Get("fuel")
	dateFrom := r.URL.Query().Get("date_from")
	dateTo := r.URL.Query().Get("date_to")

	txns, err := h.Analytics.ListTransactions(fuel, dateFrom, dateTo)
	if err != nil {
		var inputErr *analytics.InvalidInputError
		if errors.As(err, &inputErr) {
			writeError(w, http.StatusBadRequest, inputErr.Error())
			return
		}
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}

	writeJSON(w, http.StatusOK, txns)
}
