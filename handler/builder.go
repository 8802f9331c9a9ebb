package handler

import (
	"encoding/json"
	"net/http"

	analyticsUsecase "github.com/radhian/fuel-station-analytics/usecase/analytics"
	ingestionUsecase "github.com/radhian/fuel-station-analytics/usecase/ingestion"
)

type FuelStationHandler struct {
	Ingestion ingestionUsecase.IngestionUsecase
	Analytics analyticsUsecase.AnalyticsUsecase
}

func NewFuelStationHandler(ingestion ingestionUsecase.IngestionUsecase, analytics analyticsUsecase.AnalyticsUsecase) *FuelStationHandler {
	return &FuelStationHandler{
		Ingestion: ingestion,
		Analytics: analytics,
	}
}

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

// Error bodies carry a structured message string, never a stack trace.
func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
