package controllers

import (
	"github.com/radhian/fuel-station-analytics/handler"

	"github.com/gorilla/mux"
)

func RegisterFuelStationRoutes(router *mux.Router, h *handler.FuelStationHandler) {
	router.HandleFunc("/api/upload", h.Upload).Methods("POST", "OPTIONS")
	router.HandleFunc("/api/dashboard-stats", h.DashboardStats).Methods("GET")
	router.HandleFunc("/api/transactions", h.Transactions).Methods("GET")
	router.HandleFunc("/api/download-template", h.DownloadTemplate).Methods("GET")
	router.HandleFunc("/api/health", h.Health).Methods("GET")
	router.HandleFunc("/api/stats-by-date", h.StatsByDate).Methods("GET")
	router.HandleFunc("/api/upload-history", h.UploadHistory).Methods("GET")
	router.HandleFunc("/api/clear-database", h.ClearDatabase).Methods("DELETE", "OPTIONS")
}
