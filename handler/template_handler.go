package handler

import (
	"net/http"
)

const templateCSV = `transaction_id,date,time,fuel,machine_no,nozzle_no,liters,unit_price,amount,payment_type
TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash
TXN002,2024-01-15,08:45:00,Diesel,1,2,40.0,87.3,3492.0,Card`

// DownloadTemplate serves a 2-row sample CSV with the required headers.
func (h *FuelStationHandler) DownloadTemplate(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/csv")
	w.Header().Set("Content-Disposition", "attachment; filename=fuel_station_template.csv")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(templateCSV))
}
