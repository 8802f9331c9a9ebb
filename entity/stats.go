package entity

// FuelBucket is one side of the petrol/diesel split.
type FuelBucket struct {
	Sales      float64 `json:"sales"`
	Liters     float64 `json:"liters"`
	Percentage float64 `json:"percentage"`
}

type TrendPoint struct {
	Sales  float64 `json:"sales"`
	Liters float64 `json:"liters"`
}

type HourlyPoint struct {
	Sales  float64 `json:"sales"`
	Liters float64 `json:"liters"`
	Count  int     `json:"count"`
}

type MachineActivity struct {
	Sales  float64 `json:"sales"`
	Liters float64 `json:"liters"`
	Count  int     `json:"count"`
}

// DashboardStats is the aggregate snapshot served to the dashboard.
// Trend maps are keyed by ISO date / "HH:00" strings, which encoding/json
// emits in sorted key order, so the wire output is chronological.
type DashboardStats struct {
	TotalSales              float64                     `json:"total_sales"`
	TotalLiters             float64                     `json:"total_liters"`
	PetrolSales             float64                     `json:"petrol_sales"`
	DieselSales             float64                     `json:"diesel_sales"`
	PetrolLiters            float64                     `json:"petrol_liters"`
	DieselLiters            float64                     `json:"diesel_liters"`
	TotalTransactions       int                         `json:"total_transactions"`
	AverageTransactionValue float64                     `json:"average_transaction_value"`
	PaymentMethods          map[string]int              `json:"payment_methods"`
	MachinesActivity        map[string]*MachineActivity `json:"machines_activity"`
	DailyTrend              map[string]*TrendPoint      `json:"daily_trend"`
	HourlyTrend             map[string]*HourlyPoint     `json:"hourly_trend"`
	FuelDistribution        map[string]FuelBucket       `json:"fuel_distribution"`
}

type DailyStats struct {
	DailySummary map[string]*TrendPoint `json:"daily_summary"`
	TotalRecords int                    `json:"total_records"`
}
