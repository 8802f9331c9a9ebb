package consts

import "time"

const (
	// Batch size for staged transaction inserts during upload
	DefaultBatchSize = 1000

	// Maximum per-row errors surfaced in an upload report
	MaxReportedRowErrors = 10

	// Upload request body cap
	MaxUploadBytes = 500 << 20 // 500MB

	// Dashboard stats cache freshness window
	CacheDuration = 10 * time.Minute

	// Fuel classification labels
	FuelPetrol = "Petrol"
	FuelDiesel = "Diesel"
)

// RequiredColumns is the header set every uploaded file must carry.
var RequiredColumns = []string{
	"transaction_id",
	"date",
	"time",
	"fuel",
	"machine_no",
	"nozzle_no",
	"liters",
	"unit_price",
	"amount",
	"payment_type",
}
