package entity

import "time"

// RawRow is one tabular row keyed by column header, before validation.
type RawRow map[string]string

type Transaction struct {
	TransactionID string
	Date          time.Time // date component only, UTC midnight
	Time          time.Time // clock component only
	Fuel          string
	MachineNo     int
	NozzleNo      int
	Liters        float64
	UnitPrice     float64
	Amount        float64
	PaymentType   string
}

type TransactionResponse struct {
	ID            int64   `json:"id"`
	TransactionID string  `json:"transaction_id"`
	Date          string  `json:"date"`
	Time          string  `json:"time"`
	Fuel          string  `json:"fuel"`
	MachineNo     int     `json:"machine_no"`
	NozzleNo      int     `json:"nozzle_no"`
	Liters        float64 `json:"liters"`
	UnitPrice     float64 `json:"unit_price"`
	Amount        float64 `json:"amount"`
	PaymentType   string  `json:"payment_type"`
}

type UploadReport struct {
	Message        string   `json:"message"`
	Added          int      `json:"added"`
	Skipped        int      `json:"skipped"`
	TotalProcessed int      `json:"total_processed"`
	Errors         []string `json:"errors"`
}
