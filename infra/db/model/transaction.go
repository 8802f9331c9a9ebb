package model

import (
	"time"

	"github.com/radhian/fuel-station-analytics/entity"
)

type Transaction struct {
	ID            int64     `gorm:"primary_key;auto_increment" json:"id"`
	TransactionID string    `gorm:"size:50;unique_index;not null" json:"transaction_id"`
	Date          time.Time `gorm:"type:date;not null;index" json:"date"`
	Time          string    `gorm:"size:8;not null" json:"time"`
	Fuel          string    `gorm:"size:20;not null;index" json:"fuel"`
	MachineNo     int       `gorm:"not null;index" json:"machine_no"`
	NozzleNo      int       `gorm:"not null" json:"nozzle_no"`
	Liters        float64   `gorm:"not null" json:"liters"`
	UnitPrice     float64   `gorm:"not null" json:"unit_price"`
	Amount        float64   `gorm:"not null" json:"amount"`
	PaymentType   string    `gorm:"size:50;not null;index" json:"payment_type"`
	CreatedAt     time.Time `json:"created_at"`
}

func (Transaction) TableName() string {
	return "transactions"
}

// ToResponse formats the stored row for the transactions listing API.
func (t Transaction) ToResponse() entity.TransactionResponse {
	return entity.TransactionResponse{
		ID:            t.ID,
		TransactionID: t.TransactionID,
		Date:          t.Date.Format("2006-01-02"),
		Time:          t.Time,
		Fuel:          t.Fuel,
		MachineNo:     t.MachineNo,
		NozzleNo:      t.NozzleNo,
		Liters:        t.Liters,
		UnitPrice:     t.UnitPrice,
		Amount:        t.Amount,
		PaymentType:   t.PaymentType,
	}
}
