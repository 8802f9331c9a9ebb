package dao

import (
	"time"

	"github.com/radhian/fuel-station-analytics/infra/db/model"

	"github.com/jinzhu/gorm"
)

type DaoMethod interface {
	TransactionExists(transactionID string) (bool, error)
	CreateTransactionsBatch(txns []model.Transaction) error
	GetTransactionsByDateRange(from, to *time.Time) ([]model.Transaction, error)
	ListTransactions(fuel string, from, to *time.Time) ([]model.Transaction, error)
	DeleteAllTransactions() error
	Ping() error
	CreateUploadLog(entry *model.UploadLog) error
	GetRecentUploadLogs(limit int) ([]model.UploadLog, error)
}

type dao struct {
	db *gorm.DB
}

func NewDaoMethod(db *gorm.DB) DaoMethod {
	return &dao{db: db}
}
