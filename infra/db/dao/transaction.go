package dao

import (
	"fmt"
	"time"

	"github.com/radhian/fuel-station-analytics/infra/db/model"
)

func (d *dao) TransactionExists(transactionID string) (bool, error) {
	var count int
	if err := d.db.
		Model(&model.Transaction{}).
		Where("transaction_id = ?", transactionID).
		Count(&count).Error; err != nil {
		return false, fmt.Errorf("failed to check transaction %s: %w", transactionID, err)
	}
	return count > 0, nil
}

// CreateTransactionsBatch commits one staged batch as a single transaction.
// A failure rolls back the whole batch; previously committed batches stand.
func (d *dao) CreateTransactionsBatch(txns []model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}

	tx := d.db.Begin()
	if tx.Error != nil {
		return fmt.Errorf("failed to begin batch insert: %w", tx.Error)
	}

	for i := range txns {
		if err := tx.Create(&txns[i]).Error; err != nil {
			tx.Rollback()
			return fmt.Errorf("failed to insert transaction batch: %w", err)
		}
	}

	if err := tx.Commit().Error; err != nil {
		return fmt.Errorf("failed to commit transaction batch: %w", err)
	}
	return nil
}

func (d *dao) GetTransactionsByDateRange(from, to *time.Time) ([]model.Transaction, error) {
	query := d.db
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var txns []model.Transaction
	if err := query.Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch transactions: %w", err)
	}
	return txns, nil
}

func (d *dao) ListTransactions(fuel string, from, to *time.Time) ([]model.Transaction, error) {
	query := d.db
	if fuel != "" {
		query = query.Where("fuel = ?", fuel)
	}
	if from != nil {
		query = query.Where("date >= ?", *from)
	}
	if to != nil {
		query = query.Where("date <= ?", *to)
	}

	var txns []model.Transaction
	if err := query.Order("date desc").Order("time desc").Find(&txns).Error; err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	return txns, nil
}

func (d *dao) DeleteAllTransactions() error {
	if err := d.db.Delete(&model.Transaction{}).Error; err != nil {
		return fmt.Errorf("failed to delete transactions: %w", err)
	}
	return nil
}

func (d *dao) Ping() error {
	var txns []model.Transaction
	if err := d.db.Limit(1).Find(&txns).Error; err != nil {
		return fmt.Errorf("storage unreachable: %w", err)
	}
	return nil
}
