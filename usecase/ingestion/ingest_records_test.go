package ingestion

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/radhian/fuel-station-analytics/infra/db/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDao struct {
	stored      map[string]model.Transaction
	batches     [][]model.Transaction
	uploadLogs  []model.UploadLog
	failOnBatch int // 1-based batch number to fail on, 0 = never
}

func newFakeDao() *fakeDao {
	return &fakeDao{stored: make(map[string]model.Transaction)}
}

func (f *fakeDao) TransactionExists(transactionID string) (bool, error) {
	_, ok := f.stored[transactionID]
	return ok, nil
}

func (f *fakeDao) CreateTransactionsBatch(txns []model.Transaction) error {
	if f.failOnBatch > 0 && len(f.batches)+1 == f.failOnBatch {
		return errors.New("disk full")
	}
	batch := make([]model.Transaction, len(txns))
	copy(batch, txns)
	f.batches = append(f.batches, batch)
	for _, t := range batch {
		f.stored[t.TransactionID] = t
	}
	return nil
}

func (f *fakeDao) GetTransactionsByDateRange(from, to *time.Time) ([]model.Transaction, error) {
	var out []model.Transaction
	for _, t := range f.stored {
		out = append(out, t)
	}
	return out, nil
}

func (f *fakeDao) ListTransactions(fuel string, from, to *time.Time) ([]model.Transaction, error) {
	return f.GetTransactionsByDateRange(from, to)
}

func (f *fakeDao) DeleteAllTransactions() error {
	f.stored = make(map[string]model.Transaction)
	return nil
}

func (f *fakeDao) Ping() error { return nil }

func (f *fakeDao) CreateUploadLog(entry *model.UploadLog) error {
	f.uploadLogs = append(f.uploadLogs, *entry)
	return nil
}

func (f *fakeDao) GetRecentUploadLogs(limit int) ([]model.UploadLog, error) {
	return f.uploadLogs, nil
}

const uploadHeader = "transaction_id,date,time,fuel,machine_no,nozzle_no,liters,unit_price,amount,payment_type\n"

func uploadCSV(rows ...string) []byte {
	return []byte(uploadHeader + strings.Join(rows, "\n"))
}

func TestProcessUploadFreshFile(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	data := uploadCSV(
		"TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash",
		"TXN002,2024-01-15,08:45:00,Diesel,1,2,40.0,87.3,3492.0,Card",
	)

	report, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 2, report.Added)
	assert.Equal(t, 0, report.Skipped)
	assert.Equal(t, 2, report.TotalProcessed)
	assert.Nil(t, report.Errors)
	assert.Len(t, d.stored, 2)

	stored := d.stored["TXN001"]
	assert.Equal(t, "08:30:00", stored.Time)
	assert.Equal(t, "Petrol", stored.Fuel)
	assert.False(t, stored.CreatedAt.IsZero())
}

func TestProcessUploadDuplicatesSkipped(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	data := uploadCSV(
		"TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash",
		"TXN002,2024-01-15,08:45:00,Diesel,1,2,40.0,87.3,3492.0,Card",
	)

	_, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	// Re-uploading the identical file adds nothing.
	report, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 0, report.Added)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, report.TotalProcessed, report.Skipped)
	assert.Len(t, d.stored, 2)
}

func TestProcessUploadInFileDuplicate(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	data := uploadCSV(
		"TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash",
		"TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash",
	)

	report, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Added)
	assert.Equal(t, 1, report.Skipped)
}

func TestProcessUploadMissingColumnsRejectedBeforeStorage(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	data := []byte("transaction_id,date\nTXN001,2024-01-15\n")

	_, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.Error(t, err)

	var schemaErr *SchemaError
	require.True(t, errors.As(err, &schemaErr))
	assert.Contains(t, schemaErr.MissingColumns, "liters")
	// Batch-fatal: nothing reached storage.
	assert.Empty(t, d.stored)
	assert.Empty(t, d.batches)
}

func TestProcessUploadEmptyFile(t *testing.T) {
	u := NewIngestionUsecase(newFakeDao())

	_, err := u.ProcessUpload("sales.csv", []byte(""), FormatCSV)
	assert.ErrorIs(t, err, ErrEmptyFile)
}

func TestProcessUploadRowErrorsCapped(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	rows := []string{"TXN000,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash"}
	for i := 1; i <= 13; i++ {
		rows = append(rows, fmt.Sprintf("TXN%03d,not-a-date,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash", i))
	}

	report, err := u.ProcessUpload("sales.csv", uploadCSV(rows...), FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 1, report.Added)
	// All 13 bad rows are attempted and counted; only 10 are surfaced.
	assert.Equal(t, 13, report.Skipped)
	assert.Equal(t, 14, report.TotalProcessed)
	assert.Len(t, report.Errors, 10)
	assert.Contains(t, report.Errors[0], "Row ")
}

func TestIngestRecordsBatching(t *testing.T) {
	d := newFakeDao()
	u := &ingestionUsecase{dao: d, batchSize: 2}

	data := uploadCSV(
		"TXN001,2024-01-15,08:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN002,2024-01-15,09:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN003,2024-01-15,10:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN004,2024-01-15,11:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN005,2024-01-15,12:00:00,Petrol,1,1,10,95,950,Cash",
	)

	report, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	assert.Equal(t, 5, report.Added)
	// Two full batches plus a final partial flush.
	require.Len(t, d.batches, 3)
	assert.Len(t, d.batches[0], 2)
	assert.Len(t, d.batches[1], 2)
	assert.Len(t, d.batches[2], 1)
}

func TestIngestRecordsStorageFailureKeepsPriorBatches(t *testing.T) {
	d := newFakeDao()
	d.failOnBatch = 2
	u := &ingestionUsecase{dao: d, batchSize: 2}

	data := uploadCSV(
		"TXN001,2024-01-15,08:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN002,2024-01-15,09:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN003,2024-01-15,10:00:00,Petrol,1,1,10,95,950,Cash",
		"TXN004,2024-01-15,11:00:00,Petrol,1,1,10,95,950,Cash",
	)

	_, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.Error(t, err)

	var storageErr *StorageError
	assert.True(t, errors.As(err, &storageErr))
	// The first flushed batch stands; the in-flight one was rolled back.
	require.Len(t, d.batches, 1)
	assert.Len(t, d.stored, 2)
}

func TestProcessUploadWritesAuditLog(t *testing.T) {
	d := newFakeDao()
	u := NewIngestionUsecase(d)

	data := uploadCSV("TXN001,2024-01-15,08:30:00,Petrol,1,1,50.5,95.5,4823.75,Cash")

	_, err := u.ProcessUpload("sales.csv", data, FormatCSV)
	require.NoError(t, err)

	require.Len(t, d.uploadLogs, 1)
	entry := d.uploadLogs[0]
	assert.Equal(t, "sales.csv", entry.FileName)
	assert.Equal(t, 1, entry.Added)
	assert.NotEmpty(t, entry.UploadID)
}
