package ingestion

import (
	"time"

	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/entity"
	"github.com/radhian/fuel-station-analytics/infra/db/model"
	"github.com/radhian/fuel-station-analytics/utils"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// ProcessUpload runs the full ingestion pipeline: parse, schema check,
// per-row validation, dedup against storage, batched insert.
func (u *ingestionUsecase) ProcessUpload(fileName string, data []byte, format FileFormat) (*entity.UploadReport, error) {
	start := time.Now()

	rows, err := parseRows(data, format)
	if err != nil {
		log.Errorf("[Upload] Parse failed for %s: %v", fileName, err)
		return nil, err
	}
	if len(rows) == 0 {
		return nil, ErrEmptyFile
	}

	if err := checkSchema(rows[0]); err != nil {
		log.Warnf("[Upload] Schema check failed for %s: %v", fileName, err)
		return nil, err
	}

	records, rowErrs := validateRows(rows)
	log.Infof("[Upload] %s: %d rows, %d valid, %d rejected", fileName, len(rows), len(records), len(rowErrs))

	added, skipped, err := u.ingestRecords(records)
	if err != nil {
		log.Errorf("[Upload] Ingest aborted for %s after %d added: %v", fileName, added, err)
		return nil, err
	}

	skipped += len(rowErrs)
	report := &entity.UploadReport{
		Message:        "File uploaded successfully",
		Added:          added,
		Skipped:        skipped,
		TotalProcessed: added + skipped,
		Errors:         capRowErrors(rowErrs),
	}

	u.writeUploadLog(fileName, report, len(rowErrs), time.Since(start))

	log.Infof("[Upload] %s done: added=%d skipped=%d total=%d", fileName, report.Added, report.Skipped, report.TotalProcessed)
	return report, nil
}

// ingestRecords stages novel records and flushes them in fixed-size batches.
// The duplicate check and the insert are not one atomic step; concurrent
// uploads of the same ID can race (single-operator usage assumed).
func (u *ingestionUsecase) ingestRecords(records []entity.Transaction) (added, skipped int, err error) {
	staged := make([]model.Transaction, 0, u.batchSize)
	stagedIDs := make(map[string]bool, len(records))
	ingestedAt := time.Now().UTC()

	for _, record := range records {
		if stagedIDs[record.TransactionID] {
			skipped++
			continue
		}

		exists, err := u.dao.TransactionExists(record.TransactionID)
		if err != nil {
			return added, skipped, &StorageError{Err: err}
		}
		if exists {
			skipped++
			continue
		}

		stagedIDs[record.TransactionID] = true
		staged = append(staged, toModel(record, ingestedAt))

		if len(staged) >= u.batchSize {
			if err := u.dao.CreateTransactionsBatch(staged); err != nil {
				return added, skipped, &StorageError{Err: err}
			}
			added += len(staged)
			staged = staged[:0]
		}
	}

	if len(staged) > 0 {
		if err := u.dao.CreateTransactionsBatch(staged); err != nil {
			return added, skipped, &StorageError{Err: err}
		}
		added += len(staged)
	}

	return added, skipped, nil
}

func toModel(record entity.Transaction, ingestedAt time.Time) model.Transaction {
	return model.Transaction{
		TransactionID: record.TransactionID,
		Date:          record.Date,
		Time:          record.Time.Format("15:04:05"),
		Fuel:          record.Fuel,
		MachineNo:     record.MachineNo,
		NozzleNo:      record.NozzleNo,
		Liters:        record.Liters,
		UnitPrice:     record.UnitPrice,
		Amount:        record.Amount,
		PaymentType:   record.PaymentType,
		CreatedAt:     ingestedAt,
	}
}

// capRowErrors surfaces only the first errors; rows beyond the cap were
// still attempted, only the report is truncated.
func capRowErrors(rowErrs []RowError) []string {
	if len(rowErrs) == 0 {
		return nil
	}
	capped := make([]string, 0, utils.Min(len(rowErrs), consts.MaxReportedRowErrors))
	for _, e := range rowErrs[:utils.Min(len(rowErrs), consts.MaxReportedRowErrors)] {
		capped = append(capped, e.Error())
	}
	return capped
}

// Audit write is best effort; a failure is logged, never surfaced.
func (u *ingestionUsecase) writeUploadLog(fileName string, report *entity.UploadReport, errorCount int, elapsed time.Duration) {
	entry := &model.UploadLog{
		UploadID:   uuid.NewString(),
		FileName:   fileName,
		Added:      report.Added,
		Skipped:    report.Skipped,
		TotalRows:  report.TotalProcessed,
		ErrorCount: errorCount,
		DurationMs: elapsed.Milliseconds(),
		CreateTime: time.Now().Unix(),
	}
	if err := u.dao.CreateUploadLog(entry); err != nil {
		log.Errorf("[Upload] Failed to write upload log for %s: %v", fileName, err)
	}
}
