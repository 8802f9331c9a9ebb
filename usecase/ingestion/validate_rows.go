package ingestion

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/entity"

	"github.com/araddon/dateparse"
)

// checkSchema verifies the required column set against the header, once per
// batch. The parser pads every row to the full header, so the first row
// carries the complete column set.
func checkSchema(row entity.RawRow) error {
	var missing []string
	for _, col := range consts.RequiredColumns {
		if _, ok := row[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &SchemaError{MissingColumns: missing}
	}
	return nil
}

// validateRows coerces raw rows into typed records. A row that fails
// coercion yields a RowError and is excluded; the batch continues.
func validateRows(rows []entity.RawRow) ([]entity.Transaction, []RowError) {
	records := make([]entity.Transaction, 0, len(rows))
	var rowErrs []RowError

	for i, row := range rows {
		record, err := validateRow(row)
		if err != nil {
			rowErrs = append(rowErrs, RowError{Row: i + 1, Message: err.Error()})
			continue
		}
		records = append(records, record)
	}
	return records, rowErrs
}

func validateRow(row entity.RawRow) (entity.Transaction, error) {
	var record entity.Transaction

	date, err := parseDate(row["date"])
	if err != nil {
		return record, err
	}

	clock, err := parseClock(row["time"])
	if err != nil {
		return record, err
	}

	machineNo, err := parseIntLoose("machine_no", row["machine_no"])
	if err != nil {
		return record, err
	}

	nozzleNo, err := parseIntLoose("nozzle_no", row["nozzle_no"])
	if err != nil {
		return record, err
	}

	liters, err := parseFloat("liters", row["liters"])
	if err != nil {
		return record, err
	}

	unitPrice, err := parseFloat("unit_price", row["unit_price"])
	if err != nil {
		return record, err
	}

	amount, err := parseFloat("amount", row["amount"])
	if err != nil {
		return record, err
	}

	record = entity.Transaction{
		TransactionID: strings.TrimSpace(row["transaction_id"]),
		Date:          date,
		Time:          clock,
		Fuel:          strings.TrimSpace(row["fuel"]),
		MachineNo:     machineNo,
		NozzleNo:      nozzleNo,
		Liters:        liters,
		UnitPrice:     unitPrice,
		Amount:        amount,
		PaymentType:   strings.TrimSpace(row["payment_type"]),
	}
	return record, nil
}

// parseDate accepts the common textual date formats (ISO-8601, US m/d/y,
// spelled months) and truncates to the calendar date.
func parseDate(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty date")
	}

	parsed, err := dateparse.ParseAny(value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %v", value, err)
	}
	return time.Date(parsed.Year(), parsed.Month(), parsed.Day(), 0, 0, 0, 0, time.UTC), nil
}

var clockLayouts = []string{
	"15:04:05",
	"15:04",
	"3:04:05 PM",
	"3:04 PM",
	"15:04:05.999999",
}

// parseClock parses a time-of-day value, normalized to a zero date.
func parseClock(raw string) (time.Time, error) {
	value := strings.TrimSpace(raw)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty time")
	}

	for _, layout := range clockLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return time.Date(0, 1, 1, parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC), nil
		}
	}

	// Tolerate full timestamps in the time column.
	if parsed, err := dateparse.ParseAny(value); err == nil {
		return time.Date(0, 1, 1, parsed.Hour(), parsed.Minute(), parsed.Second(), 0, time.UTC), nil
	}

	return time.Time{}, fmt.Errorf("invalid time %q", value)
}

// parseIntLoose coerces via float then truncates, tolerating values like "1.0".
func parseIntLoose(field, raw string) (int, error) {
	value := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return int(f), nil
}

func parseFloat(field, raw string) (float64, error) {
	value := strings.TrimSpace(raw)
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q", field, value)
	}
	return f, nil
}
