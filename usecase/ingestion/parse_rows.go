package ingestion

import (
	"bytes"
	"encoding/csv"
	"errors"
	"strings"

	"github.com/radhian/fuel-station-analytics/entity"

	"github.com/xuri/excelize/v2"
)

// parseRows decodes file bytes into ordered raw rows keyed by the first-row
// headers. Mapping is positional; rows shorter than the header are padded
// with empty cells. Validation happens downstream.
func parseRows(data []byte, format FileFormat) ([]entity.RawRow, error) {
	switch format {
	case FormatCSV:
		return parseCSVRows(data)
	case FormatXLSX:
		return parseXLSXRows(data)
	default:
		return nil, &FormatError{Format: "unknown", Err: errors.New("unsupported file format")}
	}
}

func parseCSVRows(data []byte) ([]entity.RawRow, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, &FormatError{Format: "CSV", Err: err}
	}
	return mapRecords(records), nil
}

func parseXLSXRows(data []byte) ([]entity.RawRow, error) {
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		return nil, &FormatError{Format: "Excel", Err: err}
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, &FormatError{Format: "Excel", Err: errors.New("workbook has no sheets")}
	}

	records, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, &FormatError{Format: "Excel", Err: err}
	}
	return mapRecords(records), nil
}

func mapRecords(records [][]string) []entity.RawRow {
	if len(records) == 0 {
		return nil
	}

	headers := make([]string, len(records[0]))
	for i, h := range records[0] {
		headers[i] = strings.TrimSpace(h)
	}

	rows := make([]entity.RawRow, 0, len(records)-1)
	for _, record := range records[1:] {
		row := make(entity.RawRow, len(headers))
		for i, header := range headers {
			if i < len(record) {
				row[header] = record[i]
			} else {
				row[header] = ""
			}
		}
		rows = append(rows, row)
	}
	return rows
}
