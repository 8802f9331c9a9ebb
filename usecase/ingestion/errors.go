package ingestion

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFile is returned when a file decodes to zero rows.
var ErrEmptyFile = errors.New("file is empty")

// FormatError means the file bytes could not be decoded as the declared format.
type FormatError struct {
	Format string
	Err    error
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("error reading %s file: %v", e.Format, e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// SchemaError means the header is missing required columns. Batch-fatal:
// it is raised before any row is processed.
type SchemaError struct {
	MissingColumns []string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("missing columns: [%s]", strings.Join(e.MissingColumns, ", "))
}

// RowError is a per-row coercion or parse failure. The row is excluded and
// the batch continues.
type RowError struct {
	Row     int
	Message string
}

func (e RowError) Error() string {
	return fmt.Sprintf("Row %d: %s", e.Row, e.Message)
}

// StorageError means a durable write failed. The in-flight batch is rolled
// back; previously flushed batches stand.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}
