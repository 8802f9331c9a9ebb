package ingestion

import (
	"strings"

	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/entity"
	"github.com/radhian/fuel-station-analytics/infra/db/dao"
)

// FileFormat is the declared format of an uploaded file.
type FileFormat int

const (
	FormatCSV FileFormat = iota + 1
	FormatXLSX
)

// FormatFromFileName maps a file extension to its declared format.
func FormatFromFileName(name string) (FileFormat, bool) {
	switch {
	case strings.HasSuffix(strings.ToLower(name), ".csv"):
		return FormatCSV, true
	case strings.HasSuffix(strings.ToLower(name), ".xlsx"):
		return FormatXLSX, true
	default:
		return 0, false
	}
}

type IngestionUsecase interface {
	ProcessUpload(fileName string, data []byte, format FileFormat) (*entity.UploadReport, error)
}

type ingestionUsecase struct {
	dao       dao.DaoMethod
	batchSize int
}

func NewIngestionUsecase(d dao.DaoMethod) IngestionUsecase {
	return &ingestionUsecase{
		dao:       d,
		batchSize: consts.DefaultBatchSize,
	}
}
