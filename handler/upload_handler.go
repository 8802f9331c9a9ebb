package handler

import (
	"errors"
	"io"
	"net/http"

	"github.com/radhian/fuel-station-analytics/consts"
	"github.com/radhian/fuel-station-analytics/usecase/ingestion"

	"github.com/labstack/gommon/log"
)

// Upload ingests a CSV or XLSX file of transactions. Batches flushed before
// a storage failure stay committed; the response counts reflect that.
func (h *FuelStationHandler) Upload(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, consts.MaxUploadBytes)

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No file provided")
		return
	}
	defer file.Close()

	if header.Filename == "" {
		writeError(w, http.StatusBadRequest, "No file selected")
		return
	}

	format, ok := ingestion.FormatFromFileName(header.Filename)
	if !ok {
		writeError(w, http.StatusBadRequest, "Only CSV and Excel files are supported")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Upload error: "+err.Error())
		return
	}
	if len(data) == 0 {
		writeError(w, http.StatusBadRequest, "File is empty")
		return
	}

	report, err := h.Ingestion.ProcessUpload(header.Filename, data, format)
	if err != nil {
		h.writeUploadError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, report)
}

func (h *FuelStationHandler) writeUploadError(w http.ResponseWriter, err error) {
	var schemaErr *ingestion.SchemaError
	var formatErr *ingestion.FormatError

	switch {
	case errors.Is(err, ingestion.ErrEmptyFile):
		writeError(w, http.StatusBadRequest, "File is empty")
	case errors.As(err, &schemaErr):
		writeError(w, http.StatusBadRequest, schemaErr.Error())
	case errors.As(err, &formatErr):
		writeError(w, http.StatusBadRequest, formatErr.Error())
	default:
		log.Errorf("[Upload] Unexpected failure: %v", err)
		writeError(w, http.StatusInternalServerError, "Upload error: "+err.Error())
	}
}
