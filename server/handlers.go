package server

import (
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/elvenok1/excel-phyton-analize/pkg/excelparse"
)

// uploadField is the multipart form field the extraction endpoint expects.
const uploadField = "excel_file"

const xlsxMIME = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Client-facing messages of the extraction endpoints.
const (
	msgMissingFile   = "No se encontró el archivo en la petición (se esperaba el campo 'excel_file')."
	msgEmptyFilename = "No se seleccionó ningún archivo."
	msgParseFailure  = "Error interno al procesar el archivo Excel: "
	msgNoJSON        = "No JSON received"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// handleParseExcel accepts a workbook upload and responds with the full
// structured snapshot. Client mistakes (no file part, empty filename) are
// 400s and never logged as faults; extraction failures are logged with full
// detail and surface as a generic 500.
func (s *Server) handleParseExcel(w http.ResponseWriter, r *http.Request) {
	if s.cfg.MaxUploadBytes > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, s.cfg.MaxUploadBytes)
	}

	data, filename, found := readUpload(r)
	if !found {
		writeError(w, http.StatusBadRequest, msgMissingFile)
		return
	}
	if filename == "" {
		writeError(w, http.StatusBadRequest, msgEmptyFilename)
		return
	}

	wb, err := excelparse.Parse(data)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"filename": filename,
			"size":     len(data),
		}).WithError(err).Error("workbook extraction failed")
		writeError(w, http.StatusInternalServerError, msgParseFailure+err.Error())
		return
	}

	writeJSON(w, http.StatusOK, wb)
}

// readUpload pulls the upload field out of a multipart request. A part
// counts as a file only when it declares a filename parameter, so a missing
// part and a file picker left empty stay distinguishable.
func readUpload(r *http.Request) (data []byte, filename string, found bool) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, "", false
	}

	for {
		part, err := mr.NextPart()
		if err != nil {
			return nil, "", false
		}
		if part.FormName() != uploadField {
			part.Close()
			continue
		}

		_, params, err := mime.ParseMediaType(part.Header.Get("Content-Disposition"))
		if err != nil {
			part.Close()
			return nil, "", false
		}
		name, hasFilename := params["filename"]
		if !hasFilename {
			part.Close()
			continue
		}

		data, err = io.ReadAll(part)
		part.Close()
		if err != nil {
			return nil, "", false
		}
		return data, name, true
	}
}

// handleCreateExcel is the report generation surface. Generation is not
// implemented; a valid JSON body yields an empty report attachment.
func (s *Server) handleCreateExcel(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(r.Body)
	if err != nil || len(body) == 0 {
		writeError(w, http.StatusBadRequest, msgNoJSON)
		return
	}
	var payload interface{}
	if err := json.Unmarshal(body, &payload); err != nil || payload == nil {
		writeError(w, http.StatusBadRequest, msgNoJSON)
		return
	}

	w.Header().Set("Content-Type", xlsxMIME)
	w.Header().Set("Content-Disposition", `attachment; filename="report.xlsx"`)
	w.WriteHeader(http.StatusOK)
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
