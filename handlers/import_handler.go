package handlers

import (
	"io"
	"net/http"

	"github.com/btdosparca/league-system/services"
)

const maxWorkbookBytes = 10 << 20

type ImportHandler struct {
	importService services.ImportService
}

func NewImportHandler(importService services.ImportService) *ImportHandler {
	return &ImportHandler{importService: importService}
}

func (h *ImportHandler) ImportHistory(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxWorkbookBytes); err != nil {
		errorResponse(w, http.StatusBadRequest, "could not parse multipart form")
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "spreadsheet file is required")
		return
	}
	defer file.Close()

	workbook, err := io.ReadAll(file)
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "could not read spreadsheet file")
		return
	}

	outcome, err := h.importService.ImportHistory(r.Context(), workbook)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, outcome)
}
