package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/btdosparca/league-system/importer"
	"github.com/btdosparca/league-system/repositories"
	"github.com/btdosparca/league-system/services"
)

const maxRequestBodyBytes = 1 << 20

func readJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodyBytes)

	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return fmt.Errorf("decoding request body: %w", err)
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return errors.New("request body must contain a single JSON object")
	}
	return nil
}

func writeJSON(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data != nil {
		_ = json.NewEncoder(w).Encode(data)
	}
}

func errorResponse(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// rejectionResponse is the body returned when a workbook fails validation.
type rejectionResponse struct {
	Error    string   `json:"error"`
	Category string   `json:"category"`
	Rows     []int    `json:"rows,omitempty"`
	Dates    []string `json:"dates,omitempty"`
}

func mapServiceError(w http.ResponseWriter, err error) {
	var rejection *importer.RejectionError
	if errors.As(err, &rejection) {
		writeJSON(w, http.StatusUnprocessableEntity, rejectionResponse{
			Error:    rejection.Error(),
			Category: string(rejection.Category),
			Rows:     rejection.Rows,
			Dates:    rejection.Dates,
		})
		return
	}

	switch {
	case errors.Is(err, repositories.ErrPlayerNotFound),
		errors.Is(err, repositories.ErrMatchNotFound),
		errors.Is(err, repositories.ErrUserNotFound):
		errorResponse(w, http.StatusNotFound, err.Error())
	case errors.Is(err, repositories.ErrPlayerNameConflict),
		errors.Is(err, repositories.ErrUserEmailConflict),
		errors.Is(err, repositories.ErrMatchConflict):
		errorResponse(w, http.StatusConflict, err.Error())
	case errors.Is(err, services.ErrAuthInvalidCredentials):
		errorResponse(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrAuthEmailRequired),
		errors.Is(err, services.ErrAuthPasswordTooShort),
		errors.Is(err, services.ErrPlayerNameRequired),
		errors.Is(err, services.ErrPlayerDOBInvalid),
		errors.Is(err, services.ErrMatchesEmpty),
		errors.Is(err, services.ErrMatchDateInvalid),
		errors.Is(err, services.ErrMatchDateInFuture),
		errors.Is(err, services.ErrMatchPlayersInvalid),
		errors.Is(err, services.ErrMatchPlayerUnknown),
		errors.Is(err, services.ErrMatchScoreInvalid),
		errors.Is(err, services.ErrNotEnoughPlayers),
		errors.Is(err, importer.ErrWorkbookParse):
		errorResponse(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrUnsupportedFileType):
		errorResponse(w, http.StatusUnsupportedMediaType, err.Error())
	case errors.Is(err, services.ErrUploaderNotConfigured),
		errors.Is(err, services.ErrSuggestionsNotConfigured):
		errorResponse(w, http.StatusServiceUnavailable, err.Error())
	default:
		errorResponse(w, http.StatusInternalServerError, "internal server error")
	}
}
