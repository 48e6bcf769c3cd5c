package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/btdosparca/league-system/services"
)

type MatchHandler struct {
	matchService services.MatchService
}

func NewMatchHandler(matchService services.MatchService) *MatchHandler {
	return &MatchHandler{matchService: matchService}
}

func (h *MatchHandler) RecordDay(w http.ResponseWriter, r *http.Request) {
	var input services.RecordDayInput
	if err := readJSON(w, r, &input); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	matches, err := h.matchService.RecordDay(r.Context(), input)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, matches)
}

func (h *MatchHandler) List(w http.ResponseWriter, r *http.Request) {
	matches, err := h.matchService.List(r.Context())
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, matches)
}

func (h *MatchHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	match, err := h.matchService.GetByID(r.Context(), chi.URLParam(r, "matchID"))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, match)
}

func (h *MatchHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.matchService.Delete(r.Context(), chi.URLParam(r, "matchID")); err != nil {
		mapServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
