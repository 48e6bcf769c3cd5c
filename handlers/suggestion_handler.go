package handlers

import (
	"net/http"

	"github.com/btdosparca/league-system/services"
)

type SuggestionHandler struct {
	suggestionService services.SuggestionService
}

func NewSuggestionHandler(suggestionService services.SuggestionService) *SuggestionHandler {
	return &SuggestionHandler{suggestionService: suggestionService}
}

type suggestTeamsRequest struct {
	PlayerIDs []string `json:"player_ids"`
}

func (h *SuggestionHandler) SuggestTeams(w http.ResponseWriter, r *http.Request) {
	var req suggestTeamsRequest
	if err := readJSON(w, r, &req); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	suggestion, err := h.suggestionService.SuggestTeams(r.Context(), req.PlayerIDs)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, suggestion)
}
