package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/btdosparca/league-system/services"
)

const maxAvatarBytes = 5 << 20

type PlayerHandler struct {
	playerService services.PlayerService
}

func NewPlayerHandler(playerService services.PlayerService) *PlayerHandler {
	return &PlayerHandler{playerService: playerService}
}

func (h *PlayerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var input services.CreatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.Create(r.Context(), input)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, player)
}

func (h *PlayerHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.playerService.List(r.Context())
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, players)
}

func (h *PlayerHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	player, err := h.playerService.GetByID(r.Context(), chi.URLParam(r, "playerID"))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (h *PlayerHandler) Update(w http.ResponseWriter, r *http.Request) {
	var input services.UpdatePlayerInput
	if err := readJSON(w, r, &input); err != nil {
		errorResponse(w, http.StatusBadRequest, err.Error())
		return
	}

	player, err := h.playerService.Update(r.Context(), chi.URLParam(r, "playerID"), input)
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}

func (h *PlayerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.playerService.Delete(r.Context(), chi.URLParam(r, "playerID")); err != nil {
		mapServiceError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *PlayerHandler) UploadAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
		errorResponse(w, http.StatusBadRequest, "could not parse multipart form")
		return
	}

	file, header, err := r.FormFile("avatar")
	if err != nil {
		errorResponse(w, http.StatusBadRequest, "avatar file is required")
		return
	}
	defer file.Close()

	player, err := h.playerService.UploadAvatar(r.Context(), chi.URLParam(r, "playerID"), file, header.Header.Get("Content-Type"))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, player)
}
