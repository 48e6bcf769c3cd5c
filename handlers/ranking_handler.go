package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/btdosparca/league-system/services"
)

type RankingHandler struct {
	rankingService services.RankingService
}

func NewRankingHandler(rankingService services.RankingService) *RankingHandler {
	return &RankingHandler{rankingService: rankingService}
}

var weekdays = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// weekdayFilter parses the optional ?day= query parameter. An empty or
// unrecognized value means no filter.
func weekdayFilter(r *http.Request) *time.Weekday {
	value := strings.ToLower(r.URL.Query().Get("day"))
	if day, ok := weekdays[value]; ok {
		return &day
	}
	return nil
}

func (h *RankingHandler) Individual(w http.ResponseWriter, r *http.Request) {
	standings, err := h.rankingService.Individual(r.Context(), weekdayFilter(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func (h *RankingHandler) Doubles(w http.ResponseWriter, r *http.Request) {
	standings, err := h.rankingService.Doubles(r.Context(), weekdayFilter(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, standings)
}

func (h *RankingHandler) PlayerStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.rankingService.PlayerStats(r.Context(), chi.URLParam(r, "playerID"), weekdayFilter(r))
	if err != nil {
		mapServiceError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}
