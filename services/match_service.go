package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/btdosparca/league-system/live"
	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
)

type MatchInput struct {
	TeamAPlayers [2]string `json:"team_a_players"`
	TeamBPlayers [2]string `json:"team_b_players"`
	TeamAScore   int       `json:"team_a_score"`
	TeamBScore   int       `json:"team_b_score"`
}

type RecordDayInput struct {
	Date    string       `json:"date"`
	Matches []MatchInput `json:"matches"`
}

type MatchService interface {
	RecordDay(ctx context.Context, input RecordDayInput) ([]models.Match, error)
	List(ctx context.Context) ([]models.Match, error)
	GetByID(ctx context.Context, id string) (*models.Match, error)
	Delete(ctx context.Context, id string) error
}

type matchService struct {
	matchRepo  repositories.MatchRepository
	playerRepo repositories.PlayerRepository
	hub        *live.Hub
}

func NewMatchService(matchRepo repositories.MatchRepository, playerRepo repositories.PlayerRepository, hub *live.Hub) MatchService {
	return &matchService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		hub:        hub,
	}
}

func (s *matchService) notifyChanged() {
	if s.hub == nil {
		return
	}
	s.hub.Broadcast(live.CollectionMatches, live.EventMatchesUpdated, nil)
	s.hub.Broadcast(live.CollectionRankings, live.EventRankingsUpdated, nil)
}

// validScores requires exactly one team to reach the winning score.
func validScores(a, b int) bool {
	if a < 0 || b < 0 || a > models.WinningScore || b > models.WinningScore {
		return false
	}
	if a == models.WinningScore && b == models.WinningScore {
		return false
	}
	return a == models.WinningScore || b == models.WinningScore
}

func (s *matchService) RecordDay(ctx context.Context, input RecordDayInput) ([]models.Match, error) {
	if len(input.Matches) == 0 {
		return nil, ErrMatchesEmpty
	}

	date, err := parseDay(input.Date)
	if err != nil {
		return nil, ErrMatchDateInvalid
	}
	now := time.Now().UTC()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	if date.After(today) {
		return nil, ErrMatchDateInFuture
	}

	players, err := s.playerRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	roster := make(map[string]bool, len(players))
	for _, p := range players {
		roster[p.ID] = true
	}

	matches := make([]models.Match, 0, len(input.Matches))
	for _, m := range input.Matches {
		ids := []string{m.TeamAPlayers[0], m.TeamAPlayers[1], m.TeamBPlayers[0], m.TeamBPlayers[1]}
		seen := make(map[string]bool, 4)
		for _, id := range ids {
			if id == "" || seen[id] {
				return nil, ErrMatchPlayersInvalid
			}
			seen[id] = true
			if !roster[id] {
				return nil, ErrMatchPlayerUnknown
			}
		}
		if !validScores(m.TeamAScore, m.TeamBScore) {
			return nil, ErrMatchScoreInvalid
		}

		matches = append(matches, models.Match{
			ID:    uuid.NewString(),
			Date:  date,
			TeamA: models.Team{Players: m.TeamAPlayers, Score: m.TeamAScore},
			TeamB: models.Team{Players: m.TeamBPlayers, Score: m.TeamBScore},
		})
	}

	created, err := s.matchRepo.CreateBatch(ctx, matches)
	if err != nil {
		return nil, err
	}

	s.notifyChanged()
	return created, nil
}

func (s *matchService) List(ctx context.Context) ([]models.Match, error) {
	return s.matchRepo.List(ctx)
}

func (s *matchService) GetByID(ctx context.Context, id string) (*models.Match, error) {
	return s.matchRepo.GetByID(ctx, id)
}

func (s *matchService) Delete(ctx context.Context, id string) error {
	if err := s.matchRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.notifyChanged()
	return nil
}
