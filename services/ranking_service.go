package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/rankings"
	"github.com/btdosparca/league-system/repositories"
	"github.com/btdosparca/league-system/storage"
)

// PlayerStats bundles a player's standing with their win-rate history.
type PlayerStats struct {
	Ranking *models.IndividualRanking `json:"ranking"`
	Series  []models.PerformancePoint `json:"series"`
}

type RankingService interface {
	Individual(ctx context.Context, weekday *time.Weekday) ([]models.IndividualRanking, error)
	Doubles(ctx context.Context, weekday *time.Weekday) ([]models.DoublesRanking, error)
	PlayerStats(ctx context.Context, playerID string, weekday *time.Weekday) (*PlayerStats, error)
}

type rankingService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
	uploader   storage.FileUploader
}

func NewRankingService(playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository, uploader storage.FileUploader) RankingService {
	return &rankingService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		uploader:   uploader,
	}
}

// snapshot loads the roster and match history concurrently.
func (s *rankingService) snapshot(ctx context.Context, weekday *time.Weekday) ([]models.Player, []models.Match, error) {
	var (
		players []models.Player
		matches []models.Match
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		players, err = s.playerRepo.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		matches, err = s.matchRepo.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	populateAvatarURLs(players, s.uploader)
	if weekday != nil {
		matches = rankings.FilterByWeekday(matches, *weekday)
	}
	return players, matches, nil
}

func (s *rankingService) Individual(ctx context.Context, weekday *time.Weekday) ([]models.IndividualRanking, error) {
	players, matches, err := s.snapshot(ctx, weekday)
	if err != nil {
		return nil, err
	}
	return rankings.CalculateIndividual(matches, players, time.Now().UTC()), nil
}

func (s *rankingService) Doubles(ctx context.Context, weekday *time.Weekday) ([]models.DoublesRanking, error) {
	players, matches, err := s.snapshot(ctx, weekday)
	if err != nil {
		return nil, err
	}
	return rankings.CalculateDoubles(matches, players), nil
}

func (s *rankingService) PlayerStats(ctx context.Context, playerID string, weekday *time.Weekday) (*PlayerStats, error) {
	if _, err := s.playerRepo.GetByID(ctx, playerID); err != nil {
		return nil, err
	}

	players, matches, err := s.snapshot(ctx, weekday)
	if err != nil {
		return nil, err
	}

	stats := &PlayerStats{
		Series: rankings.PerformanceSeries(matches, playerID),
	}
	standings := rankings.CalculateIndividual(matches, players, time.Now().UTC())
	for i := range standings {
		if standings[i].PlayerID == playerID {
			stats.Ranking = &standings[i]
			break
		}
	}
	return stats, nil
}
