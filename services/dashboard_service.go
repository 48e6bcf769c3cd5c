package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
)

type DashboardService interface {
	GetStats(ctx context.Context) (*models.DashboardStats, error)
}

type dashboardService struct {
	playerRepo repositories.PlayerRepository
	matchRepo  repositories.MatchRepository
}

func NewDashboardService(playerRepo repositories.PlayerRepository, matchRepo repositories.MatchRepository) DashboardService {
	return &dashboardService{
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
	}
}

func (s *dashboardService) GetStats(ctx context.Context) (*models.DashboardStats, error) {
	stats := &models.DashboardStats{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		stats.PlayersTotal, err = s.playerRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MatchesTotal, err = s.matchRepo.Count(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		stats.MatchDaysTotal, err = s.matchRepo.CountDays(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return stats, nil
}
