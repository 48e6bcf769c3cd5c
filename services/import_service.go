package services

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/btdosparca/league-system/importer"
	"github.com/btdosparca/league-system/live"
	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
)

// ImportOutcome reports what a workbook import produced. When the
// workbook mentions players missing from the roster nothing is written
// and PendingPlayers lists the names that need to be registered first.
type ImportOutcome struct {
	Imported       int      `json:"imported"`
	PendingPlayers []string `json:"pending_players,omitempty"`
}

type ImportService interface {
	ImportHistory(ctx context.Context, workbook []byte) (*ImportOutcome, error)
}

type importService struct {
	matchRepo  repositories.MatchRepository
	playerRepo repositories.PlayerRepository
	hub        *live.Hub
}

func NewImportService(matchRepo repositories.MatchRepository, playerRepo repositories.PlayerRepository, hub *live.Hub) ImportService {
	return &importService{
		matchRepo:  matchRepo,
		playerRepo: playerRepo,
		hub:        hub,
	}
}

func (s *importService) ImportHistory(ctx context.Context, workbook []byte) (*ImportOutcome, error) {
	rows, err := importer.ParseWorkbook(workbook)
	if err != nil {
		return nil, err
	}

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
		return nil, err
	}

	result, err := importer.Validate(rows, players, matches, time.Now().UTC())
	if err != nil {
		return nil, err
	}

	if len(result.PendingPlayers) > 0 {
		return &ImportOutcome{PendingPlayers: result.PendingPlayers}, nil
	}

	created, err := s.matchRepo.CreateBatch(ctx, result.Matches)
	if err != nil {
		return nil, err
	}

	if s.hub != nil {
		s.hub.Broadcast(live.CollectionMatches, live.EventMatchesUpdated, nil)
		s.hub.Broadcast(live.CollectionRankings, live.EventRankingsUpdated, nil)
	}
	return &ImportOutcome{Imported: len(created)}, nil
}
