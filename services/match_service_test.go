package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btdosparca/league-system/models"
	"github.com/btdosparca/league-system/repositories"
)

type stubPlayerRepo struct {
	repositories.PlayerRepository
	players []models.Player
}

func (s *stubPlayerRepo) List(ctx context.Context) ([]models.Player, error) {
	return s.players, nil
}

type stubMatchRepo struct {
	repositories.MatchRepository
	created []models.Match
}

func (s *stubMatchRepo) CreateBatch(ctx context.Context, matches []models.Match) ([]models.Match, error) {
	for i := range matches {
		matches[i].DayID = len(s.created) + i + 1
	}
	s.created = append(s.created, matches...)
	return matches, nil
}

func rosterRepo() *stubPlayerRepo {
	return &stubPlayerRepo{players: []models.Player{
		{ID: "p1", Name: "Ana"},
		{ID: "p2", Name: "Bia"},
		{ID: "p3", Name: "Caio"},
		{ID: "p4", Name: "Dan"},
	}}
}

func validDay() RecordDayInput {
	return RecordDayInput{
		Date: "2024-05-10",
		Matches: []MatchInput{{
			TeamAPlayers: [2]string{"p1", "p2"},
			TeamBPlayers: [2]string{"p3", "p4"},
			TeamAScore:   4,
			TeamBScore:   2,
		}},
	}
}

func TestRecordDay(t *testing.T) {
	matchRepo := &stubMatchRepo{}
	svc := NewMatchService(matchRepo, rosterRepo(), nil)

	created, err := svc.RecordDay(context.Background(), validDay())
	require.NoError(t, err)
	require.Len(t, created, 1)

	m := created[0]
	assert.NotEmpty(t, m.ID)
	assert.Equal(t, 1, m.DayID)
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), m.Date)
	assert.Equal(t, 4, m.TeamA.Score)
	assert.Equal(t, 2, m.TeamB.Score)
}

func TestRecordDayValidation(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*RecordDayInput)
		wantErr error
	}{
		{
			"no matches",
			func(in *RecordDayInput) { in.Matches = nil },
			ErrMatchesEmpty,
		},
		{
			"bad date",
			func(in *RecordDayInput) { in.Date = "10/05/2024" },
			ErrMatchDateInvalid,
		},
		{
			"future date",
			func(in *RecordDayInput) { in.Date = time.Now().UTC().AddDate(0, 0, 1).Format("2006-01-02") },
			ErrMatchDateInFuture,
		},
		{
			"duplicate player",
			func(in *RecordDayInput) { in.Matches[0].TeamBPlayers[0] = "p1" },
			ErrMatchPlayersInvalid,
		},
		{
			"empty player slot",
			func(in *RecordDayInput) { in.Matches[0].TeamAPlayers[1] = "" },
			ErrMatchPlayersInvalid,
		},
		{
			"player not on roster",
			func(in *RecordDayInput) { in.Matches[0].TeamAPlayers[0] = "ghost" },
			ErrMatchPlayerUnknown,
		},
		{
			"no winner",
			func(in *RecordDayInput) { in.Matches[0].TeamAScore = 3 },
			ErrMatchScoreInvalid,
		},
		{
			"two winners",
			func(in *RecordDayInput) { in.Matches[0].TeamBScore = 4 },
			ErrMatchScoreInvalid,
		},
		{
			"score above limit",
			func(in *RecordDayInput) { in.Matches[0].TeamAScore = 5 },
			ErrMatchScoreInvalid,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			matchRepo := &stubMatchRepo{}
			svc := NewMatchService(matchRepo, rosterRepo(), nil)

			input := validDay()
			tt.mutate(&input)

			_, err := svc.RecordDay(context.Background(), input)
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, matchRepo.created)
		})
	}
}

func TestRecordDayRejectsWholeBatch(t *testing.T) {
	matchRepo := &stubMatchRepo{}
	svc := NewMatchService(matchRepo, rosterRepo(), nil)

	input := validDay()
	input.Matches = append(input.Matches, MatchInput{
		TeamAPlayers: [2]string{"p1", "p3"},
		TeamBPlayers: [2]string{"p2", "p4"},
		TeamAScore:   4,
		TeamBScore:   4,
	})

	_, err := svc.RecordDay(context.Background(), input)
	require.ErrorIs(t, err, ErrMatchScoreInvalid)
	assert.Empty(t, matchRepo.created)
}
