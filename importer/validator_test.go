package importer

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btdosparca/league-system/models"
)

var validateNow = time.Date(2024, 6, 1, 15, 0, 0, 0, time.UTC)

func roster() []models.Player {
	return []models.Player{
		{ID: "id-ana", Name: "Ana"},
		{ID: "id-bia", Name: "Bia"},
		{ID: "id-caio", Name: "Caio"},
		{ID: "id-dan", Name: "Dan"},
	}
}

func row(line int, date string, players [4]string, scoreA, scoreB string) Row {
	return Row{Line: line, Date: date, Players: players, ScoreA: scoreA, ScoreB: scoreB}
}

func TestValidateMaterializesCleanRows(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "11/05/2024", [4]string{"Caio", "Ana", "Bia", "Dan"}, "1", "4"),
	}

	result, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	require.Empty(t, result.PendingPlayers)
	require.Len(t, result.Matches, 2)

	first := result.Matches[0]
	assert.Equal(t, time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC), first.Date)
	assert.Equal(t, [2]string{"id-ana", "id-bia"}, first.TeamA.Players)
	assert.Equal(t, [2]string{"id-caio", "id-dan"}, first.TeamB.Players)
	assert.Equal(t, 4, first.TeamA.Score)
	assert.Equal(t, 2, first.TeamB.Score)

	wantID := fmt.Sprintf("imported-%d-0", first.Date.UnixMilli())
	assert.Equal(t, wantID, first.ID)
}

func TestValidateIsDeterministic(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	first, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	second, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)

	assert.Equal(t, first.Matches, second.Matches)
}

func TestValidateAcceptsMultipleDateLayouts(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "2024-05-11", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(4, "12-05-2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	result, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	require.Len(t, result.Matches, 3)
	assert.Equal(t, time.Date(2024, 5, 11, 0, 0, 0, 0, time.UTC), result.Matches[1].Date)
	assert.Equal(t, time.Date(2024, 5, 12, 0, 0, 0, 0, time.UTC), result.Matches[2].Date)
}

func TestValidateRejectsInvalidScores(t *testing.T) {
	tests := []struct {
		name   string
		scoreA string
		scoreB string
	}{
		{"both at four", "4", "4"},
		{"nobody reaches four", "3", "2"},
		{"out of range", "5", "4"},
		{"negative", "-1", "4"},
		{"not a number", "x", "4"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := []Row{
				row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, tt.scoreA, tt.scoreB),
			}

			_, err := Validate(rows, roster(), nil, validateNow)
			var rejection *RejectionError
			require.ErrorAs(t, err, &rejection)
			assert.Equal(t, CategoryInvalidRows, rejection.Category)
			assert.Equal(t, []int{2}, rejection.Rows)
		})
	}
}

func TestValidateRejectsUnparseableDates(t *testing.T) {
	rows := []Row{
		row(2, "not a date", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	_, err := Validate(rows, roster(), nil, validateNow)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, CategoryInvalidRows, rejection.Category)
	assert.Equal(t, []int{2}, rejection.Rows)
}

func TestValidateRejectsFutureDates(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "02/06/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(4, "03/06/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	_, err := Validate(rows, roster(), nil, validateNow)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, CategoryFutureDates, rejection.Category)
	assert.Equal(t, []int{3, 4}, rejection.Rows)
}

func TestValidateAcceptsToday(t *testing.T) {
	rows := []Row{
		row(2, "01/06/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	result, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
}

func TestValidateRejectsConflictingDates(t *testing.T) {
	history := []models.Match{
		{Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
	}
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "11/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	_, err := Validate(rows, roster(), history, validateNow)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, CategoryConflictingDates, rejection.Category)
	assert.Equal(t, []string{"10/05/2024"}, rejection.Dates)
}

func TestValidateConflictingDatesWinPrecedence(t *testing.T) {
	history := []models.Match{
		{Date: time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)},
	}
	// One conflicting row, one future row, one invalid row, one unknown
	// player. Only the conflict is reported.
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "02/06/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(4, "11/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "4"),
		row(5, "12/05/2024", [4]string{"Zeca", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	_, err := Validate(rows, roster(), history, validateNow)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, CategoryConflictingDates, rejection.Category)
}

func TestValidateFutureDatesWinOverInvalidRows(t *testing.T) {
	rows := []Row{
		row(2, "02/06/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "10/05/2024", [4]string{"Ana", "Bia", "Caio", "Dan"}, "4", "4"),
	}

	_, err := Validate(rows, roster(), nil, validateNow)
	var rejection *RejectionError
	require.ErrorAs(t, err, &rejection)
	assert.Equal(t, CategoryFutureDates, rejection.Category)
	assert.Equal(t, []int{2}, rejection.Rows)
}

func TestValidatePausesOnUnknownPlayers(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "Zeca", "Caio", "Dan"}, "4", "2"),
		row(3, "11/05/2024", [4]string{"Zeca", "Bia", "Rui", "Dan"}, "4", "2"),
	}

	result, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	assert.Empty(t, result.Matches)
	// De-duplicated, first-seen order.
	assert.Equal(t, []string{"Zeca", "Rui"}, result.PendingPlayers)
}

func TestValidateMatchesNamesCaseInsensitively(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"ana", " BIA ", "caio", "DAN"}, "4", "2"),
	}

	result, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, [2]string{"id-ana", "id-bia"}, result.Matches[0].TeamA.Players)
}

func TestValidateDiagnosticsAreIdempotent(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Zeca", "Bia", "Caio", "Dan"}, "4", "2"),
		row(3, "11/05/2024", [4]string{"Zeca", "Bia", "Caio", "Dan"}, "4", "2"),
	}

	first, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)
	second, err := Validate(rows, roster(), nil, validateNow)
	require.NoError(t, err)

	assert.Equal(t, []string{"Zeca"}, first.PendingPlayers)
	assert.Equal(t, first.PendingPlayers, second.PendingPlayers)
}

func TestValidateFailsMaterializationOnEmptyPlayerCell(t *testing.T) {
	rows := []Row{
		row(2, "10/05/2024", [4]string{"Ana", "", "Caio", "Dan"}, "4", "2"),
	}

	_, err := Validate(rows, roster(), nil, validateNow)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMaterializeFailed))
}

func TestRejectionErrorMessages(t *testing.T) {
	conflict := &RejectionError{Category: CategoryConflictingDates, Dates: []string{"10/05/2024", "11/05/2024"}}
	assert.Equal(t,
		"import failed: games already exist on the following date(s): 10/05/2024, 11/05/2024. Please remove them from the spreadsheet.",
		conflict.Error())

	future := &RejectionError{Category: CategoryFutureDates, Rows: []int{3, 7}}
	assert.Equal(t,
		"import failed: future dates found on row(s): 3, 7. Dates cannot be in the future.",
		future.Error())

	invalid := &RejectionError{Category: CategoryInvalidRows, Rows: []int{2}}
	assert.Equal(t,
		"import failed: invalid data or scores found on row(s): 2. Scores must be between 0 and 4, and one team must have exactly 4.",
		invalid.Error())
}
