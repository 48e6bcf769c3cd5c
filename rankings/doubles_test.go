package rankings

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/btdosparca/league-system/models"
)

func TestPairKeyIsOrderInsensitive(t *testing.T) {
	assert.Equal(t, PairKey("a", "b"), PairKey("b", "a"))
	assert.Equal(t, "a|b", PairKey("b", "a"))
}

func TestCalculateDoublesAccumulatesUnorderedPairs(t *testing.T) {
	players := []models.Player{
		player("p1", "Ana", 20), player("p2", "Bia", 20),
		player("p3", "Caio", 20), player("p4", "Dan", 20),
	}
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	matches := []models.Match{
		match(day, "p1", "p2", "p3", "p4", 4, 1),
		// Same pairs, members listed in the opposite order.
		match(day, "p2", "p1", "p4", "p3", 2, 4),
	}

	standings := CalculateDoubles(matches, players)
	require.Len(t, standings, 2)

	for _, pair := range standings {
		assert.Equal(t, 2, pair.MatchesPlayed)
		assert.Equal(t, 1, pair.Wins)
		assert.Equal(t, 1, pair.Losses)
	}
}

func TestCalculateDoublesOmitsPairsWithoutMatches(t *testing.T) {
	players := []models.Player{
		player("p1", "Ana", 20), player("p2", "Bia", 20),
		player("p3", "Caio", 20), player("p4", "Dan", 20),
		player("p5", "Eva", 20),
	}
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	matches := []models.Match{
		match(day, "p1", "p2", "p3", "p4", 4, 1),
	}

	standings := CalculateDoubles(matches, players)
	require.Len(t, standings, 2)
	for _, pair := range standings {
		assert.Positive(t, pair.MatchesPlayed)
	}
}

func TestCalculateDoublesSorting(t *testing.T) {
	players := []models.Player{
		player("p1", "Ana", 20), player("p2", "Bia", 20),
		player("p3", "Caio", 20), player("p4", "Dan", 20),
		player("p5", "Eva", 20), player("p6", "Gui", 20),
	}
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	matches := []models.Match{
		// p1+p2 play twice, p5+p6 once with a better win rate.
		match(day, "p1", "p2", "p3", "p4", 4, 1),
		match(day, "p1", "p2", "p3", "p4", 1, 4),
		match(day, "p5", "p6", "p3", "p4", 4, 0),
	}

	standings := CalculateDoubles(matches, players)
	require.NotEmpty(t, standings)

	assert.Equal(t, 3, standings[0].MatchesPlayed)
	assert.Equal(t, PairKey("p3", "p4"), standings[0].PairID)
	for i := 1; i < len(standings); i++ {
		prev, cur := standings[i-1], standings[i]
		if prev.MatchesPlayed == cur.MatchesPlayed {
			assert.GreaterOrEqual(t, prev.WinRate, cur.WinRate)
		} else {
			assert.Greater(t, prev.MatchesPlayed, cur.MatchesPlayed)
		}
	}
}

func TestCalculateDoublesUnknownPlayerName(t *testing.T) {
	players := []models.Player{player("p1", "Ana", 20), player("p2", "Bia", 20)}
	day := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	matches := []models.Match{
		match(day, "p1", "p2", "ghost1", "ghost2", 4, 1),
	}

	standings := CalculateDoubles(matches, players)
	require.Len(t, standings, 2)

	var ghosts *models.DoublesRanking
	for i := range standings {
		if standings[i].PairID == PairKey("ghost1", "ghost2") {
			ghosts = &standings[i]
		}
	}
	require.NotNil(t, ghosts)
	assert.Equal(t, "N/A", ghosts.Player1Name)
	assert.Equal(t, "N/A", ghosts.Player2Name)
}
