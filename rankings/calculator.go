package rankings

import (
	"math"
	"sort"
	"time"

	"github.com/btdosparca/league-system/models"
)

// Composite score weights. Win rate dominates, but per-game efficiency and a
// logarithmic participation bonus keep frequent players from being punished
// for the occasional loss. The age bonus rewards experience past 25.
const (
	winRateWeight      = 0.7
	gamesWonRateWeight = 0.15
	participationScale = 15.0
	ageBonusPerYear    = 0.2
	ageBonusThreshold  = 25
)

type accumulator struct {
	matchesPlayed int
	wins          int
	losses        int
	gamesWon      int
	gamesLost     int
}

const (
	teamA = iota
	teamB
	noDecision
)

// winner determines which team took the match. A valid match always has
// exactly one score of 4, but persisted data is not trusted here: an
// equal-score row counts as a decision for neither side.
func winner(m models.Match) int {
	switch {
	case m.TeamA.Score > m.TeamB.Score:
		return teamA
	case m.TeamB.Score > m.TeamA.Score:
		return teamB
	default:
		return noDecision
	}
}

func (a *accumulator) record(team, won int, own, opp models.Team) {
	a.matchesPlayed++
	if won != noDecision {
		if team == won {
			a.wins++
		} else {
			a.losses++
		}
	}
	a.gamesWon += own.Score
	a.gamesLost += opp.Score
}

// CalculateIndividual derives one ranking entry per roster player from the
// full match history. It is a pure function of its inputs; now is only used
// to compute ages. Matches referencing players absent from the roster
// contribute nothing for those ids.
func CalculateIndividual(matches []models.Match, players []models.Player, now time.Time) []models.IndividualRanking {
	playerByID := make(map[string]models.Player, len(players))
	stats := make(map[string]*accumulator, len(players))
	for _, p := range players {
		playerByID[p.ID] = p
		// Players with no matches still appear, with zero counts.
		stats[p.ID] = &accumulator{}
	}

	for _, m := range matches {
		won := winner(m)
		for _, id := range m.TeamA.Players {
			if acc, ok := stats[id]; ok {
				acc.record(teamA, won, m.TeamA, m.TeamB)
			}
		}
		for _, id := range m.TeamB.Players {
			if acc, ok := stats[id]; ok {
				acc.record(teamB, won, m.TeamB, m.TeamA)
			}
		}
	}

	out := make([]models.IndividualRanking, 0, len(stats))
	for id, acc := range stats {
		player, ok := playerByID[id]
		if !ok {
			continue
		}

		var winRate float64
		if acc.matchesPlayed > 0 {
			winRate = float64(acc.wins) / float64(acc.matchesPlayed) * 100
		}
		var gamesWonRate float64
		if total := acc.gamesWon + acc.gamesLost; total > 0 {
			gamesWonRate = float64(acc.gamesWon) / float64(total) * 100
		}

		participationBonus := math.Log10(float64(acc.matchesPlayed)+1) * participationScale
		ageBonus := float64(max(0, Age(player.DOB, now)-ageBonusThreshold)) * ageBonusPerYear

		out = append(out, models.IndividualRanking{
			PlayerID:         id,
			Name:             player.Name,
			AvatarURL:        player.AvatarURL,
			MatchesPlayed:    acc.matchesPlayed,
			Wins:             acc.wins,
			Losses:           acc.losses,
			GamesWon:         acc.gamesWon,
			GamesLost:        acc.gamesLost,
			WinRate:          winRate,
			GamesWonRate:     gamesWonRate,
			PerformanceScore: winRate*winRateWeight + gamesWonRate*gamesWonRateWeight + participationBonus + ageBonus,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].PerformanceScore != out[j].PerformanceScore {
			return out[i].PerformanceScore > out[j].PerformanceScore
		}
		return out[i].Wins > out[j].Wins
	})
	return out
}

// Age returns whole years between dob and now, counting a birthday not yet
// reached this year as not incremented. Zero-value dob yields 0.
func Age(dob, now time.Time) int {
	if dob.IsZero() {
		return 0
	}
	years := now.Year() - dob.Year()
	if now.Month() < dob.Month() || (now.Month() == dob.Month() && now.Day() < dob.Day()) {
		years--
	}
	if years < 0 {
		return 0
	}
	return years
}

// FilterByWeekday keeps only matches played on the given UTC weekday.
func FilterByWeekday(matches []models.Match, day time.Weekday) []models.Match {
	filtered := make([]models.Match, 0, len(matches))
	for _, m := range matches {
		if m.Date.UTC().Weekday() == day {
			filtered = append(filtered, m)
		}
	}
	return filtered
}

// PerformanceSeries builds a player's cumulative win-rate series over the
// matches they took part in, ordered by date.
func PerformanceSeries(matches []models.Match, playerID string) []models.PerformancePoint {
	var played []models.Match
	for _, m := range matches {
		if m.HasPlayer(playerID) {
			played = append(played, m)
		}
	}
	sort.SliceStable(played, func(i, j int) bool {
		return played[i].Date.Before(played[j].Date)
	})

	points := make([]models.PerformancePoint, 0, len(played))
	wins := 0
	for i, m := range played {
		won := winner(m)
		onTeamA := m.TeamA.Players[0] == playerID || m.TeamA.Players[1] == playerID
		if (onTeamA && won == teamA) || (!onTeamA && won == teamB) {
			wins++
		}
		points = append(points, models.PerformancePoint{
			Date:    m.Date.UTC().Format("02/01/2006"),
			Match:   i + 1,
			WinRate: float64(wins) / float64(i+1) * 100,
		})
	}
	return points
}
