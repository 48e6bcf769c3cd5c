package rankings

import (
	"sort"

	"github.com/btdosparca/league-system/models"
)

// PairKey canonicalizes an unordered doubles pair: the two player ids sorted
// lexicographically and joined with a separator.
func PairKey(p1, p2 string) string {
	if p2 < p1 {
		p1, p2 = p2, p1
	}
	return p1 + "|" + p2
}

type pairAccumulator struct {
	accumulator
	p1ID string
	p2ID string
	seen int // insertion order, keeps sorting deterministic
}

// CalculateDoubles derives per-pair rankings. There is no fixed roster of
// pairs to seed from, so a pair appears only once it has played together;
// entries with zero matches are never emitted.
func CalculateDoubles(matches []models.Match, players []models.Player) []models.DoublesRanking {
	nameByID := make(map[string]string, len(players))
	for _, p := range players {
		nameByID[p.ID] = p.Name
	}

	stats := make(map[string]*pairAccumulator)
	get := func(team models.Team) *pairAccumulator {
		key := PairKey(team.Players[0], team.Players[1])
		acc, ok := stats[key]
		if !ok {
			p1, p2 := team.Players[0], team.Players[1]
			if p2 < p1 {
				p1, p2 = p2, p1
			}
			acc = &pairAccumulator{p1ID: p1, p2ID: p2, seen: len(stats)}
			stats[key] = acc
		}
		return acc
	}

	for _, m := range matches {
		won := winner(m)
		get(m.TeamA).record(teamA, won, m.TeamA, m.TeamB)
		get(m.TeamB).record(teamB, won, m.TeamB, m.TeamA)
	}

	name := func(id string) string {
		if n, ok := nameByID[id]; ok {
			return n
		}
		return "N/A"
	}

	out := make([]models.DoublesRanking, 0, len(stats))
	ordered := make([]*pairAccumulator, 0, len(stats))
	for _, acc := range stats {
		ordered = append(ordered, acc)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seen < ordered[j].seen })

	for _, acc := range ordered {
		if acc.matchesPlayed == 0 {
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
		out = append(out, models.DoublesRanking{
			PairID:        PairKey(acc.p1ID, acc.p2ID),
			Player1Name:   name(acc.p1ID),
			Player2Name:   name(acc.p2ID),
			MatchesPlayed: acc.matchesPlayed,
			Wins:          acc.wins,
			Losses:        acc.losses,
			GamesWon:      acc.gamesWon,
			GamesLost:     acc.gamesLost,
			WinRate:       winRate,
			GamesWonRate:  gamesWonRate,
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].MatchesPlayed != out[j].MatchesPlayed {
			return out[i].MatchesPlayed > out[j].MatchesPlayed
		}
		return out[i].WinRate > out[j].WinRate
	})
	return out
}
