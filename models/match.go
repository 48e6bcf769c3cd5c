package models

import "time"

// Games are played to 4; a team's score is always in [0,4].
const WinningScore = 4

type Team struct {
	Players [2]string `json:"players"`
	Score   int       `json:"score"`
}

type Match struct {
	ID        string    `json:"id"`
	DayID     int       `json:"day_id"`
	Date      time.Time `json:"date"` // normalized to UTC midnight of the match day
	TeamA     Team      `json:"team_a"`
	TeamB     Team      `json:"team_b"`
	CreatedAt time.Time `json:"created_at,omitempty"`
}

// HasPlayer reports whether the given player took part in the match.
func (m Match) HasPlayer(playerID string) bool {
	return m.TeamA.Players[0] == playerID || m.TeamA.Players[1] == playerID ||
		m.TeamB.Players[0] == playerID || m.TeamB.Players[1] == playerID
}
