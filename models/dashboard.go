package models

type DashboardStats struct {
	PlayersTotal   int `json:"players_total"`
	MatchesTotal   int `json:"matches_total"`
	MatchDaysTotal int `json:"match_days_total"`
}

// TeamSuggestion is the response of the AI pairing helper. It is advisory
// only and never scored or validated by the ranking engine.
type TeamSuggestion struct {
	Matchups  []SuggestedMatchup `json:"matchups"`
	Rationale string             `json:"rationale"`
}

type SuggestedMatchup struct {
	TeamA SuggestedPair `json:"team_a"`
	TeamB SuggestedPair `json:"team_b"`
}

type SuggestedPair struct {
	Player1 string `json:"player1"`
	Player2 string `json:"player2"`
}
