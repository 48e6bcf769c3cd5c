package models

// IndividualRanking is a derived view, recomputed from the full match history on
// every call. It is never stored.
type IndividualRanking struct {
	PlayerID         string  `json:"player_id"`
	Name             string  `json:"name"`
	AvatarURL        string  `json:"avatar,omitempty"`
	MatchesPlayed    int     `json:"matches_played"`
	Wins             int     `json:"wins"`
	Losses           int     `json:"losses"`
	GamesWon         int     `json:"games_won"`
	GamesLost        int     `json:"games_lost"`
	WinRate          float64 `json:"win_rate"`
	GamesWonRate     float64 `json:"games_won_rate"`
	PerformanceScore float64 `json:"performance_score"`
}

// DoublesRanking is keyed by the canonical pair id of an unordered two-player
// team. Pairs only exist once they have played together, so MatchesPlayed > 0.
type DoublesRanking struct {
	PairID        string  `json:"pair_id"`
	Player1Name   string  `json:"player1_name"`
	Player2Name   string  `json:"player2_name"`
	MatchesPlayed int     `json:"matches_played"`
	Wins          int     `json:"wins"`
	Losses        int     `json:"losses"`
	GamesWon      int     `json:"games_won"`
	GamesLost     int     `json:"games_lost"`
	WinRate       float64 `json:"win_rate"`
	GamesWonRate  float64 `json:"games_won_rate"`
}

// PerformancePoint is one step of a player's cumulative win-rate series,
// ordered by match date.
type PerformancePoint struct {
	Date    string  `json:"date"` // dd/mm/yyyy, UTC day of the match
	Match   int     `json:"match"`
	WinRate float64 `json:"win_rate"`
}
