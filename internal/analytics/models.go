package analytics

import "time"

// PlayerLifetimeStats is the cross-restart view of a player, built from
// the audit tables rather than the in-memory aggregator.
type PlayerLifetimeStats struct {
	PlayerID     string  `json:"player_id"`
	Username     string  `json:"username"`
	GamesPlayed  int     `json:"games_played"`
	TotalScore   int     `json:"total_score"`
	BestScore    int     `json:"best_score"`
	BestRank     int     `json:"best_rank"`
	FlagCount    int     `json:"flag_count"`
	AvgSuspicion float64 `json:"avg_suspicion"`
}

type FlaggedPlayer struct {
	PlayerID      string    `json:"player_id"`
	Username      string    `json:"username"`
	Flags         int       `json:"flags"`
	MaxTotal      float64   `json:"max_total"`
	LastFlaggedAt time.Time `json:"last_flagged_at"`
}
