package analytics

import (
	"fmt"

	"bubblearena/internal/db"
)

type Queries struct {
	DB *db.DB
}

func NewQueries(database *db.DB) *Queries {
	return &Queries{DB: database}
}

func (q *Queries) GetPlayerLifetimeStats(playerID string) (*PlayerLifetimeStats, error) {
	stats := &PlayerLifetimeStats{
		PlayerID: playerID,
	}

	err := q.DB.QueryRow(`SELECT username FROM players WHERE id = $1`, playerID).
		Scan(&stats.Username)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT
			COUNT(*) as games_played,
			COALESCE(SUM(final_score), 0) as total_score,
			COALESCE(MAX(final_score), 0) as best_score,
			COALESCE(MIN(NULLIF(rank, 0)), 0) as best_rank
		FROM game_results
		WHERE player_id = $1
	`, playerID).Scan(&stats.GamesPlayed, &stats.TotalScore, &stats.BestScore, &stats.BestRank)
	if err != nil {
		return nil, fmt.Errorf("getting lifetime stats: %w", err)
	}

	err = q.DB.QueryRow(`
		SELECT COUNT(*), COALESCE(AVG(total), 0)
		FROM suspicion_flags
		WHERE player_id = $1
	`, playerID).Scan(&stats.FlagCount, &stats.AvgSuspicion)
	if err != nil {
		return nil, fmt.Errorf("getting flag stats: %w", err)
	}

	return stats, nil
}

// GetMostFlagged lists the players with the most anti-cheat flags on
// record, most recent first among ties.
func (q *Queries) GetMostFlagged(limit int) ([]FlaggedPlayer, error) {
	rows, err := q.DB.Query(`
		SELECT sf.player_id, COALESCE(p.username, ''), COUNT(*), MAX(sf.total), MAX(sf.flagged_at)
		FROM suspicion_flags sf
		LEFT JOIN players p ON p.id = sf.player_id
		GROUP BY sf.player_id, p.username
		ORDER BY COUNT(*) DESC, MAX(sf.flagged_at) DESC
		LIMIT $1
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("getting flagged players: %w", err)
	}
	defer rows.Close()

	var flagged []FlaggedPlayer
	for rows.Next() {
		var f FlaggedPlayer
		if err := rows.Scan(&f.PlayerID, &f.Username, &f.Flags, &f.MaxTotal, &f.LastFlaggedAt); err != nil {
			return nil, err
		}
		flagged = append(flagged, f)
	}
	return flagged, rows.Err()
}
