package db

import "fmt"

// RecordGameResult stores one completed game for a player. The in-memory
// stores remain authoritative; this is an audit trail.
func (d *DB) RecordGameResult(playerID string, finalScore, speedLevel, rank int) error {
	_, err := d.conn.Exec(`
		INSERT INTO game_results (player_id, final_score, speed_level, rank)
		VALUES ($1, $2, $3, $4)
	`, playerID, finalScore, speedLevel, rank)
	if err != nil {
		return fmt.Errorf("recording game result: %w", err)
	}
	return nil
}
