package db

import (
	"encoding/json"
	"fmt"
	"time"
)

type FlagRecord struct {
	PlayerID      string
	Total         float64
	Contributions []float64
	FlaggedAt     time.Time
}

func (d *DB) RecordFlag(f FlagRecord) error {
	contrib, err := json.Marshal(f.Contributions)
	if err != nil {
		return fmt.Errorf("encoding contributions: %w", err)
	}
	_, err = d.conn.Exec(`
		INSERT INTO suspicion_flags (player_id, total, contributions, flagged_at)
		VALUES ($1, $2, $3, $4)
	`, f.PlayerID, f.Total, string(contrib), f.FlaggedAt)
	if err != nil {
		return fmt.Errorf("recording flag: %w", err)
	}
	return nil
}

func (d *DB) BatchRecordFlags(flags []FlagRecord) error {
	tx, err := d.conn.Begin()
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO suspicion_flags (player_id, total, contributions, flagged_at)
		VALUES ($1, $2, $3, $4)
	`)
	if err != nil {
		return fmt.Errorf("preparing statement: %w", err)
	}
	defer stmt.Close()

	for _, f := range flags {
		contrib, err := json.Marshal(f.Contributions)
		if err != nil {
			return fmt.Errorf("encoding contributions: %w", err)
		}
		if _, err := stmt.Exec(f.PlayerID, f.Total, string(contrib), f.FlaggedAt); err != nil {
			return fmt.Errorf("recording flag in batch: %w", err)
		}
	}

	return tx.Commit()
}
