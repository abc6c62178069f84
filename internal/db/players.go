package db

import (
	"fmt"
	"time"
)

type PlayerRecord struct {
	ID        string
	Username  string
	CreatedAt time.Time
}

func (d *DB) UpsertPlayer(id, username string) error {
	_, err := d.conn.Exec(`
		INSERT INTO players (id, username)
		VALUES ($1, $2)
		ON CONFLICT (id) DO UPDATE SET username = $2
	`, id, username)
	if err != nil {
		return fmt.Errorf("upserting player: %w", err)
	}
	return nil
}

func (d *DB) GetPlayer(id string) (*PlayerRecord, error) {
	var p PlayerRecord
	err := d.conn.QueryRow(`
		SELECT id, username, created_at FROM players WHERE id = $1
	`, id).Scan(&p.ID, &p.Username, &p.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("getting player: %w", err)
	}
	return &p, nil
}
