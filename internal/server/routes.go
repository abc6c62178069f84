package server

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"bubblearena/internal/config"
	"bubblearena/internal/db"
	"bubblearena/internal/events"
	"bubblearena/internal/game"
)

func Run() error {
	cfg := config.Load()

	coord := game.NewCoordinator(cfg)
	dispatcher := events.NewDispatcher(coord.Bus)

	srv := &Server{
		Coordinator: coord,
	}

	go logFlags(dispatcher.Subscribe())

	// Optional database connection: audit sink only, gameplay state stays
	// in memory.
	if cfg.DatabaseURL != "" {
		database, err := db.Connect(cfg.DatabaseURL)
		if err != nil {
			log.Printf("[DB] Failed to connect: %v (running without database)\n", err)
		} else {
			if err := database.Migrate(); err != nil {
				log.Printf("[DB] Migration failed: %v\n", err)
			}
			srv.DB = database
			go flagBatchWriter(database, dispatcher.Subscribe())
			log.Println("[DB] Database connected and migrations applied")
		}
	} else {
		log.Println("[DB] DATABASE_URL not set, running without database")
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", srv.handleWS)
	mux.HandleFunc("/health", srv.handleHealth)
	mux.HandleFunc("/leaderboard", srv.handleLeaderboard)
	mux.HandleFunc("/analytics/player/", srv.handleAnalyticsPlayer)
	mux.HandleFunc("/analytics/flags", srv.handleAnalyticsFlags)

	addr := "0.0.0.0:" + cfg.Port
	fmt.Printf("Bubble Arena server listening on ws://localhost:%s/ws\n", cfg.Port)
	return http.ListenAndServe(addr, mux)
}

func logFlags(ch chan events.FlagEvent) {
	for ev := range ch {
		log.Printf("[AntiCheat] Flagged player %s (%s): total %.2f, breakdown %v\n",
			ev.Username, ev.PlayerID, ev.Total, ev.Contributions)
	}
}

// flagBatchWriter drains flag events into the database in small batches.
func flagBatchWriter(database *db.DB, ch chan events.FlagEvent) {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()

	batch := make([]db.FlagRecord, 0, 50)

	flush := func() {
		if len(batch) == 0 {
			return
		}
		if err := database.BatchRecordFlags(batch); err != nil {
			log.Printf("[DB] BatchRecordFlags error: %v\n", err)
		}
		batch = batch[:0]
	}

	for {
		select {
		case ev, ok := <-ch:
			if !ok {
				flush()
				return
			}
			batch = append(batch, db.FlagRecord{
				PlayerID:      ev.PlayerID,
				Total:         ev.Total,
				Contributions: ev.Contributions,
				FlaggedAt:     ev.FlaggedAt,
			})
			if len(batch) >= 50 {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}
