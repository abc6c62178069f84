package server

import (
	"encoding/json"
	"log"
	"net/http"
	"strings"

	"bubblearena/internal/analytics"
)

func (s *Server) handleAnalyticsPlayer(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "Analytics requires a database connection", http.StatusServiceUnavailable)
		return
	}

	playerID := strings.TrimPrefix(r.URL.Path, "/analytics/player/")
	if playerID == "" {
		http.Error(w, "Missing player id", http.StatusBadRequest)
		return
	}

	q := analytics.NewQueries(s.DB)
	stats, err := q.GetPlayerLifetimeStats(playerID)
	if err != nil {
		log.Printf("[Analytics] player stats error: %v\n", err)
		http.Error(w, "Player not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(stats); err != nil {
		log.Println(err)
	}
}

func (s *Server) handleAnalyticsFlags(w http.ResponseWriter, r *http.Request) {
	if s.DB == nil {
		http.Error(w, "Analytics requires a database connection", http.StatusServiceUnavailable)
		return
	}

	q := analytics.NewQueries(s.DB)
	flagged, err := q.GetMostFlagged(10)
	if err != nil {
		log.Printf("[Analytics] flagged players error: %v\n", err)
		http.Error(w, "Error loading flagged players", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(flagged); err != nil {
		log.Println(err)
	}
}
