package server

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"

	"bubblearena/internal/db"
	"bubblearena/internal/game"
)

type Server struct {
	Coordinator *game.Coordinator
	DB          *db.DB // nil if no database configured
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	status := "ok"
	if s.DB != nil {
		if err := s.DB.Ping(); err != nil {
			status = "db_error"
			w.WriteHeader(http.StatusServiceUnavailable)
			fmt.Fprintf(w, `{"status":"%s","error":"%s"}`, status, err.Error())
			return
		}
	}
	fmt.Fprintf(w, `{"status":"%s"}`, status)
}

// handleLeaderboard serves the live top 10 as JSON, same data the
// get_leaderboard WebSocket message returns.
func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(s.Coordinator.Board.TopN(10)); err != nil {
		log.Println(err)
	}
}
