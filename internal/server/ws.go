package server

import (
	"encoding/json"
	"log"
	"net/http"

	"bubblearena/internal/anticheat"
	"bubblearena/internal/wshub"

	"github.com/coder/websocket"
)

// handleWS owns one player connection: accept, read loop, cleanup. Each
// inbound message is processed to completion before the next one on the
// same connection; outbound sends are enqueued, never awaited.
func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := websocket.Accept(w, r, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		log.Printf("[WS] Accept error: %v\n", err)
		return
	}
	defer conn.CloseNow()

	ctx := r.Context()
	client := wshub.NewClient(conn)
	go client.WritePump(ctx)

	var playerID string
	defer func() {
		if playerID != "" {
			s.Coordinator.HandleDisconnect(playerID)
		}
	}()

	for {
		_, data, err := conn.Read(ctx)
		if err != nil {
			// Normal closure and dropped connections land here alike.
			return
		}

		var msg wshub.ClientMessage
		if err := json.Unmarshal(data, &msg); err != nil {
			continue // malformed messages are ignored
		}
		playerID = s.dispatch(playerID, client, msg)
	}
}

// dispatch routes one decoded message and returns the (possibly newly
// assigned) player id for this connection.
func (s *Server) dispatch(playerID string, client *wshub.Client, msg wshub.ClientMessage) string {
	switch msg.Type {
	case "join":
		player := s.Coordinator.HandleJoin(msg.Username, client)
		if s.DB != nil {
			if err := s.DB.UpsertPlayer(player.ID, player.Username); err != nil {
				log.Printf("[DB] UpsertPlayer error: %v\n", err)
			}
		}
		return player.ID

	case "shoot":
		s.Coordinator.HandleShoot(playerID, msg.Hit, msg.GunPosition)

	case "score_update":
		s.Coordinator.HandleScoreUpdate(playerID, msg.Score, msg.SpeedLevel)

	case "game_over":
		telemetry := anticheat.Telemetry{
			ReactionTimes:    msg.ReactionTimes,
			ScoreHistory:     msg.ScoreHistory,
			BubblesPerSecond: msg.BubblesPerSecond,
			GameDuration:     msg.GameDuration,
		}
		rank, _, ok := s.Coordinator.HandleGameOver(playerID, msg.FinalScore, msg.SpeedLevel, telemetry)
		if ok && s.DB != nil {
			if err := s.DB.RecordGameResult(playerID, msg.FinalScore, msg.SpeedLevel, rank); err != nil {
				log.Printf("[DB] RecordGameResult error: %v\n", err)
			}
		}

	case "get_leaderboard":
		s.Coordinator.HandleLeaderboard(client)

	case "ping":
		client.TrySend(wshub.ServerMessage{Type: "pong"})

	default:
		// unknown message types are silently ignored
	}
	return playerID
}
