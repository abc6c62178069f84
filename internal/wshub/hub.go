package wshub

import (
	"context"
	"encoding/json"
	"log"

	"bubblearena/internal/config"
	"bubblearena/internal/leaderboard"

	"github.com/coder/websocket"
)

// ClientMessage is the JSON structure received from players. The zero Type
// means the message is malformed and gets ignored.
type ClientMessage struct {
	Type             string    `json:"type"`
	Username         string    `json:"username,omitempty"`
	Hit              bool      `json:"hit,omitempty"`
	GunPosition      float64   `json:"gun_position,omitempty"`
	Score            int       `json:"score,omitempty"`
	SpeedLevel       int       `json:"speed_level,omitempty"`
	FinalScore       int       `json:"final_score,omitempty"`
	ReactionTimes    []float64 `json:"reaction_times,omitempty"`
	ScoreHistory     []int     `json:"score_history,omitempty"`
	BubblesPerSecond float64   `json:"bubbles_per_second,omitempty"`
	GameDuration     float64   `json:"game_duration,omitempty"`
}

// ServerMessage is the JSON structure sent to players.
type ServerMessage struct {
	Type         string              `json:"type"`
	PlayerID     string              `json:"player_id,omitempty"`
	Username     string              `json:"username,omitempty"`
	RoomID       string              `json:"room_id,omitempty"`
	TotalPlayers int                 `json:"total_players,omitempty"`
	Score        int                 `json:"score,omitempty"`
	SpeedLevel   int                 `json:"speed_level,omitempty"`
	FinalScore   int                 `json:"final_score,omitempty"`
	Rank         int                 `json:"rank,omitempty"`
	Hit          bool                `json:"hit,omitempty"`
	Position     float64             `json:"position,omitempty"`
	Config       *config.Game        `json:"config,omitempty"`
	Data         []leaderboard.Entry `json:"data,omitempty"`
}

// SendBuffer bounds each connection's outbound queue. A recipient whose
// queue is full misses the message instead of blocking the sender.
const SendBuffer = 32

// Client represents a single WebSocket connection.
type Client struct {
	Conn *websocket.Conn
	Send chan []byte
}

func NewClient(conn *websocket.Conn) *Client {
	return &Client{
		Conn: conn,
		Send: make(chan []byte, SendBuffer),
	}
}

// WritePump reads from the Send channel and writes to the WebSocket
// connection. It exits when the connection's context is cancelled.
func (c *Client) WritePump(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case msg := <-c.Send:
			if err := c.Conn.Write(ctx, websocket.MessageText, msg); err != nil {
				return
			}
		}
	}
}

// TrySend marshals and enqueues a message without blocking. Non-blocking:
// drops if the queue is full.
func (c *Client) TrySend(msg ServerMessage) {
	data, err := json.Marshal(msg)
	if err != nil {
		log.Printf("[WSHub] Marshal error: %v\n", err)
		return
	}
	select {
	case c.Send <- data:
	default:
		// Drop message if queue full
	}
}
