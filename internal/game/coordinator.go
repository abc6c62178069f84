package game

import (
	"log"
	"time"

	"bubblearena/internal/anticheat"
	"bubblearena/internal/config"
	"bubblearena/internal/events"
	"bubblearena/internal/leaderboard"
	"bubblearena/internal/rooms"
	"bubblearena/internal/session"
	"bubblearena/internal/stats"
	"bubblearena/internal/wshub"
)

// Coordinator ties the registry, rooms, leaderboard, stats and anti-cheat
// engine together and implements the per-message event handlers. All state
// is in-memory and lost on restart.
type Coordinator struct {
	Registry *session.Registry
	Rooms    *rooms.Store
	Board    *leaderboard.Board
	Stats    *stats.Store
	Cheat    *anticheat.Analyzer
	Bus      *events.Bus
	Game     config.Game
}

func NewCoordinator(cfg config.Config) *Coordinator {
	return &Coordinator{
		Registry: session.NewRegistry(),
		Rooms:    rooms.NewStore(cfg.RoomCapacity, time.Duration(cfg.RoomTTLMinutes)*time.Minute),
		Board:    leaderboard.NewBoard(),
		Stats:    stats.NewStore(),
		Cheat:    anticheat.NewAnalyzer(cfg.Game.PointsPerBubble),
		Bus:      events.NewBus(),
		Game:     cfg.Game,
	}
}

// broadcast fans a message out to the room's members, skipping exclude.
// Delivery is enqueue-only; a recipient with a full queue misses the
// message, and nothing rolls back because of it.
func (c *Coordinator) broadcast(roomID string, msg wshub.ServerMessage, exclude string) {
	for _, id := range c.Rooms.Members(roomID) {
		if id == exclude {
			continue
		}
		if p := c.Registry.Get(id); p != nil && p.Conn != nil {
			p.Conn.TrySend(msg)
		}
	}
}

// HandleJoin registers the player, places them in a room, welcomes them
// with the game config and announces them to the room.
func (c *Coordinator) HandleJoin(username string, conn *wshub.Client) *session.Player {
	if username == "" {
		username = "Player"
	}
	player := c.Registry.Join(username, conn)
	room := c.Rooms.Assign(player.ID)

	conn.TrySend(wshub.ServerMessage{
		Type:     "welcome",
		PlayerID: player.ID,
		RoomID:   room.ID,
		Config:   &c.Game,
	})
	c.broadcast(room.ID, wshub.ServerMessage{
		Type:         "player_joined",
		PlayerID:     player.ID,
		Username:     username,
		TotalPlayers: c.Rooms.MemberCount(room.ID),
	}, player.ID)

	log.Printf("[Game] Player %s (%s) joined %s\n", username, player.ID, room.ID)
	return player
}

// HandleShoot updates the shooter's accuracy stats and relays the shot to
// the rest of the room.
func (c *Coordinator) HandleShoot(playerID string, hit bool, gunPosition float64) {
	if c.Registry.Get(playerID) == nil {
		return
	}

	rec := c.Stats.AddShot(playerID, hit)
	c.Registry.SetAccuracy(playerID, float64(rec.ShotsHit)/float64(rec.ShotsFired))

	if room := c.Rooms.Locate(playerID); room != nil {
		c.broadcast(room.ID, wshub.ServerMessage{
			Type:     "player_shot",
			PlayerID: playerID,
			Position: gunPosition,
			Hit:      hit,
		}, playerID)
	}
}

// HandleScoreUpdate overwrites the player's live score, feeds the
// leaderboard and tells the whole room, scorer included.
func (c *Coordinator) HandleScoreUpdate(playerID string, score, speedLevel int) {
	player := c.Registry.SetScore(playerID, score, speedLevel)
	if player == nil {
		return
	}

	c.Board.Upsert(playerID, player.Username, score, speedLevel)

	if room := c.Rooms.Locate(playerID); room != nil {
		c.broadcast(room.ID, wshub.ServerMessage{
			Type:       "score_update",
			PlayerID:   playerID,
			Score:      score,
			SpeedLevel: speedLevel,
		}, "")
	}
}

// HandleGameOver persists the game into the stats aggregator, acknowledges
// the originating player with their final score and current rank, then
// hands the telemetry to the anti-cheat engine. A flag is published on the
// bus but changes nothing about the outcome.
func (c *Coordinator) HandleGameOver(playerID string, finalScore, speedLevel int, t anticheat.Telemetry) (rank int, res anticheat.Result, ok bool) {
	player := c.Registry.Get(playerID)
	if player == nil {
		return 0, anticheat.Result{}, false
	}

	c.Stats.RecordGame(playerID, finalScore)
	rank = c.Board.RankOf(playerID)

	player.Conn.TrySend(wshub.ServerMessage{
		Type:       "game_over_ack",
		FinalScore: finalScore,
		Rank:       rank,
	})

	res = c.Cheat.Analyze(playerID, t)
	if !res.Clean {
		c.Bus.Publish(events.FlagEvent{
			PlayerID:      playerID,
			Username:      player.Username,
			Total:         res.Total,
			Contributions: res.Contributions,
			FlaggedAt:     time.Now(),
		})
	}

	log.Printf("[Game] Player %s finished with score %d at speed level %d\n", playerID, finalScore, speedLevel)
	return rank, res, true
}

// HandleLeaderboard sends the top 10 to the requesting connection.
func (c *Coordinator) HandleLeaderboard(conn *wshub.Client) {
	conn.TrySend(wshub.ServerMessage{
		Type: "leaderboard",
		Data: c.Board.TopN(10),
	})
}

// HandleDisconnect pulls the player out of their room, tells the remaining
// members, and drops the registry entry. Stats records stay.
func (c *Coordinator) HandleDisconnect(playerID string) {
	player := c.Registry.Remove(playerID)
	if player == nil {
		return
	}

	if room := c.Rooms.Remove(playerID); room != nil {
		c.broadcast(room.ID, wshub.ServerMessage{
			Type:     "player_left",
			PlayerID: playerID,
			Username: player.Username,
		}, "")
	}

	log.Printf("[Game] Player %s disconnected\n", player.Username)
}
