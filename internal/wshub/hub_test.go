package wshub

import (
	"encoding/json"
	"testing"
)

func TestTrySend(t *testing.T) {
	c := &Client{Send: make(chan []byte, 16)}

	c.TrySend(ServerMessage{Type: "score_update", PlayerID: "p1", Score: 100, SpeedLevel: 2})

	select {
	case data := <-c.Send:
		var got ServerMessage
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if got.Type != "score_update" || got.PlayerID != "p1" || got.Score != 100 || got.SpeedLevel != 2 {
			t.Fatalf("unexpected message: %+v", got)
		}
	default:
		t.Fatal("message was not enqueued")
	}
}

func TestTrySendDropsWhenFull(t *testing.T) {
	c := &Client{Send: make(chan []byte, 1)}

	c.Send <- []byte("filler")

	// This should not block, the message is dropped
	c.TrySend(ServerMessage{Type: "pong"})

	data := <-c.Send
	if string(data) != "filler" {
		t.Fatalf("expected filler, got: %s", data)
	}

	select {
	case <-c.Send:
		t.Fatal("queue should be empty after draining filler")
	default:
		// expected
	}
}

func TestClientMessageDecode(t *testing.T) {
	raw := `{
		"type": "game_over",
		"final_score": 420,
		"speed_level": 3,
		"reaction_times": [250, 260, 240],
		"score_history": [0, 200, 420],
		"bubbles_per_second": 2,
		"game_duration": 60
	}`

	var msg ClientMessage
	if err := json.Unmarshal([]byte(raw), &msg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if msg.Type != "game_over" {
		t.Errorf("Type = %q, want %q", msg.Type, "game_over")
	}
	if msg.FinalScore != 420 {
		t.Errorf("FinalScore = %d, want 420", msg.FinalScore)
	}
	if len(msg.ReactionTimes) != 3 || msg.ReactionTimes[0] != 250 {
		t.Errorf("ReactionTimes = %v, want [250 260 240]", msg.ReactionTimes)
	}
	if len(msg.ScoreHistory) != 3 || msg.ScoreHistory[2] != 420 {
		t.Errorf("ScoreHistory = %v, want [0 200 420]", msg.ScoreHistory)
	}
	if msg.BubblesPerSecond != 2 || msg.GameDuration != 60 {
		t.Errorf("declared params = %v/%v, want 2/60", msg.BubblesPerSecond, msg.GameDuration)
	}
}

func TestServerMessageWireFormat(t *testing.T) {
	data, err := json.Marshal(ServerMessage{Type: "player_left", PlayerID: "p1", Username: "Alice"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if fields["type"] != "player_left" {
		t.Errorf("type = %v, want player_left", fields["type"])
	}
	if fields["player_id"] != "p1" {
		t.Errorf("player_id = %v, want p1", fields["player_id"])
	}
	if fields["username"] != "Alice" {
		t.Errorf("username = %v, want Alice", fields["username"])
	}
	if _, ok := fields["score"]; ok {
		t.Error("zero-valued fields should be omitted from the wire")
	}
}
