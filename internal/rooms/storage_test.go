package rooms

import (
	"fmt"
	"testing"
)

func TestNewStore(t *testing.T) {
	s := NewStore(4, 0)
	if s == nil {
		t.Fatal("NewStore() returned nil")
	}
	if len(s.List()) != 0 {
		t.Error("new store should have no rooms")
	}
}

func TestStore_AssignCreatesRoom(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	if room == nil {
		t.Fatal("Assign() returned nil room")
	}
	if room.ID != "room_1" {
		t.Errorf("room ID = %q, want %q", room.ID, "room_1")
	}
	if room.State != StateWaiting {
		t.Errorf("room State = %q, want %q", room.State, StateWaiting)
	}
	if room.StartedAt != nil {
		t.Error("StartedAt should be nil before the room starts")
	}
	if s.MemberCount(room.ID) != 1 {
		t.Errorf("member count = %d, want 1", s.MemberCount(room.ID))
	}
}

func TestStore_AssignFirstFit(t *testing.T) {
	s := NewStore(4, 0)
	r1 := s.Assign("p1")
	r2 := s.Assign("p2")

	if r1.ID != r2.ID {
		t.Errorf("second player should join first waiting room, got %q and %q", r1.ID, r2.ID)
	}

	// Fill room_1 and force a new room
	s.Assign("p3")
	s.Assign("p4")
	r5 := s.Assign("p5")
	if r5.ID != "room_2" {
		t.Errorf("fifth player should open room_2, got %q", r5.ID)
	}

	// p6 goes back to the first room with space, not the least loaded
	s.Remove("p2")
	r6 := s.Assign("p6")
	if r6.ID != "room_1" {
		t.Errorf("first-fit should pick room_1 again, got %q", r6.ID)
	}
}

func TestStore_CapacityNeverExceeded(t *testing.T) {
	const capacity = 4
	s := NewStore(capacity, 0)
	for i := 0; i < 25; i++ {
		s.Assign(fmt.Sprintf("p%d", i))
	}
	for _, room := range s.List() {
		if n := s.MemberCount(room.ID); n > capacity {
			t.Errorf("room %s has %d members, capacity %d", room.ID, n, capacity)
		}
	}
}

func TestStore_AssignIdempotent(t *testing.T) {
	s := NewStore(4, 0)
	r1 := s.Assign("p1")
	r2 := s.Assign("p1")
	if r1.ID != r2.ID {
		t.Errorf("re-assigning the same player moved them: %q -> %q", r1.ID, r2.ID)
	}
	if s.MemberCount(r1.ID) != 1 {
		t.Errorf("member count = %d, want 1", s.MemberCount(r1.ID))
	}
}

func TestStore_PlayerInAtMostOneRoom(t *testing.T) {
	s := NewStore(2, 0)
	for i := 0; i < 10; i++ {
		s.Assign(fmt.Sprintf("p%d", i))
	}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("p%d", i)
		count := 0
		for _, room := range s.List() {
			for _, member := range s.Members(room.ID) {
				if member == id {
					count++
				}
			}
		}
		if count != 1 {
			t.Errorf("player %s is in %d rooms, want 1", id, count)
		}
	}
}

func TestStore_Locate(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	got := s.Locate("p1")
	if got == nil {
		t.Fatal("Locate returned nil for roomed player")
	}
	if got.ID != room.ID {
		t.Errorf("Locate ID = %q, want %q", got.ID, room.ID)
	}

	if s.Locate("nonexistent") != nil {
		t.Error("Locate should return nil for unknown player")
	}
}

func TestStore_RemoveKeepsEmptyRoom(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	removed := s.Remove("p1")
	if removed == nil || removed.ID != room.ID {
		t.Fatal("Remove should return the player's room")
	}
	if s.Locate("p1") != nil {
		t.Error("player should be roomless after Remove")
	}
	if s.Get(room.ID) == nil {
		t.Error("empty room should persist")
	}
	if s.MemberCount(room.ID) != 0 {
		t.Errorf("member count = %d, want 0", s.MemberCount(room.ID))
	}

	if s.Remove("nonexistent") != nil {
		t.Error("Remove should return nil for roomless player")
	}
}

func TestStore_SetState(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	if err := s.SetState(room.ID, StatePlaying); err != nil {
		t.Fatalf("waiting -> playing: %v", err)
	}
	if room.State != StatePlaying {
		t.Errorf("State = %q, want %q", room.State, StatePlaying)
	}
	if room.StartedAt == nil {
		t.Error("StartedAt should be set once playing")
	}

	if err := s.SetState(room.ID, StateFinished); err != nil {
		t.Fatalf("playing -> finished: %v", err)
	}

	// finished is terminal
	if err := s.SetState(room.ID, StatePlaying); err == nil {
		t.Error("finished rooms must not transition")
	}
}

func TestStore_SetStateInvalid(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	if err := s.SetState(room.ID, StateFinished); err == nil {
		t.Error("waiting -> finished should be rejected")
	}
	if err := s.SetState("room_99", StatePlaying); err == nil {
		t.Error("unknown room should be rejected")
	}
}

func TestStore_MembersIsCopy(t *testing.T) {
	s := NewStore(4, 0)
	room := s.Assign("p1")

	members := s.Members(room.ID)
	members[0] = "tampered"

	if got := s.Members(room.ID); got[0] != "p1" {
		t.Errorf("Members must return a copy, got %v", got)
	}
}
