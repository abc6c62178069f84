package rooms

import (
	"fmt"
	"sync"
	"time"
)

// Store owns all rooms. Assignment is first-fit over creation order, and
// lookups are linear scans; fine at the handful of rooms this server sees.
type Store struct {
	mu       sync.Mutex
	rooms    []*Room // creation order, first-fit depends on it
	nextID   int
	capacity int
}

// NewStore creates a room store. When ttl > 0, empty rooms older than ttl
// are reclaimed in the background; with ttl 0 rooms persist forever.
func NewStore(capacity int, ttl time.Duration) *Store {
	s := &Store{capacity: capacity}
	if ttl > 0 {
		go s.sweepStale(ttl)
	}
	return s
}

// Assign places the player in the first waiting room with free capacity,
// creating a new room when none fits. A player already in a room stays
// where they are.
func (s *Store) Assign(playerID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()

	if room := s.locate(playerID); room != nil {
		return room
	}
	for _, room := range s.rooms {
		if room.State == StateWaiting && room.addMember(playerID) {
			return room
		}
	}

	s.nextID++
	room := &Room{
		ID:        fmt.Sprintf("room_%d", s.nextID),
		State:     StateWaiting,
		Capacity:  s.capacity,
		CreatedAt: time.Now(),
		members:   []string{playerID},
	}
	s.rooms = append(s.rooms, room)
	return room
}

// Remove drops the player from their room and returns it, or nil if the
// player was roomless. Emptied rooms are not deleted.
func (s *Store) Remove(playerID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.removeMember(playerID) {
			return room
		}
	}
	return nil
}

// Locate returns the room containing the player, or nil.
func (s *Store) Locate(playerID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.locate(playerID)
}

func (s *Store) locate(playerID string) *Room {
	for _, room := range s.rooms {
		if room.hasMember(playerID) {
			return room
		}
	}
	return nil
}

func (s *Store) Get(roomID string) *Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == roomID {
			return room
		}
	}
	return nil
}

func (s *Store) List() []*Room {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := make([]*Room, 0, len(s.rooms))
	list = append(list, s.rooms...)
	return list
}

// Members returns a copy of the room's member ids.
func (s *Store) Members(roomID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == roomID {
			members := make([]string, len(room.members))
			copy(members, room.members)
			return members
		}
	}
	return nil
}

func (s *Store) MemberCount(roomID string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, room := range s.rooms {
		if room.ID == roomID {
			return room.memberCount()
		}
	}
	return 0
}

// SetState advances the room lifecycle. Only waiting→playing and
// playing→finished are legal; finished is terminal. Nothing in the server
// drives these transitions automatically.
func (s *Store) SetState(roomID string, next State) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	var room *Room
	for _, r := range s.rooms {
		if r.ID == roomID {
			room = r
			break
		}
	}
	if room == nil {
		return fmt.Errorf("room %s not found", roomID)
	}

	valid := (room.State == StateWaiting && next == StatePlaying) ||
		(room.State == StatePlaying && next == StateFinished)
	if !valid {
		return fmt.Errorf("invalid transition %s -> %s for room %s", room.State, next, roomID)
	}
	room.State = next
	if next == StatePlaying {
		now := time.Now()
		room.StartedAt = &now
	}
	return nil
}

func (s *Store) sweepStale(ttl time.Duration) {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()
	for range ticker.C {
		s.mu.Lock()
		now := time.Now()
		kept := s.rooms[:0]
		for _, room := range s.rooms {
			if room.memberCount() == 0 && now.Sub(room.CreatedAt) > ttl {
				continue
			}
			kept = append(kept, room)
		}
		s.rooms = kept
		s.mu.Unlock()
	}
}
