package session

import (
	"sync"
	"time"

	"bubblearena/internal/wshub"

	"github.com/google/uuid"
)

// Player is a connected player. The registry references the connection
// handle but does not own its lifetime.
type Player struct {
	ID         string
	Username   string
	Score      int
	SpeedLevel int
	Accuracy   float64
	JoinedAt   time.Time
	Conn       *wshub.Client
}

// Registry is the bookkeeping authority for connected players. It has no
// broadcast side effects.
type Registry struct {
	mu      sync.Mutex
	players map[string]*Player
}

func NewRegistry() *Registry {
	return &Registry{
		players: make(map[string]*Player),
	}
}

// Join allocates a collision-free id and registers the player.
func (r *Registry) Join(username string, conn *wshub.Client) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	player := &Player{
		ID:         uuid.New().String(),
		Username:   username,
		SpeedLevel: 1,
		JoinedAt:   time.Now(),
		Conn:       conn,
	}
	r.players[player.ID] = player
	return player
}

func (r *Registry) Get(id string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.players[id]
}

func (r *Registry) Remove(id string) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	p := r.players[id]
	delete(r.players, id)
	return p
}

// SetScore overwrites the player's live score and speed level.
// Last-write-wins; the client is authoritative here.
func (r *Registry) SetScore(id string, score, speedLevel int) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.players[id]; ok {
		p.Score = score
		p.SpeedLevel = speedLevel
		return p
	}
	return nil
}

func (r *Registry) SetAccuracy(id string, accuracy float64) *Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.players[id]; ok {
		p.Accuracy = accuracy
		return p
	}
	return nil
}

func (r *Registry) Count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.players)
}

func (r *Registry) List() []*Player {
	r.mu.Lock()
	defer r.mu.Unlock()
	list := make([]*Player, 0, len(r.players))
	for _, p := range r.players {
		list = append(list, p)
	}
	return list
}
