package rooms

import "time"

type State string

const (
	StateWaiting  State = "waiting"
	StatePlaying  State = "playing"
	StateFinished State = "finished"
)

// Room is a capacity-bounded group of players sharing broadcast scope.
// Membership is mutated through the Store, which holds the lock.
type Room struct {
	ID        string
	State     State
	Capacity  int
	CreatedAt time.Time
	StartedAt *time.Time
	members   []string
}

func (r *Room) memberCount() int {
	return len(r.members)
}

func (r *Room) hasMember(playerID string) bool {
	for _, id := range r.members {
		if id == playerID {
			return true
		}
	}
	return false
}

// addMember enforces the capacity bound.
func (r *Room) addMember(playerID string) bool {
	if len(r.members) >= r.Capacity {
		return false
	}
	r.members = append(r.members, playerID)
	return true
}

func (r *Room) removeMember(playerID string) bool {
	for i, id := range r.members {
		if id == playerID {
			r.members = append(r.members[:i], r.members[i+1:]...)
			return true
		}
	}
	return false
}
