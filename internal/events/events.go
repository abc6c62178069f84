package events

import "time"

// FlagEvent is published when the anti-cheat engine flags a completed
// game. Nothing in the gameplay path acts on it; enforcement, if any, is a
// subscriber's business.
type FlagEvent struct {
	PlayerID      string
	Username      string
	Total         float64
	Contributions []float64
	FlaggedAt     time.Time
}

type Bus struct {
	Flags chan FlagEvent
}

func NewBus() *Bus {
	return &Bus{
		Flags: make(chan FlagEvent, 16),
	}
}

// Publish enqueues without blocking; the event is dropped when the buffer
// is full.
func (b *Bus) Publish(ev FlagEvent) {
	select {
	case b.Flags <- ev:
	default:
	}
}
