package events

import "sync"

// Dispatcher fans bus events out to subscribers.
type Dispatcher struct {
	Mu   sync.Mutex
	Subs map[chan FlagEvent]bool
}

func NewDispatcher(bus *Bus) *Dispatcher {
	d := &Dispatcher{
		Subs: make(map[chan FlagEvent]bool),
	}
	go func() {
		for ev := range bus.Flags {
			d.Dispatch(ev)
		}
	}()
	return d
}

func (d *Dispatcher) Subscribe() chan FlagEvent {
	ch := make(chan FlagEvent, 10)
	d.Mu.Lock()
	d.Subs[ch] = true
	d.Mu.Unlock()
	return ch
}

func (d *Dispatcher) Unsubscribe(ch chan FlagEvent) {
	d.Mu.Lock()
	delete(d.Subs, ch)
	d.Mu.Unlock()
	close(ch)
}

func (d *Dispatcher) Dispatch(ev FlagEvent) {
	d.Mu.Lock()
	defer d.Mu.Unlock()
	for ch := range d.Subs {
		select {
		case ch <- ev:
		default:
			// skip subscribers with full channels
		}
	}
}
