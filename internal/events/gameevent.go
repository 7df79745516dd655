// Package events binds shared game events to typed response channels.
package events

import "slices"

// EventListener is notified when a GameEvent is raised.
type EventListener interface {
	OnEventRaised(e *GameEvent)
}

// GameEvent is a named, shared event asset. Raisers write the payload
// fields and call Raise; listeners read the payload during dispatch.
type GameEvent struct {
	Name string

	SentInt    int
	SentBool   bool
	SentFloat  float32
	SentString string

	listeners []EventListener
}

func NewGameEvent(name string) *GameEvent {
	return &GameEvent{Name: name}
}

// Register adds l once; registering the same listener twice is a no-op.
func (e *GameEvent) Register(l EventListener) {
	for _, existing := range e.listeners {
		if existing == l {
			return
		}
	}
	e.listeners = append(e.listeners, l)
}

func (e *GameEvent) Unregister(l EventListener) {
	for i, existing := range e.listeners {
		if existing == l {
			e.listeners = append(e.listeners[:i], e.listeners[i+1:]...)
			return
		}
	}
}

func (e *GameEvent) ListenerCount() int {
	return len(e.listeners)
}

// Raise notifies listeners, most recently registered first. It walks a
// snapshot, so listeners may register or unregister any listener during
// dispatch; one unregistered mid-dispatch is not notified afterwards.
func (e *GameEvent) Raise() {
	snapshot := slices.Clone(e.listeners)
	for i := len(snapshot) - 1; i >= 0; i-- {
		l := snapshot[i]
		if !slices.Contains(e.listeners, l) {
			continue
		}
		l.OnEventRaised(e)
	}
}

func (e *GameEvent) RaiseInt(v int) {
	e.SentInt = v
	e.Raise()
}

func (e *GameEvent) RaiseBool(v bool) {
	e.SentBool = v
	e.Raise()
}

func (e *GameEvent) RaiseFloat(v float32) {
	e.SentFloat = v
	e.Raise()
}

func (e *GameEvent) RaiseString(v string) {
	e.SentString = v
	e.Raise()
}
