package engine

import "github.com/google/uuid"

// ListenerID identifies a registered listener so it can be removed later.
type ListenerID = uuid.UUID

type listener[F any] struct {
	id ListenerID
	fn F
}

// Event is a multi-cast callback list.
// Allows multiple listeners to subscribe to a single event.
type Event struct {
	listeners []listener[func()]
}

// AddListener adds a callback to be invoked when the event fires.
// A nil callback is ignored and yields uuid.Nil.
func (e *Event) AddListener(callback func()) ListenerID {
	if callback == nil {
		return uuid.Nil
	}
	id := uuid.New()
	e.listeners = append(e.listeners, listener[func()]{id: id, fn: callback})
	return id
}

// RemoveListener removes the callback registered under id.
func (e *Event) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

// RemoveAllListeners clears all listeners
func (e *Event) RemoveAllListeners() {
	e.listeners = nil
}

// Invoke calls all registered listeners in registration order.
func (e *Event) Invoke() {
	for _, l := range snapshot(e.listeners) {
		l.fn()
	}
}

// ListenerCount returns the number of registered listeners.
func (e *Event) ListenerCount() int {
	return len(e.listeners)
}

// EventWithArg is a generic event with one argument
type EventWithArg[T any] struct {
	listeners []listener[func(T)]
}

func (e *EventWithArg[T]) AddListener(callback func(T)) ListenerID {
	if callback == nil {
		return uuid.Nil
	}
	id := uuid.New()
	e.listeners = append(e.listeners, listener[func(T)]{id: id, fn: callback})
	return id
}

func (e *EventWithArg[T]) RemoveListener(id ListenerID) bool {
	var ok bool
	e.listeners, ok = removeListener(e.listeners, id)
	return ok
}

func (e *EventWithArg[T]) RemoveAllListeners() {
	e.listeners = nil
}

func (e *EventWithArg[T]) Invoke(arg T) {
	for _, l := range snapshot(e.listeners) {
		l.fn(arg)
	}
}

func (e *EventWithArg[T]) ListenerCount() int {
	return len(e.listeners)
}

// snapshot lets listeners add or remove listeners while being invoked.
func snapshot[F any](ls []listener[F]) []listener[F] {
	if len(ls) == 0 {
		return nil
	}
	return append([]listener[F](nil), ls...)
}

func removeListener[F any](ls []listener[F], id ListenerID) ([]listener[F], bool) {
	for i, l := range ls {
		if l.id == id {
			return append(ls[:i:i], ls[i+1:]...), true
		}
	}
	return ls, false
}
