package events

import (
	"errors"
	"fmt"

	"gamehelpers/internal/engine"
)

// ErrNoEvent is returned when a Binder is dispatched without a bound event.
var ErrNoEvent = errors.New("binder has no event")

// Channel names in dispatch order.
const (
	ChannelGeneric = "generic"
	ChannelInt     = "int"
	ChannelBool    = "bool"
	ChannelFloat   = "float"
	ChannelString  = "string"
)

// Binder fans a GameEvent's payload out to typed response channels.
type Binder struct {
	Name  string
	Event *GameEvent

	Generic engine.Event
	Int     engine.EventWithArg[int]
	Bool    engine.EventWithArg[bool]
	Float   engine.EventWithArg[float32]
	String  engine.EventWithArg[string]
}

// Channel is one entry of the fixed dispatch list.
type Channel struct {
	Name   string
	Active func() bool
	Invoke func(e *GameEvent)
}

// Channels returns the dispatch list: generic, int, bool, float, string.
// Listeners may depend on this order.
func (b *Binder) Channels() []Channel {
	return []Channel{
		{ChannelGeneric, func() bool { return b.Generic.ListenerCount() > 0 }, func(*GameEvent) { b.Generic.Invoke() }},
		{ChannelInt, func() bool { return b.Int.ListenerCount() > 0 }, func(e *GameEvent) { b.Int.Invoke(e.SentInt) }},
		{ChannelBool, func() bool { return b.Bool.ListenerCount() > 0 }, func(e *GameEvent) { b.Bool.Invoke(e.SentBool) }},
		{ChannelFloat, func() bool { return b.Float.ListenerCount() > 0 }, func(e *GameEvent) { b.Float.Invoke(e.SentFloat) }},
		{ChannelString, func() bool { return b.String.ListenerCount() > 0 }, func(e *GameEvent) { b.String.Invoke(e.SentString) }},
	}
}

// EventRaised invokes, in order, every channel that has at least one
// listener at the moment it is reached. It fails without invoking anything
// when no event is bound.
func (b *Binder) EventRaised() error {
	_, err := b.dispatch()
	return err
}

// dispatch returns the names of the channels that fired.
func (b *Binder) dispatch() ([]string, error) {
	if b.Event == nil {
		return nil, fmt.Errorf("%w: %q", ErrNoEvent, b.Name)
	}
	var fired []string
	for _, ch := range b.Channels() {
		if !ch.Active() {
			continue
		}
		ch.Invoke(b.Event)
		fired = append(fired, ch.Name)
	}
	return fired, nil
}
