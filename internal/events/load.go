package events

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrUnknownResponse is returned when a binder definition names a response
// that is not registered for the channel it is listed under.
var ErrUnknownResponse = errors.New("unknown response")

type binderDef struct {
	Name    string   `yaml:"name"`
	Event   string   `yaml:"event"`
	Generic []string `yaml:"generic"`
	Int     []string `yaml:"int"`
	Bool    []string `yaml:"bool"`
	Float   []string `yaml:"float"`
	String  []string `yaml:"string"`
}

type bindersFile struct {
	Binders []binderDef `yaml:"binders"`
}

// EventSet resolves event names to shared GameEvents, creating each on
// first lookup.
type EventSet map[string]*GameEvent

func (s EventSet) Get(name string) *GameEvent {
	if e, ok := s[name]; ok {
		return e
	}
	e := NewGameEvent(name)
	s[name] = e
	return e
}

// LoadBinders decodes binder definitions and wires their channels to the
// responses in reg. A definition without an event yields a Binder with a
// nil Event.
func LoadBinders(data []byte, events EventSet, reg *Registry) ([]*Binder, error) {
	var f bindersFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode binders: %w", err)
	}

	binders := make([]*Binder, 0, len(f.Binders))
	for _, def := range f.Binders {
		b := &Binder{Name: def.Name}
		if def.Event != "" {
			b.Event = events.Get(def.Event)
		}
		if err := wire(b, def, reg); err != nil {
			return nil, fmt.Errorf("binder %q: %w", def.Name, err)
		}
		binders = append(binders, b)
	}
	return binders, nil
}

func wire(b *Binder, def binderDef, reg *Registry) error {
	for _, n := range def.Generic {
		fn, ok := reg.generic[n]
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownResponse, ChannelGeneric, n)
		}
		b.Generic.AddListener(fn)
	}
	for _, n := range def.Int {
		fn, ok := reg.ints[n]
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownResponse, ChannelInt, n)
		}
		b.Int.AddListener(fn)
	}
	for _, n := range def.Bool {
		fn, ok := reg.bools[n]
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownResponse, ChannelBool, n)
		}
		b.Bool.AddListener(fn)
	}
	for _, n := range def.Float {
		fn, ok := reg.floats[n]
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownResponse, ChannelFloat, n)
		}
		b.Float.AddListener(fn)
	}
	for _, n := range def.String {
		fn, ok := reg.strings[n]
		if !ok {
			return fmt.Errorf("%w: %s %q", ErrUnknownResponse, ChannelString, n)
		}
		b.String.AddListener(fn)
	}
	return nil
}
