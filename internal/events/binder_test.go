package events

import (
	"errors"
	"testing"
)

func TestEventRaisedOnlyIntChannel(t *testing.T) {
	e := NewGameEvent("score")
	e.SentInt = 42
	b := &Binder{Name: "score", Event: e}

	var got []int
	b.Int.AddListener(func(v int) { got = append(got, v) })

	fired, err := b.dispatch()
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if len(got) != 1 || got[0] != 42 {
		t.Errorf("Expected int channel to receive 42 once, got %v", got)
	}
	if len(fired) != 1 || fired[0] != ChannelInt {
		t.Errorf("Expected only the int channel to fire, got %v", fired)
	}
}

func TestEventRaisedFixedOrder(t *testing.T) {
	e := &GameEvent{SentInt: 1, SentBool: true, SentFloat: 2.5, SentString: "hi"}
	b := &Binder{Event: e}

	var order []string
	b.String.AddListener(func(s string) { order = append(order, "string:"+s) })
	b.Float.AddListener(func(float32) { order = append(order, "float") })
	b.Bool.AddListener(func(bool) { order = append(order, "bool") })
	b.Int.AddListener(func(int) { order = append(order, "int") })
	b.Generic.AddListener(func() { order = append(order, "generic") })

	if err := b.EventRaised(); err != nil {
		t.Fatalf("EventRaised failed: %v", err)
	}

	want := []string{"generic", "int", "bool", "float", "string:hi"}
	if len(order) != len(want) {
		t.Fatalf("Expected %v, got %v", want, order)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Position %d: expected %s, got %s", i, want[i], order[i])
		}
	}
}

func TestEventRaisedPayloads(t *testing.T) {
	e := &GameEvent{SentBool: true, SentFloat: 0.75, SentString: "door"}
	b := &Binder{Event: e}

	var gotBool bool
	var gotFloat float32
	var gotString string
	b.Bool.AddListener(func(v bool) { gotBool = v })
	b.Float.AddListener(func(v float32) { gotFloat = v })
	b.String.AddListener(func(v string) { gotString = v })

	if err := b.EventRaised(); err != nil {
		t.Fatalf("EventRaised failed: %v", err)
	}
	if !gotBool || gotFloat != 0.75 || gotString != "door" {
		t.Errorf("Unexpected payloads: %v %v %q", gotBool, gotFloat, gotString)
	}
}

func TestEventRaisedWithoutEvent(t *testing.T) {
	b := &Binder{Name: "orphan"}
	called := false
	b.Generic.AddListener(func() { called = true })

	err := b.EventRaised()
	if !errors.Is(err, ErrNoEvent) {
		t.Errorf("Expected ErrNoEvent, got %v", err)
	}
	if called {
		t.Error("No channel should fire without an event")
	}
}

func TestEventRaisedNoListeners(t *testing.T) {
	b := &Binder{Event: NewGameEvent("quiet")}
	fired, err := b.dispatch()
	if err != nil {
		t.Fatalf("dispatch failed: %v", err)
	}
	if len(fired) != 0 {
		t.Errorf("Expected nothing to fire, got %v", fired)
	}
}

func TestChannelActivationCheckedAtEvaluation(t *testing.T) {
	// A generic listener that adds a string listener: the string channel
	// is evaluated later in the same dispatch and must see it.
	b := &Binder{Event: &GameEvent{SentString: "late"}}
	var got string
	b.Generic.AddListener(func() {
		b.String.AddListener(func(s string) { got = s })
	})

	if err := b.EventRaised(); err != nil {
		t.Fatalf("EventRaised failed: %v", err)
	}
	if got != "late" {
		t.Errorf("Expected listener added mid-dispatch to fire, got %q", got)
	}
}

func TestChannelsOrder(t *testing.T) {
	b := &Binder{}
	want := []string{ChannelGeneric, ChannelInt, ChannelBool, ChannelFloat, ChannelString}
	chs := b.Channels()
	if len(chs) != len(want) {
		t.Fatalf("Expected %d channels, got %d", len(want), len(chs))
	}
	for i, ch := range chs {
		if ch.Name != want[i] {
			t.Errorf("Channel %d: expected %s, got %s", i, want[i], ch.Name)
		}
		if ch.Active() {
			t.Errorf("Channel %s should be inactive without listeners", ch.Name)
		}
	}
}
