package events

import (
	"go.uber.org/zap"

	"gamehelpers/internal/engine"
	"gamehelpers/internal/logger"
)

// Listener is a component that subscribes its binders to their events for
// as long as it is started.
type Listener struct {
	engine.BaseComponent

	Binders []*Binder

	log        *zap.Logger
	registered []*GameEvent
}

func NewListener(log *zap.Logger, binders ...*Binder) *Listener {
	return &Listener{Binders: binders, log: logger.OrNop(log)}
}

// Start registers with every distinct event referenced by the binders.
func (l *Listener) Start() {
	for _, b := range l.Binders {
		if b.Event == nil {
			l.lg().Warn("binder without event", zap.String("binder", b.Name))
			continue
		}
		if l.isRegistered(b.Event) {
			continue
		}
		b.Event.Register(l)
		l.registered = append(l.registered, b.Event)
	}
}

// Stop unregisters from every event.
func (l *Listener) Stop() {
	for _, e := range l.registered {
		e.Unregister(l)
	}
	l.registered = nil
}

func (l *Listener) lg() *zap.Logger {
	if l.log == nil {
		l.log = logger.OrNop(nil)
	}
	return l.log
}

func (l *Listener) isRegistered(e *GameEvent) bool {
	for _, r := range l.registered {
		if r == e {
			return true
		}
	}
	return false
}

// OnEventRaised dispatches every binder bound to e, in binder order.
func (l *Listener) OnEventRaised(e *GameEvent) {
	if g := l.GetGameObject(); g != nil && !g.ActiveInHierarchy() {
		return
	}
	for _, b := range l.Binders {
		if b.Event != e {
			continue
		}
		fired, err := b.dispatch()
		if err != nil {
			l.lg().Error("dispatch failed", zap.String("binder", b.Name), zap.Error(err))
			continue
		}
		l.lg().Debug("event dispatched",
			zap.String("event", e.Name),
			zap.String("binder", b.Name),
			zap.Strings("channels", fired),
		)
	}
}
