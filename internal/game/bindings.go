package game

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"gamehelpers/internal/engine"
	"gamehelpers/internal/events"
)

const defaultBinders = `
binders:
  - name: spawn-status
    event: sprite.spawned
    int: [showCount]
    generic: [playPop]
  - name: clear-status
    event: sprites.cleared
    generic: [showCleared, playClear]
`

// responses registers the handlers binder files may refer to.
func (g *Game) responses() *events.Registry {
	reg := events.NewRegistry()
	reg.RegisterInt("showCount", func(n int) {
		g.status = fmt.Sprintf("Spawned sprite #%d", n)
	})
	reg.RegisterGeneric("showCleared", func() {
		g.status = "Cleared"
	})
	reg.RegisterGeneric("playPop", func() { g.play("pop") })
	reg.RegisterGeneric("playClear", func() { g.play("clear") })
	reg.RegisterString("setStatus", func(s string) { g.status = s })
	return reg
}

func (g *Game) play(name string) {
	if g.bank == nil {
		return
	}
	if err := g.bank.Play(name); err != nil {
		g.log.Debug("sound not played", zap.String("sound", name), zap.Error(err))
	}
}

// bindEvents loads binders from the configured file, or the built-in set,
// and attaches them to a listener object in the scene.
func (g *Game) bindEvents() error {
	data := []byte(defaultBinders)
	if g.cfg.BindersPath != "" {
		b, err := os.ReadFile(g.cfg.BindersPath)
		if err != nil {
			return fmt.Errorf("read binders: %w", err)
		}
		data = b
	}
	binders, err := events.LoadBinders(data, g.events, g.responses())
	if err != nil {
		return err
	}

	obj := engine.NewGameObject("Event Listener")
	obj.AddComponent(events.NewListener(g.log, binders...))
	g.Scene.AddGameObject(obj)
	g.log.Info("event binders loaded", zap.Int("binders", len(binders)))
	return nil
}
