package game

import (
	"fmt"

	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"

	"gamehelpers/internal/engine"
)

// defaultPresets are the transforms a spawned sprite may start from.
// Positions are offsets from the click point.
const defaultPresets = `
presets:
  - scale: {x: 0.5, y: 0.5, z: 0.5}
  - scale: {x: 0.3, y: 0.3, z: 0.3}
    position: {x: 0, y: 0.2, z: 0}
  - scale: {x: 0.7, y: 0.4, z: 0.5}
    rotation: {x: 0, y: 0, z: 0.38268343, w: 0.92387953}
`

type presetFile struct {
	Presets []engine.TransformSet `yaml:"presets"`
}

func parsePresets(data []byte) ([]engine.TransformSet, error) {
	var f presetFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode presets: %w", err)
	}
	if len(f.Presets) == 0 {
		return nil, fmt.Errorf("decode presets: no presets")
	}
	return f.Presets, nil
}

// placeAt applies preset to t with its position offset by the click point.
func placeAt(preset engine.TransformSet, click rl.Vector2, t *engine.Transform) {
	preset.Position = rl.Vector3Add(preset.Position, rl.Vector3{X: click.X, Y: click.Y})
	preset.Apply(t)
}
