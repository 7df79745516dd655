package engine

import (
	rl "github.com/gen2brain/raylib-go/raylib"
	"gopkg.in/yaml.v3"
)

// TransformSet is a value snapshot of a transform: position, rotation as a
// quaternion, and scale. The zero value holds a zero quaternion, not the
// identity; use IdentityTransformSet when a neutral rotation is wanted.
type TransformSet struct {
	Position rl.Vector3    `yaml:"position"`
	Rotation rl.Quaternion `yaml:"rotation"`
	Scale    rl.Vector3    `yaml:"scale"`
}

func NewTransformSet(position rl.Vector3, rotation rl.Quaternion, scale rl.Vector3) TransformSet {
	return TransformSet{Position: position, Rotation: rotation, Scale: scale}
}

func IdentityTransformSet() TransformSet {
	return TransformSet{
		Rotation: rl.QuaternionIdentity(),
		Scale:    rl.Vector3{X: 1, Y: 1, Z: 1},
	}
}

// UnmarshalYAML starts from the identity snapshot, so documents may omit
// rotation or scale.
func (s *TransformSet) UnmarshalYAML(value *yaml.Node) error {
	type plain TransformSet
	p := plain(IdentityTransformSet())
	if err := value.Decode(&p); err != nil {
		return err
	}
	*s = TransformSet(p)
	return nil
}

// CaptureTransform snapshots a local transform.
func CaptureTransform(t Transform) TransformSet {
	return TransformSet{
		Position: t.Position,
		Rotation: rl.QuaternionFromEuler(
			t.Rotation.X*rl.Deg2rad,
			t.Rotation.Y*rl.Deg2rad,
			t.Rotation.Z*rl.Deg2rad,
		),
		Scale: t.Scale,
	}
}

// Apply writes the snapshot back into t, converting the rotation to Euler
// degrees.
func (s TransformSet) Apply(t *Transform) {
	euler := rl.QuaternionToEuler(s.Rotation)
	t.Position = s.Position
	t.Rotation = rl.Vector3{
		X: euler.X * rl.Rad2deg,
		Y: euler.Y * rl.Rad2deg,
		Z: euler.Z * rl.Rad2deg,
	}
	t.Scale = s.Scale
}
