package components

import (
	"math"

	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// MainCameraTag marks a GameObject whose Camera should be treated as the
// main camera when no Camera has IsMain set.
const MainCameraTag = "MainCamera"

type Camera struct {
	engine.BaseComponent
	FOV        float32
	Near       float32
	Far        float32
	Projection rl.CameraProjection
	IsMain     bool // If true, this is the active game camera
}

func NewCamera() *Camera {
	return &Camera{
		FOV:        45.0,
		Near:       0.1,
		Far:        1000.0,
		Projection: rl.CameraPerspective,
		IsMain:     false,
	}
}

// Forward returns the unit view direction derived from the object's world
// rotation (pitch around X, yaw around Y).
func (c *Camera) Forward() rl.Vector3 {
	g := c.GetGameObject()
	if g == nil {
		return rl.Vector3{X: 0, Y: 0, Z: -1}
	}
	rot := g.WorldRotation()
	yaw := float64(rot.Y) * math.Pi / 180
	pitch := float64(rot.X) * math.Pi / 180
	return rl.Vector3{
		X: float32(-math.Sin(yaw) * math.Cos(pitch)),
		Y: float32(math.Sin(pitch)),
		Z: float32(-math.Cos(yaw) * math.Cos(pitch)),
	}
}

func (c *Camera) GetRaylibCamera() rl.Camera3D {
	g := c.GetGameObject()
	if g == nil {
		return rl.Camera3D{}
	}

	eyePos := g.WorldPosition()
	return rl.Camera3D{
		Position:   eyePos,
		Target:     rl.Vector3Add(eyePos, c.Forward()),
		Up:         rl.Vector3{X: 0, Y: 1, Z: 0},
		Fovy:       c.FOV,
		Projection: c.Projection,
	}
}

// FindMainCamera returns the first active Camera flagged IsMain, falling back
// to a Camera on an object tagged MainCamera. Nil when the scene has neither.
func FindMainCamera(scene *engine.Scene) *Camera {
	if scene == nil {
		return nil
	}
	var tagged *Camera
	for _, g := range scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		cam := engine.GetComponent[*Camera](g)
		if cam == nil {
			continue
		}
		if cam.IsMain {
			return cam
		}
		if tagged == nil && g.HasTag(MainCameraTag) {
			tagged = cam
		}
	}
	return tagged
}
