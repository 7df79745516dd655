package helper

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gamehelpers/internal/components"
)

// WorldPositionOfCanvasElement casts a ray from the main camera through the
// center of rt's screen rect and returns where it meets the world z = 0
// plane. It reports false without a camera or when the ray misses.
func (h *Helper) WorldPositionOfCanvasElement(rt *components.RectTransform) (rl.Vector2, bool) {
	if rt == nil {
		return rl.Vector2{}, false
	}
	return h.ScreenPointToWorld(rt.Center())
}

// ScreenPointToWorld projects a screen point through the main camera onto
// the world z = 0 plane. It reports false for an empty screen rect.
func (h *Helper) ScreenPointToWorld(point rl.Vector2) (rl.Vector2, bool) {
	cam := h.Camera()
	if cam == nil {
		return rl.Vector2{}, false
	}
	screen := h.opts.Screen()
	if screen.Width <= 0 || screen.Height <= 0 {
		return rl.Vector2{}, false
	}
	ray := ScreenPointToRay(point, cam.GetRaylibCamera(), screen.Width, screen.Height, cam.Near, cam.Far)
	return intersectZPlane(ray)
}

// ScreenPointToRay unprojects a screen point between the near and far clip
// planes. Orthographic cameras use Fovy as the vertical view extent, the
// way raylib does. The ray starts on the near plane.
func ScreenPointToRay(point rl.Vector2, cam rl.Camera3D, width, height, nearPlane, farPlane float32) rl.Ray {
	// Normalized device coordinates, y up.
	x := 2*point.X/width - 1
	y := 1 - 2*point.Y/height

	view := rl.MatrixLookAt(cam.Position, cam.Target, cam.Up)
	aspect := float64(width) / float64(height)

	var proj rl.Matrix
	if cam.Projection == rl.CameraOrthographic {
		top := float64(cam.Fovy) / 2
		right := top * aspect
		proj = rl.MatrixOrtho(float32(-right), float32(right), float32(-top), float32(top), nearPlane, farPlane)
	} else {
		proj = rl.MatrixPerspective(float32(float64(cam.Fovy)*math.Pi/180), float32(aspect), nearPlane, farPlane)
	}

	start := rl.Vector3Unproject(rl.Vector3{X: x, Y: y, Z: -1}, proj, view)
	end := rl.Vector3Unproject(rl.Vector3{X: x, Y: y, Z: 1}, proj, view)

	return rl.Ray{
		Position:  start,
		Direction: rl.Vector3Normalize(rl.Vector3Subtract(end, start)),
	}
}

func finite(v float32) bool {
	return !math.IsNaN(float64(v)) && !math.IsInf(float64(v), 0)
}

func intersectZPlane(ray rl.Ray) (rl.Vector2, bool) {
	const eps = 1e-6
	if !finite(ray.Direction.Z) || !finite(ray.Position.Z) {
		return rl.Vector2{}, false
	}
	if math.Abs(float64(ray.Direction.Z)) < eps {
		return rl.Vector2{}, false
	}
	t := -ray.Position.Z / ray.Direction.Z
	if !(t >= 0) {
		return rl.Vector2{}, false
	}
	hit := rl.Vector2{
		X: ray.Position.X + ray.Direction.X*t,
		Y: ray.Position.Y + ray.Direction.Y*t,
	}
	if !finite(hit.X) || !finite(hit.Y) {
		return rl.Vector2{}, false
	}
	return hit, true
}
