package extensions

import (
	"math"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Vector3Int is an integer grid coordinate.
type Vector3Int struct {
	X, Y, Z int
}

// ToPlaneVector drops the vertical component.
func ToPlaneVector(v rl.Vector3) rl.Vector3 {
	return rl.Vector3{X: v.X, Y: 0, Z: v.Z}
}

// ToVector2 drops the Z component.
func ToVector2(v rl.Vector3) rl.Vector2 {
	return rl.Vector2{X: v.X, Y: v.Y}
}

// ToIntegerVector truncates each component toward zero; it does not round.
func ToIntegerVector(v rl.Vector3) Vector3Int {
	return Vector3Int{X: int(v.X), Y: int(v.Y), Z: int(v.Z)}
}

// Colored is implemented by renderables with a tint color.
type Colored interface {
	GetColor() rl.Color
	SetColor(c rl.Color)
}

// FadeAlpha sets the alpha channel of c to alpha (0-1, clamped),
// leaving red, green and blue untouched.
func FadeAlpha(c Colored, alpha float32) {
	if c == nil {
		return
	}
	color := c.GetColor()
	color.A = alphaByte(alpha)
	c.SetColor(color)
}

func alphaByte(alpha float32) uint8 {
	if math.IsNaN(float64(alpha)) || alpha <= 0 {
		return 0
	}
	if alpha >= 1 {
		return 255
	}
	return uint8(math.Round(float64(alpha) * 255))
}
