package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// SpriteRenderer draws a texture (or a colored quad when no texture is
// loaded) at its GameObject's world position on the XY plane.
type SpriteRenderer struct {
	engine.BaseComponent

	TexturePath string
	texture     rl.Texture2D

	Color rl.Color

	// Size of the quad in world units when no texture is loaded
	Size rl.Vector2
}

func NewSpriteRenderer() *SpriteRenderer {
	return &SpriteRenderer{
		Color: rl.White,
		Size:  rl.Vector2{X: 1, Y: 1},
	}
}

func (s *SpriteRenderer) Start() {
	if s.TexturePath != "" {
		s.texture = rl.LoadTexture(s.TexturePath)
	}
}

func (s *SpriteRenderer) Stop() {
	if s.texture.ID > 0 {
		rl.UnloadTexture(s.texture)
		s.texture = rl.Texture2D{}
	}
}

func (s *SpriteRenderer) GetColor() rl.Color { return s.Color }

func (s *SpriteRenderer) SetColor(c rl.Color) { s.Color = c }

// Draw renders the sprite facing the given camera. Must be called between
// BeginMode3D and EndMode3D.
func (s *SpriteRenderer) Draw(camera rl.Camera3D) {
	g := s.GetGameObject()
	if g == nil || !g.ActiveInHierarchy() {
		return
	}
	pos := g.WorldPosition()
	scale := g.WorldScale()
	size := rl.Vector2{X: s.Size.X * scale.X, Y: s.Size.Y * scale.Y}

	if s.texture.ID > 0 {
		rl.DrawBillboardRec(camera, s.texture, rl.Rectangle{
			Width:  float32(s.texture.Width),
			Height: float32(s.texture.Height),
		}, pos, size, s.Color)
		return
	}
	rl.DrawCube(pos, size.X, size.Y, 0.01, s.Color)
}
