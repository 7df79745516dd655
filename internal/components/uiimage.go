package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// UIImage displays a texture or solid color rectangle
type UIImage struct {
	engine.BaseComponent

	TexturePath string
	texture     rl.Texture2D

	// Fill color without a texture, tint with one
	Color rl.Color

	// RaycastTarget makes the image block pointer hit tests.
	RaycastTarget bool
}

func NewUIImage() *UIImage {
	return &UIImage{
		Color:         rl.White,
		RaycastTarget: true,
	}
}

func (i *UIImage) Start() {
	if i.TexturePath != "" {
		i.texture = rl.LoadTexture(i.TexturePath)
	}
}

func (i *UIImage) Stop() {
	if i.texture.ID > 0 {
		rl.UnloadTexture(i.texture)
		i.texture = rl.Texture2D{}
	}
}

func (i *UIImage) IsRaycastTarget() bool { return i.RaycastTarget }

func (i *UIImage) GetColor() rl.Color { return i.Color }

func (i *UIImage) SetColor(c rl.Color) { i.Color = c }

// Draw renders the image within the given rect
func (i *UIImage) Draw(rect rl.Rectangle) {
	if i.texture.ID == 0 {
		rl.DrawRectangleRec(rect, i.Color)
		return
	}
	src := rl.Rectangle{
		Width:  float32(i.texture.Width),
		Height: float32(i.texture.Height),
	}
	rl.DrawTexturePro(i.texture, src, rect, rl.Vector2{}, 0, i.Color)
}
