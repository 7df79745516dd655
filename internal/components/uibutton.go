package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// ButtonState tracks the current visual state of a button
type ButtonState int

const (
	ButtonNormal ButtonState = iota
	ButtonHovered
	ButtonPressed
	ButtonDisabled
)

// UIButton is an interactive button element
type UIButton struct {
	engine.BaseComponent

	NormalColor   rl.Color
	HoverColor    rl.Color
	PressedColor  rl.Color
	DisabledColor rl.Color

	State    ButtonState
	Disabled bool

	OnClick engine.Event

	// Click = press and release on the same button
	wasPressed bool
}

func NewUIButton() *UIButton {
	return &UIButton{
		NormalColor:   rl.NewColor(60, 60, 70, 255),
		HoverColor:    rl.NewColor(80, 80, 95, 255),
		PressedColor:  rl.NewColor(100, 100, 120, 255),
		DisabledColor: rl.NewColor(40, 40, 45, 255),
		State:         ButtonNormal,
	}
}

// Disabled buttons still block the pointer.
func (b *UIButton) IsRaycastTarget() bool { return true }

func (b *UIButton) color() rl.Color {
	switch {
	case b.Disabled:
		return b.DisabledColor
	case b.State == ButtonHovered:
		return b.HoverColor
	case b.State == ButtonPressed:
		return b.PressedColor
	}
	return b.NormalColor
}

func (b *UIButton) Draw(rect rl.Rectangle) {
	rl.DrawRectangleRec(rect, b.color())
}

// HandleInput processes pointer input for the button
func (b *UIButton) HandleInput(rect rl.Rectangle, pointer rl.Vector2, down, released bool) {
	if b.Disabled {
		b.State = ButtonDisabled
		return
	}

	if !rl.CheckCollisionPointRec(pointer, rect) {
		b.State = ButtonNormal
		if released {
			b.wasPressed = false
		}
		return
	}

	if down {
		b.State = ButtonPressed
		b.wasPressed = true
	} else {
		b.State = ButtonHovered
	}
	if released && b.wasPressed {
		b.wasPressed = false
		b.OnClick.Invoke()
	}
}
