package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// TextAlignment controls horizontal text alignment
type TextAlignment int

const (
	TextAlignLeft TextAlignment = iota
	TextAlignCenter
	TextAlignRight
)

// UIText displays a single line of text. Text never blocks pointer hits.
type UIText struct {
	engine.BaseComponent

	Text      string
	FontSize  int32
	Color     rl.Color
	Alignment TextAlignment
}

func NewUIText(text string) *UIText {
	return &UIText{
		Text:     text,
		FontSize: 20,
		Color:    rl.White,
	}
}

func (t *UIText) GetColor() rl.Color { return t.Color }

func (t *UIText) SetColor(c rl.Color) { t.Color = c }

// Draw renders the text vertically centered in rect
func (t *UIText) Draw(rect rl.Rectangle) {
	if t.Text == "" || t.Color.A == 0 {
		return
	}

	width := float32(rl.MeasureText(t.Text, t.FontSize))
	x := rect.X
	switch t.Alignment {
	case TextAlignCenter:
		x += (rect.Width - width) / 2
	case TextAlignRight:
		x += rect.Width - width
	}
	y := rect.Y + (rect.Height-float32(t.FontSize))/2

	rl.DrawText(t.Text, int32(x), int32(y), t.FontSize, t.Color)
}
