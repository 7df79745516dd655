package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Anchor presets for common UI layouts
type AnchorPreset int

const (
	AnchorTopLeft AnchorPreset = iota
	AnchorTopCenter
	AnchorTopRight
	AnchorMiddleLeft
	AnchorMiddleCenter
	AnchorMiddleRight
	AnchorBottomLeft
	AnchorBottomCenter
	AnchorBottomRight
	AnchorStretchAll
)

// presetPoints maps point presets to their shared anchor/pivot coordinate.
var presetPoints = map[AnchorPreset]rl.Vector2{
	AnchorTopLeft:      {X: 0, Y: 0},
	AnchorTopCenter:    {X: 0.5, Y: 0},
	AnchorTopRight:     {X: 1, Y: 0},
	AnchorMiddleLeft:   {X: 0, Y: 0.5},
	AnchorMiddleCenter: {X: 0.5, Y: 0.5},
	AnchorMiddleRight:  {X: 1, Y: 0.5},
	AnchorBottomLeft:   {X: 0, Y: 1},
	AnchorBottomCenter: {X: 0.5, Y: 1},
	AnchorBottomRight:  {X: 1, Y: 1},
}

// RectTransform positions UI elements in screen space with anchoring support.
// Anchors define a position relative to the parent rect, offsets define the
// element's size and position relative to those anchors. Y grows downward.
type RectTransform struct {
	engine.BaseComponent

	// Anchor points (0-1 range, relative to parent)
	AnchorMin rl.Vector2
	AnchorMax rl.Vector2

	// Pivot point (0-1 range within element)
	Pivot rl.Vector2

	// Offset from the anchor in pixels; an inset when anchors are stretched
	AnchoredPosition rl.Vector2

	// Size of the element when anchors are a single point
	SizeDelta rl.Vector2

	// Computed screen rectangle (updated each frame)
	screenRect rl.Rectangle
}

func NewRectTransform() *RectTransform {
	return &RectTransform{
		AnchorMin: rl.Vector2{X: 0.5, Y: 0.5},
		AnchorMax: rl.Vector2{X: 0.5, Y: 0.5},
		Pivot:     rl.Vector2{X: 0.5, Y: 0.5},
		SizeDelta: rl.Vector2{X: 100, Y: 30},
	}
}

// SetAnchorPreset configures anchors and pivot using a preset.
func (rt *RectTransform) SetAnchorPreset(preset AnchorPreset) {
	if preset == AnchorStretchAll {
		rt.AnchorMin = rl.Vector2{X: 0, Y: 0}
		rt.AnchorMax = rl.Vector2{X: 1, Y: 1}
		rt.Pivot = rl.Vector2{X: 0.5, Y: 0.5}
		return
	}
	p, ok := presetPoints[preset]
	if !ok {
		return
	}
	rt.AnchorMin, rt.AnchorMax, rt.Pivot = p, p, p
}

// GetScreenRect returns the rectangle computed by the last CalculateRect.
func (rt *RectTransform) GetScreenRect() rl.Rectangle {
	return rt.screenRect
}

// Center returns the center of the computed screen rectangle.
func (rt *RectTransform) Center() rl.Vector2 {
	return rl.Vector2{
		X: rt.screenRect.X + rt.screenRect.Width/2,
		Y: rt.screenRect.Y + rt.screenRect.Height/2,
	}
}

// CalculateRect computes screen position based on parent rect and anchors
func (rt *RectTransform) CalculateRect(parentRect rl.Rectangle) {
	minX := parentRect.X + parentRect.Width*rt.AnchorMin.X
	minY := parentRect.Y + parentRect.Height*rt.AnchorMin.Y
	maxX := parentRect.X + parentRect.Width*rt.AnchorMax.X
	maxY := parentRect.Y + parentRect.Height*rt.AnchorMax.Y

	if rt.AnchorMin == rt.AnchorMax {
		w, h := rt.SizeDelta.X, rt.SizeDelta.Y
		rt.screenRect = rl.Rectangle{
			X:      minX + rt.AnchoredPosition.X - w*rt.Pivot.X,
			Y:      minY + rt.AnchoredPosition.Y - h*rt.Pivot.Y,
			Width:  w,
			Height: h,
		}
		return
	}

	rt.screenRect = rl.Rectangle{
		X:      minX + rt.AnchoredPosition.X,
		Y:      minY + rt.AnchoredPosition.Y,
		Width:  (maxX - minX) + rt.SizeDelta.X,
		Height: (maxY - minY) + rt.SizeDelta.Y,
	}
}

// ContainsPoint checks if a screen point is inside this rect
func (rt *RectTransform) ContainsPoint(point rl.Vector2) bool {
	return rl.CheckCollisionPointRec(point, rt.screenRect)
}
