package components

import (
	"gamehelpers/internal/engine"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaycastTarget is implemented by UI components that block pointer hits.
type RaycastTarget interface {
	IsRaycastTarget() bool
}

// UIHit is one element found under the pointer.
type UIHit struct {
	GameObject *engine.GameObject
	Canvas     *UICanvas
	Depth      int // 0 for the canvas object itself
}

// UICanvas is the root container for UI elements.
// Attach to a GameObject and add UI element children.
// The canvas handles layout calculation and drawing order.
type UICanvas struct {
	engine.BaseComponent

	SortOrder int // Higher values render on top
}

func NewUICanvas() *UICanvas {
	return &UICanvas{}
}

// ScreenRect returns the full-window rectangle used as the canvas root.
func ScreenRect() rl.Rectangle {
	return rl.Rectangle{
		Width:  float32(rl.GetScreenWidth()),
		Height: float32(rl.GetScreenHeight()),
	}
}

// walk visits active elements depth-first, laying out each RectTransform
// against its parent's rect before visiting children.
func (c *UICanvas) walk(g *engine.GameObject, parentRect rl.Rectangle, depth int, visit func(g *engine.GameObject, rect rl.Rectangle, depth int)) {
	if g == nil || !g.Active || g.IsDestroyed() {
		return
	}
	rect := parentRect
	if rt := engine.GetComponent[*RectTransform](g); rt != nil {
		rt.CalculateRect(parentRect)
		rect = rt.GetScreenRect()
	}
	visit(g, rect, depth)
	for _, child := range g.Children {
		c.walk(child, rect, depth+1, visit)
	}
}

// Raycast appends to dst every raycast-target element under point and
// returns the extended slice. Elements are reported topmost first: later
// siblings and deeper children draw over earlier ones.
func (c *UICanvas) Raycast(point rl.Vector2, screen rl.Rectangle, dst []UIHit) []UIHit {
	g := c.GetGameObject()
	if g == nil {
		return dst
	}
	start := len(dst)
	c.walk(g, screen, 0, func(obj *engine.GameObject, rect rl.Rectangle, depth int) {
		if !blocksRaycast(obj) {
			return
		}
		if rl.CheckCollisionPointRec(point, rect) {
			dst = append(dst, UIHit{GameObject: obj, Canvas: c, Depth: depth})
		}
	})
	// Draw order is visit order, so reverse for topmost first.
	for i, j := start, len(dst)-1; i < j; i, j = i+1, j-1 {
		dst[i], dst[j] = dst[j], dst[i]
	}
	return dst
}

func blocksRaycast(g *engine.GameObject) bool {
	for _, comp := range g.Components() {
		if rt, ok := comp.(RaycastTarget); ok && rt.IsRaycastTarget() {
			return true
		}
	}
	return false
}

// Draw renders all UI elements under this canvas
func (c *UICanvas) Draw(screen rl.Rectangle) {
	c.walk(c.GetGameObject(), screen, 0, func(g *engine.GameObject, rect rl.Rectangle, _ int) {
		if img := engine.GetComponent[*UIImage](g); img != nil {
			img.Draw(rect)
		}
		if btn := engine.GetComponent[*UIButton](g); btn != nil {
			btn.Draw(rect)
		}
		if text := engine.GetComponent[*UIText](g); text != nil {
			text.Draw(rect)
		}
	})
}

// HandleInput forwards pointer state to every button under this canvas.
func (c *UICanvas) HandleInput(screen rl.Rectangle, pointer rl.Vector2, down, released bool) {
	c.walk(c.GetGameObject(), screen, 0, func(g *engine.GameObject, rect rl.Rectangle, _ int) {
		if btn := engine.GetComponent[*UIButton](g); btn != nil {
			btn.HandleInput(rect, pointer, down, released)
		}
	})
}

// Update polls the raylib mouse and handles button interaction.
func (c *UICanvas) Update(deltaTime float32) {
	c.HandleInput(
		ScreenRect(),
		rl.GetMousePosition(),
		rl.IsMouseButtonDown(rl.MouseLeftButton),
		rl.IsMouseButtonReleased(rl.MouseLeftButton),
	)
}
