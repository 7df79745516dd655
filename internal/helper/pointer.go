package helper

import (
	"cmp"
	"slices"

	rl "github.com/gen2brain/raylib-go/raylib"

	"gamehelpers/internal/components"
	"gamehelpers/internal/engine"
)

// canvases collects the scene's active canvases, highest sort order first,
// into a scratch slice reused across calls.
func (h *Helper) canvases() []*components.UICanvas {
	h.canvasBuf = h.canvasBuf[:0]
	if h.scene == nil {
		return h.canvasBuf
	}
	out := h.canvasBuf
	for _, g := range h.scene.GameObjects {
		if !g.ActiveInHierarchy() {
			continue
		}
		if c := engine.GetComponent[*components.UICanvas](g); c != nil {
			out = append(out, c)
		}
	}
	slices.SortStableFunc(out, func(a, b *components.UICanvas) int {
		return cmp.Compare(b.SortOrder, a.SortOrder)
	})
	h.canvasBuf = out
	return out
}

// RaycastAll hit-tests point against every canvas. The returned slice is
// reused by the next call.
func (h *Helper) RaycastAll(point rl.Vector2) []components.UIHit {
	h.hits = h.hits[:0]
	canvases := h.canvases()
	if len(canvases) == 0 {
		return h.hits
	}
	screen := h.opts.Screen()
	for _, c := range canvases {
		h.hits = c.Raycast(point, screen, h.hits)
	}
	return h.hits
}

// IsOverUI reports whether the pointer is over at least one UI raycast
// target. It is false when the scene has no canvas.
func (h *Helper) IsOverUI() bool {
	return len(h.RaycastAll(h.opts.Pointer.PointerPosition())) > 0
}
