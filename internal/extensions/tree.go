package extensions

import "gamehelpers/internal/engine"

// DestroyAllChildren destroys every immediate child of g, along with their
// subtrees. The parent itself is left intact.
func DestroyAllChildren(g *engine.GameObject) {
	if g == nil {
		return
	}
	children := append([]*engine.GameObject(nil), g.Children...)
	for _, child := range children {
		engine.Destroy(child)
	}
}

// SetLayerRecursive assigns layer to g and every descendant, depth-first.
func SetLayerRecursive(g *engine.GameObject, layer int) {
	if g == nil {
		return
	}
	g.Layer = layer
	for _, child := range g.Children {
		SetLayerRecursive(child, layer)
	}
}
