package engine

type Scene struct {
	Name        string
	GameObjects []*GameObject
	uidMap      map[uint64]*GameObject
}

func NewScene(name string) *Scene {
	return &Scene{
		Name:        name,
		GameObjects: make([]*GameObject, 0),
		uidMap:      make(map[uint64]*GameObject),
	}
}

func (s *Scene) AddGameObject(g *GameObject) {
	if s.uidMap == nil {
		s.uidMap = make(map[uint64]*GameObject)
	}
	if _, exists := s.uidMap[g.UID]; exists {
		return
	}
	g.Scene = s
	s.GameObjects = append(s.GameObjects, g)
	s.uidMap[g.UID] = g
}

// RemoveGameObject removes g and all of its descendants from the scene
// without destroying them.
func (s *Scene) RemoveGameObject(g *GameObject) {
	for _, child := range g.Children {
		s.RemoveGameObject(child)
	}
	for i, obj := range s.GameObjects {
		if obj == g {
			s.GameObjects = append(s.GameObjects[:i], s.GameObjects[i+1:]...)
			break
		}
	}
	delete(s.uidMap, g.UID)
	if g.Scene == s {
		g.Scene = nil
	}
}

// Destroy detaches g from its parent, removes it and its descendants from
// the scene and marks them destroyed. Components implementing Stopper are
// stopped, children first.
func (s *Scene) Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	s.RemoveGameObject(g)
	markDestroyed(g)
}

// Destroy destroys g through its scene, or just detaches and marks it when
// it was never added to one.
func Destroy(g *GameObject) {
	if g == nil || g.destroyed {
		return
	}
	if g.Scene != nil {
		g.Scene.Destroy(g)
		return
	}
	if g.Parent != nil {
		g.Parent.RemoveChild(g)
	}
	markDestroyed(g)
}

func markDestroyed(g *GameObject) {
	for _, child := range g.Children {
		markDestroyed(child)
	}
	for _, c := range g.components {
		if st, ok := c.(Stopper); ok {
			st.Stop()
		}
	}
	g.destroyed = true
}

// Contains reports whether g is currently registered with the scene.
func (s *Scene) Contains(g *GameObject) bool {
	if g == nil {
		return false
	}
	return s.uidMap[g.UID] == g
}

// FindByUID returns the GameObject with the given UID, or nil.
func (s *Scene) FindByUID(uid uint64) *GameObject {
	return s.uidMap[uid]
}

func (s *Scene) FindByName(name string) *GameObject {
	for _, g := range s.GameObjects {
		if g.Name == name {
			return g
		}
	}
	return nil
}

func (s *Scene) FindByTag(tag string) []*GameObject {
	var result []*GameObject
	for _, g := range s.GameObjects {
		if g.HasTag(tag) {
			result = append(result, g)
		}
	}
	return result
}

func (s *Scene) Start() {
	for _, g := range s.GameObjects {
		g.Start()
	}
}

func (s *Scene) Update(deltaTime float32) {
	// Components may destroy objects mid-frame.
	objs := append([]*GameObject(nil), s.GameObjects...)
	for _, g := range objs {
		g.Update(deltaTime)
	}
}
