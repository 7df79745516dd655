// Package helper caches host resources for gameplay code: the main camera,
// shared coroutine waits and the UI pointer hit test.
//
// A Helper is owned by the application and passed to call sites. It is not
// safe for concurrent use; call it from the frame loop only.
package helper

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"gamehelpers/internal/components"
	"gamehelpers/internal/coroutine"
	"gamehelpers/internal/engine"
	"gamehelpers/internal/logger"
)

// PointerSource reports the current pointer position in screen pixels.
type PointerSource interface {
	PointerPosition() rl.Vector2
}

// MousePointer reads the raylib mouse.
type MousePointer struct{}

func (MousePointer) PointerPosition() rl.Vector2 { return rl.GetMousePosition() }

// Options configure a Helper. Zero fields take defaults.
type Options struct {
	// WaitResolution is the granularity of GetWait keys. Default 1ms.
	WaitResolution time.Duration
	Pointer        PointerSource
	// Screen returns the canvas root rectangle. Default: the raylib window.
	Screen func() rl.Rectangle
	Logger *zap.Logger
}

// maxWaitSeconds keeps wait keys well inside int64 nanoseconds.
const maxWaitSeconds = 1e9

type Helper struct {
	scene *engine.Scene
	opts  Options
	log   *zap.Logger

	camera *components.Camera
	waits  map[int64]*coroutine.WaitForSeconds

	hits      []components.UIHit
	canvasBuf []*components.UICanvas
}

func New(scene *engine.Scene, opts Options) *Helper {
	if opts.WaitResolution <= 0 {
		opts.WaitResolution = time.Millisecond
	}
	if opts.Pointer == nil {
		opts.Pointer = MousePointer{}
	}
	if opts.Screen == nil {
		opts.Screen = components.ScreenRect
	}
	return &Helper{
		scene: scene,
		opts:  opts,
		log:   logger.OrNop(opts.Logger),
		waits: make(map[int64]*coroutine.WaitForSeconds),
	}
}

func (h *Helper) Scene() *engine.Scene { return h.scene }

// SetScene switches scenes and drops the cached camera.
func (h *Helper) SetScene(scene *engine.Scene) {
	h.scene = scene
	h.camera = nil
}

// Camera returns the scene's main camera, resolving it again only when the
// cached one is gone, inactive or no longer main. Nil when there is none.
func (h *Helper) Camera() *components.Camera {
	if h.cameraValid() {
		return h.camera
	}
	h.camera = components.FindMainCamera(h.scene)
	if h.camera != nil {
		h.log.Debug("main camera resolved", zap.String("object", h.camera.GetGameObject().Name))
	}
	return h.camera
}

func (h *Helper) cameraValid() bool {
	if h.camera == nil || h.scene == nil {
		return false
	}
	g := h.camera.GetGameObject()
	if g == nil || !h.scene.Contains(g) || !g.ActiveInHierarchy() {
		return false
	}
	return h.camera.IsMain || g.HasTag(components.MainCameraTag)
}

// GetWait returns the shared wait for the given number of seconds. Durations
// that round to the same multiple of the wait resolution share one handle.
// NaN and negative durations map to the zero wait.
func (h *Helper) GetWait(seconds float32) *coroutine.WaitForSeconds {
	key := h.waitKey(seconds)
	if w, ok := h.waits[key]; ok {
		return w
	}
	w := coroutine.NewWaitForSeconds(float32((time.Duration(key) * h.opts.WaitResolution).Seconds()))
	h.waits[key] = w
	h.log.Debug("wait cached", zap.Float32("seconds", w.Seconds()), zap.Int("cached", len(h.waits)))
	return w
}

func (h *Helper) waitKey(seconds float32) int64 {
	s := float64(seconds)
	if math.IsNaN(s) || s <= 0 {
		return 0
	}
	s = min(s, maxWaitSeconds)
	return int64(math.Round(s * float64(time.Second) / float64(h.opts.WaitResolution)))
}

// CachedWaits reports how many distinct waits have been handed out.
func (h *Helper) CachedWaits() int {
	return len(h.waits)
}
