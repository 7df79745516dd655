package game

import (
	"fmt"
	"time"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
	"go.uber.org/zap"

	"gamehelpers/internal/audio"
	"gamehelpers/internal/components"
	"gamehelpers/internal/config"
	"gamehelpers/internal/coroutine"
	"gamehelpers/internal/engine"
	"gamehelpers/internal/events"
	"gamehelpers/internal/extensions"
	"gamehelpers/internal/helper"
)

const (
	maxSprites   = 8
	spriteLayer  = 1
	hiddenLayer  = 2
	spawnedEvent = "sprite.spawned"
	clearedEvent = "sprites.cleared"
)

var palette = []rl.Color{rl.Red, rl.Orange, rl.Gold, rl.Lime, rl.SkyBlue, rl.Purple}

// Game is a small interactive scene exercising the helpers: click to spawn
// sprites, watch them fade, clear them from the panel.
type Game struct {
	cfg config.Config
	log *zap.Logger

	Scene    *engine.Scene
	Helper   *helper.Helper
	Routines *coroutine.Runner
	rng      extensions.Rand

	sprites *engine.GameObject
	blinker *components.SpriteRenderer
	canvas  *components.UICanvas
	panel   *components.RectTransform
	hint    *components.UIText
	presets []engine.TransformSet

	events events.EventSet
	mixer  *audio.Mixer
	device *audio.Device
	bank   *audio.Bank
	status string
	hidden bool
}

func New(cfg config.Config, log *zap.Logger) *Game {
	g := &Game{
		cfg:      cfg,
		log:      log,
		Scene:    engine.NewScene("Demo"),
		Routines: coroutine.NewRunner(),
		rng:      newRand(cfg.RandomSeed),
		events:   events.EventSet{},
	}
	g.Helper = helper.New(g.Scene, helper.Options{
		WaitResolution: cfg.WaitResolution,
		Logger:         log,
	})
	presets, err := parsePresets([]byte(defaultPresets))
	if err != nil {
		panic(err)
	}
	g.presets = presets
	return g
}

// newRand returns a deterministic source for a non-zero seed and raylib's
// generator otherwise.
func newRand(seed uint64) extensions.Rand {
	if seed == 0 {
		return extensions.HostRand{}
	}
	return extensions.NewRand(seed)
}

func (g *Game) Run() error {
	rl.SetConfigFlags(rl.FlagWindowHighdpi)
	rl.InitWindow(g.cfg.WindowWidth, g.cfg.WindowHeight, "Helper Demo")
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)
	gui.LoadStyleDefault()

	if err := g.setupAudio(); err != nil {
		return err
	}
	defer g.closeAudio()

	g.buildScene()
	if err := g.bindEvents(); err != nil {
		return err
	}
	g.Scene.Start()
	g.Routines.Start(g.blink)
	g.Routines.Start(g.fadeHint)

	for !rl.WindowShouldClose() {
		g.Update(rl.GetFrameTime())
		g.Draw()
	}
	g.Routines.StopAll()
	return nil
}

func (g *Game) buildScene() {
	camObj := engine.NewGameObject("Main Camera")
	camObj.Transform.Position = rl.Vector3{Z: 10}
	cam := components.NewCamera()
	cam.IsMain = true
	camObj.AddComponent(cam)
	g.Scene.AddGameObject(camObj)

	blinkObj := engine.NewGameObject("Blinker")
	g.blinker = components.NewSpriteRenderer()
	g.blinker.Color = rl.RayWhite
	blinkObj.AddComponent(g.blinker)
	g.Scene.AddGameObject(blinkObj)

	g.sprites = engine.NewGameObject("Sprites")
	g.Scene.AddGameObject(g.sprites)

	canvasObj := engine.NewGameObject("Canvas")
	g.canvas = components.NewUICanvas()
	canvasObj.AddComponent(g.canvas)
	g.Scene.AddGameObject(canvasObj)

	panelObj := engine.NewGameObject("Panel")
	g.panel = components.NewRectTransform()
	g.panel.SetAnchorPreset(components.AnchorTopLeft)
	g.panel.AnchoredPosition = rl.Vector2{X: 10, Y: 10}
	g.panel.SizeDelta = rl.Vector2{X: 260, Y: 130}
	panelObj.AddComponent(g.panel)
	img := components.NewUIImage()
	img.Color = rl.NewColor(30, 30, 36, 220)
	panelObj.AddComponent(img)
	canvasObj.AddChild(panelObj)
	g.Scene.AddGameObject(panelObj)

	hintObj := engine.NewGameObject("Hint")
	hintRect := components.NewRectTransform()
	hintRect.SetAnchorPreset(components.AnchorBottomCenter)
	hintRect.AnchoredPosition = rl.Vector2{Y: -20}
	hintRect.SizeDelta = rl.Vector2{X: 400, Y: 30}
	hintObj.AddComponent(hintRect)
	g.hint = components.NewUIText("Click anywhere to spawn a sprite")
	g.hint.Alignment = components.TextAlignCenter
	hintObj.AddComponent(g.hint)
	canvasObj.AddChild(hintObj)
	g.Scene.AddGameObject(hintObj)
}

// fadeHint shows the hint for a few seconds, then fades it out.
func (g *Game) fadeHint(yield func(coroutine.Instruction) bool) {
	if !yield(g.Helper.GetWait(3)) {
		return
	}
	for i := 20; i >= 0; i-- {
		extensions.FadeAlpha(g.hint, float32(i)/20)
		if !yield(nil) {
			return
		}
	}
}

// blink fades the center sprite in and out forever.
func (g *Game) blink(yield func(coroutine.Instruction) bool) {
	for {
		for i := 10; i >= 0; i-- {
			extensions.FadeAlpha(g.blinker, float32(i)/10)
			if !yield(g.Helper.GetWait(0.05)) {
				return
			}
		}
		for i := 0; i <= 10; i++ {
			extensions.FadeAlpha(g.blinker, float32(i)/10)
			if !yield(g.Helper.GetWait(0.05)) {
				return
			}
		}
		if !yield(g.Helper.GetWait(0.5)) {
			return
		}
	}
}

func (g *Game) Update(deltaTime float32) {
	g.Scene.Update(deltaTime)
	g.Routines.Update(deltaTime)

	if rl.IsMouseButtonPressed(rl.MouseLeftButton) && !g.Helper.IsOverUI() {
		if pos, ok := g.Helper.ScreenPointToWorld(rl.GetMousePosition()); ok {
			g.spawn(pos)
		}
	}
}

func (g *Game) spawn(pos rl.Vector2) {
	if len(g.sprites.Children) >= maxSprites {
		g.clear()
	}
	color, err := extensions.RandomElement(g.rng, palette)
	if err != nil {
		g.log.Error("pick color", zap.Error(err))
		return
	}
	preset, err := extensions.RandomElement(g.rng, g.presets)
	if err != nil {
		g.log.Error("pick preset", zap.Error(err))
		return
	}

	obj := engine.NewGameObject(fmt.Sprintf("Sprite %d", len(g.sprites.Children)))
	placeAt(preset, pos, &obj.Transform)
	sprite := components.NewSpriteRenderer()
	sprite.Color = color
	obj.AddComponent(sprite)
	g.sprites.AddChild(obj)
	g.Scene.AddGameObject(obj)
	extensions.SetLayerRecursive(g.sprites, g.spriteLayer())

	g.events.Get(spawnedEvent).RaiseInt(len(g.sprites.Children))
}

func (g *Game) clear() {
	extensions.DestroyAllChildren(g.sprites)
	g.events.Get(clearedEvent).Raise()
}

func (g *Game) spriteLayer() int {
	if g.hidden {
		return hiddenLayer
	}
	return spriteLayer
}

func (g *Game) Draw() {
	rl.BeginDrawing()
	rl.ClearBackground(rl.Black)

	if cam := g.Helper.Camera(); cam != nil {
		rc := cam.GetRaylibCamera()
		rl.BeginMode3D(rc)
		g.blinker.Draw(rc)
		for _, child := range g.sprites.Children {
			if child.Layer == hiddenLayer {
				continue
			}
			if s := engine.GetComponent[*components.SpriteRenderer](child); s != nil {
				s.Draw(rc)
			}
		}
		rl.EndMode3D()
	}

	g.canvas.Draw(components.ScreenRect())
	g.drawPanel()
	rl.EndDrawing()
}

func (g *Game) drawPanel() {
	r := g.panel.GetScreenRect()
	gui.Label(rl.Rectangle{X: r.X + 10, Y: r.Y + 5, Width: 240, Height: 20},
		fmt.Sprintf("Pointer over UI: %v", g.Helper.IsOverUI()))
	gui.Label(rl.Rectangle{X: r.X + 10, Y: r.Y + 25, Width: 240, Height: 20},
		fmt.Sprintf("Sprites: %d  Waits cached: %d", len(g.sprites.Children), g.Helper.CachedWaits()))
	gui.Label(rl.Rectangle{X: r.X + 10, Y: r.Y + 45, Width: 240, Height: 20}, g.status)

	if gui.Button(rl.Rectangle{X: r.X + 10, Y: r.Y + 90, Width: 110, Height: 30}, "Clear") {
		g.clear()
	}
	if gui.Button(rl.Rectangle{X: r.X + 140, Y: r.Y + 90, Width: 110, Height: 30}, "Hide/Show") {
		g.hidden = !g.hidden
		extensions.SetLayerRecursive(g.sprites, g.spriteLayer())
	}
}

func (g *Game) setupAudio() error {
	if g.cfg.SoundBankPath == "" {
		return nil
	}
	g.mixer = audio.NewMixer(audio.DefaultSampleRate)
	device, err := audio.OpenDevice(g.mixer, 100*time.Millisecond)
	if err != nil {
		return err
	}
	g.device = device
	bank, err := audio.LoadBank(g.cfg.SoundBankPath, g.mixer, audio.LoadWAV, g.log)
	if err != nil {
		return err
	}
	g.bank = bank
	return nil
}

func (g *Game) closeAudio() {
	if g.bank != nil {
		g.bank.StopAll()
	}
	if g.device != nil {
		g.device.Close()
	}
}
