package viewer

import (
	"fmt"
	"log"
	"time"

	"sceneview/internal/camera"
	"sceneview/internal/config"
	"sceneview/internal/geometry"
	"sceneview/internal/graphics"
	"sceneview/internal/hud"
	"sceneview/internal/input"
	"sceneview/internal/profiling"
	"sceneview/internal/render"
	"sceneview/internal/scene"
	"sceneview/internal/shading"
	"sceneview/pkg/palette"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
)

// fontPixels sizes the glyph atlas backing the HUD.
const fontPixels = 24

// selectActions maps knob numbers 1..6 onto their input actions, in
// knob order.
var selectActions = [...]input.Action{
	input.ActionSelect1,
	input.ActionSelect2,
	input.ActionSelect3,
	input.ActionSelect4,
	input.ActionSelect5,
	input.ActionSelect6,
}

// App owns the viewer session: the GL device and backend, the scene
// registry, the camera, the shading knobs and the tick loop that binds
// them together.
type App struct {
	window *glfw.Window
	im     *input.InputManager

	device   *graphics.Device
	backend  *graphics.Backend
	font     *graphics.FontRenderer
	cam      *camera.Camera
	registry *scene.Registry
	params   *shading.Params
	frame    *render.Frame
	bank     *palette.Palette

	fpsLimiter *FPSLimiter
	lastTime   time.Time

	frames       int
	lastFPSCheck time.Time

	// Drag orbit state. firstDrag primes the cursor anchor on the first
	// sample after the button goes down, so a drag never starts with a
	// jump.
	lastMouseX float64
	lastMouseY float64
	firstDrag  bool
}

// New assembles a viewer onto the given window. The GL context must be
// current on the calling thread. The input manager keeps its GLFW
// callbacks; New only reads its per-frame state.
func New(window *glfw.Window, im *input.InputManager) (*App, error) {
	device, err := graphics.NewDevice(window)
	if err != nil {
		return nil, fmt.Errorf("init device: %w", err)
	}

	floorTex := graphics.FloorTexture(config.GetGroundTexturePath())
	backend, err := graphics.NewBackend(floorTex)
	if err != nil {
		return nil, fmt.Errorf("init backend: %w", err)
	}

	width, height := window.GetSize()

	atlas, err := graphics.BuildFontAtlas(fontPixels)
	if err != nil {
		return nil, fmt.Errorf("build font atlas: %w", err)
	}
	font, err := graphics.NewFontRenderer(atlas, width, height)
	if err != nil {
		return nil, fmt.Errorf("init font renderer: %w", err)
	}

	cam := camera.New()
	cam.SetAspect(float32(width) / float32(height))

	registry := scene.NewRegistry(device)
	params := shading.NewParams()

	frame := render.NewFrame(device, backend, cam, registry, params)
	frame.AddOverlay(hud.New(font, cam, registry, params))

	a := &App{
		window:       window,
		im:           im,
		device:       device,
		backend:      backend,
		font:         font,
		cam:          cam,
		registry:     registry,
		params:       params,
		frame:        frame,
		bank:         palette.Default(),
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
		firstDrag:    true,
	}

	window.SetFramebufferSizeCallback(func(w *glfw.Window, fbWidth, fbHeight int) {
		a.onResize(fbWidth, fbHeight)
	})

	if err := a.seed(); err != nil {
		a.Dispose()
		return nil, fmt.Errorf("seed scene: %w", err)
	}

	return a, nil
}

// UsePalette swaps the color bank new spheres draw from.
func (a *App) UsePalette(p *palette.Palette) {
	if p != nil {
		a.bank = p
	}
}

// Run ticks until the window closes.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	fps := float32(1)
	if dt > 0 {
		fps = float32(1.0 / dt)
	}
	a.cam.SetFPS(fps)
	a.params.SetFPS(fps)

	func() {
		defer profiling.Track("viewer.Update")()
		a.update()
	}()

	a.frame.Render()

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		fmt.Println("FPS: ", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	// Check if frame took too long (> 16ms)
	processingDuration := time.Since(startTick)
	if processingDuration > 16*time.Millisecond {
		log.Printf("Slow frame: %v. Top tasks: %s", processingDuration, profiling.TopN(5))
	}

	a.im.PostUpdate() // Clear "JustPressed" flags

	a.fpsLimiter.Wait()
}

func (a *App) update() {
	a.cam.Decay()

	events := a.collectEvents()
	events = append(events, a.dragEvents()...)
	input.Dispatch(events, a.cam, a.params)

	a.handleSceneActions()
}

// collectEvents translates the frame's action states into camera and
// parameter events. Held keys re-emit every frame; the velocity ramps
// and per-frame rates downstream turn that into smooth motion.
func (a *App) collectEvents() []input.Event {
	events := make([]input.Event, 0, 8)

	if a.im.IsActive(input.ActionPanForward) {
		events = append(events, input.Event{Kind: input.KindPanForward, Value: 1})
	}
	if a.im.IsActive(input.ActionPanBackward) {
		events = append(events, input.Event{Kind: input.KindPanForward, Value: -1})
	}
	if a.im.IsActive(input.ActionPanLeft) {
		events = append(events, input.Event{Kind: input.KindPanLateral, Value: -1})
	}
	if a.im.IsActive(input.ActionPanRight) {
		events = append(events, input.Event{Kind: input.KindPanLateral, Value: 1})
	}
	if a.im.IsActive(input.ActionLookLeft) {
		events = append(events, input.Event{Kind: input.KindOrbitLook, Value: 1})
	}
	if a.im.IsActive(input.ActionLookRight) {
		events = append(events, input.Event{Kind: input.KindOrbitLook, Value: -1})
	}

	for i, action := range selectActions {
		if a.im.JustPressed(action) {
			events = append(events, input.Event{Kind: input.KindSelectParameter, Index: i + 1})
		}
	}
	if a.im.IsActive(input.ActionAdjustUp) {
		events = append(events, input.Event{Kind: input.KindAdjustParameter, Value: 1})
	}
	if a.im.IsActive(input.ActionAdjustDown) {
		events = append(events, input.Event{Kind: input.KindAdjustParameter, Value: -1})
	}

	return events
}

// dragEvents turns cursor movement while the drag button is held into
// orbit events. Screen-right drags swing the eye clockwise, screen-up
// drags raise it.
func (a *App) dragEvents() []input.Event {
	if !a.im.IsActive(input.ActionDragOrbit) {
		a.firstDrag = true
		return nil
	}

	x, y := a.window.GetCursorPos()
	if a.firstDrag {
		a.lastMouseX, a.lastMouseY = x, y
		a.firstDrag = false
		return nil
	}

	dx := x - a.lastMouseX
	dy := y - a.lastMouseY
	a.lastMouseX, a.lastMouseY = x, y
	if dx == 0 && dy == 0 {
		return nil
	}

	sens := float32(config.GetMouseSensitivity())
	events := make([]input.Event, 0, 2)
	if dx != 0 {
		events = append(events, input.Event{Kind: input.KindOrbitHorizontal, Value: -float32(dx) * sens})
	}
	if dy != 0 {
		events = append(events, input.Event{Kind: input.KindOrbitVertical, Value: -float32(dy) * sens})
	}
	return events
}

func (a *App) handleSceneActions() {
	if a.im.JustPressed(input.ActionInsertSphere) {
		at := a.cam.At()
		// New spheres take the channel knob's palette color and rest on
		// the ground plane regardless of where the camera is looking.
		color := a.bank.Color(a.params.Channel())
		if err := a.insertSphereAt(mgl32.Vec3{at.X(), 0, at.Z()}, color); err != nil {
			log.Printf("insert sphere: %v", err)
		}
	}
	if a.im.JustPressed(input.ActionRemoveLast) {
		if n := a.registry.Len(); n > 0 {
			if err := a.registry.Remove(n - 1); err != nil {
				log.Printf("remove object: %v", err)
			}
		}
	}
	if a.im.JustPressed(input.ActionClearScene) {
		a.registry.Clear()
	}
	if a.im.JustPressed(input.ActionRegenGround) {
		if err := a.regenerateGround(); err != nil {
			log.Printf("regenerate ground: %v", err)
		}
	}
	if a.im.JustPressed(input.ActionToggleHUD) {
		config.SetShowHUD(!config.GetShowHUD())
	}
	if a.im.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
}

func (a *App) insertSphereAt(pos mgl32.Vec3, color mgl32.Vec4) error {
	meridians, parallels := config.GetSphereDetail()
	mesh, err := geometry.GenerateSphere(meridians, parallels, float32(config.GetSphereRadius()), color)
	if err != nil {
		return err
	}
	_, err = a.registry.InsertAt(mesh, color, pos)
	return err
}

func (a *App) regenerateGround() error {
	extent := float32(config.GetGroundExtent())
	mesh, err := geometry.GenerateQuad(extent, extent, mgl32.Vec3{0, 1, 0}, mgl32.Vec3{1, 0, 0})
	if err != nil {
		return err
	}
	return a.registry.SetGround(mesh)
}

// seed builds the startup scene: the ground and a short row of palette
// spheres so the lighting knobs have something to act on.
func (a *App) seed() error {
	if err := a.regenerateGround(); err != nil {
		return err
	}
	starters := []struct {
		pos   mgl32.Vec3
		color int
	}{
		{mgl32.Vec3{0, 0, 0}, a.bank.Index("sky")},
		{mgl32.Vec3{3, 0, 3}, a.bank.Index("coral")},
		{mgl32.Vec3{-4, 0, 2}, a.bank.Index("lime")},
	}
	for _, s := range starters {
		if err := a.insertSphereAt(s.pos, a.bank.Color(s.color)); err != nil {
			return err
		}
	}
	return nil
}

func (a *App) onResize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	a.frame.SetViewport(width, height)
	a.cam.SetAspect(float32(width) / float32(height))
	a.font.SetViewport(width, height)
	// Repaint during live resizes instead of showing a stale frame.
	a.frame.Render()
}

// Dispose tears the session down in reverse construction order. The
// HUD overlay owns the font renderer and releases it through the
// frame.
func (a *App) Dispose() {
	if a.frame != nil {
		a.frame.Dispose()
	}
	if a.registry != nil {
		a.registry.Dispose()
	}
	if a.backend != nil {
		a.backend.Dispose()
	}
	if a.device != nil {
		a.device.Dispose()
	}
}
