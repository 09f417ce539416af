// Package gui is the windowed viewer: a raylib window drawing the
// central mass and its bodies in the XY plane, with an optional
// sonification channel.
//
// Two modes exist. Orbit mode steps a float64 field built from a
// preset. Swarm mode steps a float32 particle buffer through the
// compute package, which is how populations beyond a few thousand
// bodies stay at 60 fps.
package gui

import (
	"math"
	"math/rand"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/johnxnguyen/newton/internal/audio"
	"github.com/johnxnguyen/newton/internal/body"
	"github.com/johnxnguyen/newton/internal/compute"
	"github.com/johnxnguyen/newton/internal/config"
	"github.com/johnxnguyen/newton/internal/experiment"
	"github.com/johnxnguyen/newton/internal/field"
)

const (
	screenW = 1280
	screenH = 720

	// World radius the initial population is scaled into, in camera
	// units. Presets span wildly different length scales; the viewer
	// normalizes them all to the same frame.
	viewRadius = 220.0

	trailLen   = 240
	historyLen = 200
)

var (
	colBg      = rl.NewColor(10, 10, 10, 255)
	colAccent  = rl.NewColor(180, 180, 180, 255)
	colSelect  = rl.NewColor(255, 255, 255, 255)
	colText    = rl.NewColor(140, 140, 140, 255)
	colTextDim = rl.NewColor(60, 60, 60, 255)
	colSun     = rl.NewColor(255, 240, 200, 255)
)

type mode int

const (
	modeMenu mode = iota
	modeOrbit
	modeSwarm
)

type App struct {
	mode    mode
	running bool
	quit    bool

	// Orbit mode.
	cfg    *config.Config
	field  *field.Field
	trails map[uint32][]rl.Vector3
	scale  float32

	// Swarm mode.
	swarm    *compute.Swarm
	stepper  compute.Stepper
	swarmN   int
	swarmCfg *config.Config
	swarmDt  float32

	// Menu.
	presets  []string
	selected int

	camera       rl.Camera3D
	camPosTarget rl.Vector3
	camTgtTarget rl.Vector3

	showTrails   bool
	stepsPerTick int
	telemetry    []float64
	stars        []rl.Vector3

	font     rl.Font
	sonifier *audio.Sonifier
	err      error
}

func initWindow() {
	rl.InitWindow(screenW, screenH, "newton")
	rl.SetTargetFPS(60)
	rl.SetExitKey(0)
}

func loadFont() rl.Font {
	font := rl.LoadFontEx("/usr/share/fonts/liberation/LiberationMono-Regular.ttf", 32, nil, 0)
	rl.SetTextureFilter(font.Texture, rl.FilterBilinear)
	return font
}

func defaultCamera() rl.Camera3D {
	return rl.NewCamera3D(
		rl.NewVector3(0, 0, 480),
		rl.NewVector3(0, 0, 0),
		rl.NewVector3(0, 1, 0),
		45.0,
		rl.CameraPerspective,
	)
}

func newApp(sound bool) *App {
	a := &App{
		mode:         modeMenu,
		presets:      config.ListPresets(),
		camera:       defaultCamera(),
		showTrails:   true,
		stepsPerTick: 1,
		trails:       make(map[uint32][]rl.Vector3),
		telemetry:    make([]float64, 0, historyLen),
		font:         loadFont(),
	}
	a.camPosTarget = a.camera.Position
	a.camTgtTarget = a.camera.Target

	// Background stars, well behind the plane of motion.
	numStars := 1500
	a.stars = make([]rl.Vector3, numStars)
	rng := rand.New(rand.NewSource(7))
	for i := range a.stars {
		a.stars[i] = rl.NewVector3(
			float32((rng.Float64()-0.5)*2400),
			float32((rng.Float64()-0.5)*2400),
			float32(-800-rng.Float64()*800),
		)
	}

	if sound {
		a.sonifier = audio.NewSonifier()
		if err := a.sonifier.Start(); err != nil {
			// No audio device; the viewer runs silent.
			a.sonifier = nil
		}
	}
	return a
}

// RunInteractive opens the window on the preset menu and blocks until
// the window closes.
func RunInteractive(sound bool) {
	initWindow()
	defer rl.CloseWindow()
	a := newApp(sound)
	a.loop()
}

// Run opens the window straight into a running simulation: swarm mode
// when swarmN > 0, otherwise orbit mode on the given configuration.
func Run(cfg *config.Config, swarmN int, sound bool) {
	initWindow()
	defer rl.CloseWindow()
	a := newApp(sound)
	if swarmN > 0 {
		a.loadSwarm(cfg, swarmN)
	} else {
		a.loadOrbit(cfg)
	}
	a.loop()
}

func (a *App) loop() {
	for !a.quit && !rl.WindowShouldClose() {
		a.update()
		a.draw()
	}
	if a.sonifier != nil {
		a.sonifier.Stop()
	}
	if a.stepper != nil {
		a.stepper.Cleanup()
	}
}

// viewScale maps the population's largest starting radius to
// viewRadius camera units.
func viewScale(cfg *config.Config) float32 {
	ref := cfg.Distribute.MaxDist
	for _, b := range cfg.Bodies {
		if r := math.Hypot(b.X, b.Y); r > ref {
			ref = r
		}
	}
	if ref <= 0 {
		ref = 1
	}
	return float32(viewRadius / ref)
}

func (a *App) loadOrbit(cfg *config.Config) {
	f, err := experiment.New(cfg).BuildField()
	if err != nil {
		a.err = err
		a.mode = modeMenu
		return
	}
	a.cfg = cfg
	a.field = f
	a.scale = viewScale(cfg)
	a.trails = make(map[uint32][]rl.Vector3)
	a.telemetry = a.telemetry[:0]
	a.stepsPerTick = 1
	a.mode = modeOrbit
	a.running = true
	a.err = nil
	a.camera = defaultCamera()
	a.camPosTarget = a.camera.Position
	a.camTgtTarget = a.camera.Target
}

func (a *App) loadSwarm(cfg *config.Config, n int) {
	d := cfg.Distribute
	if d.Count == 0 {
		d = config.DistributeConfig{MinDist: 100, MaxDist: 2000}
	}
	swarm, err := compute.RingSwarm(uint32(n), cfg.G, cfg.SolarMass, d.MinDist, d.MaxDist, d.DY, cfg.Seed)
	if err != nil {
		a.err = err
		a.mode = modeMenu
		return
	}

	params := compute.Params{
		Mu:      float32(cfg.G * cfg.SolarMass),
		MinDist: float32(cfg.MinDist),
		MaxDist: float32(cfg.MaxDist),
	}
	if a.stepper != nil {
		a.stepper.Cleanup()
	}

	a.swarm = swarm
	a.stepper = compute.AutoSelect(params, swarm)
	a.swarmN = n
	a.swarmCfg = cfg
	a.swarmDt = float32(cfg.Dt)
	a.scale = float32(viewRadius / d.MaxDist)
	a.telemetry = a.telemetry[:0]
	a.mode = modeSwarm
	a.running = true
	a.err = nil
	a.camera = defaultCamera()
	a.camPosTarget = a.camera.Position
	a.camTgtTarget = a.camera.Target
}

func (a *App) update() {
	if rl.IsKeyPressed(rl.KeyQ) {
		a.quit = true
		return
	}

	if a.mode == modeMenu {
		a.updateMenu()
		return
	}

	if rl.IsKeyPressed(rl.KeyEscape) {
		a.mode = modeMenu
		a.running = false
		return
	}
	if rl.IsKeyPressed(rl.KeySpace) {
		a.running = !a.running
	}
	if rl.IsKeyPressed(rl.KeyT) {
		a.showTrails = !a.showTrails
		if !a.showTrails {
			a.trails = make(map[uint32][]rl.Vector3)
		}
	}
	if rl.IsKeyPressed(rl.KeyR) {
		a.reset()
	}
	if rl.IsKeyPressed(rl.KeyEqual) && a.stepsPerTick < 1024 {
		a.stepsPerTick *= 2
	}
	if rl.IsKeyPressed(rl.KeyMinus) && a.stepsPerTick > 1 {
		a.stepsPerTick /= 2
	}

	a.updateCamera()

	if !a.running {
		return
	}
	switch a.mode {
	case modeOrbit:
		a.stepOrbit()
	case modeSwarm:
		a.stepSwarm()
	}
}

func (a *App) updateMenu() {
	if rl.IsKeyPressed(rl.KeyDown) || rl.IsKeyPressed(rl.KeyJ) {
		a.selected++
	}
	if rl.IsKeyPressed(rl.KeyUp) || rl.IsKeyPressed(rl.KeyK) {
		a.selected--
	}
	if a.selected >= len(a.presets) {
		a.selected = 0
	}
	if a.selected < 0 {
		a.selected = len(a.presets) - 1
	}

	if rl.IsKeyPressed(rl.KeyEnter) || rl.IsKeyPressed(rl.KeySpace) {
		cfg := config.GetPreset(a.presets[a.selected])
		if cfg.Distribute.Count >= 2048 {
			a.loadSwarm(cfg, int(cfg.Distribute.Count))
		} else {
			a.loadOrbit(cfg)
		}
	}
}

func (a *App) updateCamera() {
	if rl.IsKeyDown(rl.KeyW) {
		a.camPosTarget.Y += 2
		a.camTgtTarget.Y += 2
	}
	if rl.IsKeyDown(rl.KeyS) {
		a.camPosTarget.Y -= 2
		a.camTgtTarget.Y -= 2
	}
	if rl.IsKeyDown(rl.KeyA) {
		a.camPosTarget.X -= 2
		a.camTgtTarget.X -= 2
	}
	if rl.IsKeyDown(rl.KeyD) {
		a.camPosTarget.X += 2
		a.camTgtTarget.X += 2
	}

	if rl.IsMouseButtonDown(rl.MouseRightButton) {
		delta := rl.GetMouseDelta()
		a.camPosTarget.X -= delta.X * 0.5
		a.camPosTarget.Y += delta.Y * 0.5
		a.camTgtTarget.X -= delta.X * 0.5
		a.camTgtTarget.Y += delta.Y * 0.5
	}

	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		zoom := wheel * 25
		diff := rl.Vector3Subtract(a.camTgtTarget, a.camPosTarget)
		dist := rl.Vector3Length(diff)
		if dist-zoom > 20 || zoom < 0 {
			dir := rl.Vector3Normalize(diff)
			a.camPosTarget = rl.Vector3Add(a.camPosTarget, rl.Vector3Scale(dir, zoom))
		}
	}

	// Inertia.
	lerp := float32(0.12)
	a.camera.Position = rl.Vector3Lerp(a.camera.Position, a.camPosTarget, lerp)
	a.camera.Target = rl.Vector3Lerp(a.camera.Target, a.camTgtTarget, lerp)
}

func (a *App) stepOrbit() {
	for i := 0; i < a.stepsPerTick; i++ {
		a.field.Step()
	}
	a.recordOrbit()

	if a.sonifier != nil {
		a.sonifier.SetEnergy(a.field.KineticEnergy())
	}
}

func (a *App) stepSwarm() {
	for i := 0; i < a.stepsPerTick; i++ {
		a.stepper.Step(a.swarm, a.swarmDt)
	}

	ke := a.swarmKinetic()
	a.pushTelemetry(ke)
	if a.sonifier != nil {
		a.sonifier.SetEnergy(ke)
	}
}

// swarmKinetic samples at most 4096 particles; the readout drives the
// telemetry strip and the pad filter, not physics.
func (a *App) swarmKinetic() float64 {
	stride := 1
	if a.swarm.N > 4096 {
		stride = a.swarm.N / 4096
	}
	var ke float64
	for i := 0; i < a.swarm.N; i += stride {
		vx, vy := a.swarm.Vel(i)
		ke += 0.5 * float64(vx*vx+vy*vy)
	}
	return ke * float64(stride)
}

func (a *App) recordOrbit() {
	if a.showTrails {
		a.field.Each(func(b body.Body) {
			p := rl.NewVector3(float32(b.Pos.X)*a.scale, float32(b.Pos.Y)*a.scale, 0)
			trail := append(a.trails[b.ID], p)
			if len(trail) > trailLen {
				trail = trail[1:]
			}
			a.trails[b.ID] = trail
		})
	}
	a.pushTelemetry(a.field.TotalEnergy())
}

func (a *App) pushTelemetry(v float64) {
	a.telemetry = append(a.telemetry, v)
	if len(a.telemetry) > historyLen {
		a.telemetry = a.telemetry[1:]
	}
}

func (a *App) reset() {
	switch a.mode {
	case modeOrbit:
		a.loadOrbit(a.cfg)
	case modeSwarm:
		a.loadSwarm(a.swarmCfg, a.swarmN)
	}
}
