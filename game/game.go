// Package game glues the simulation world to the window: it steps the world,
// routes device input through the mode stack and draws the frame.
package game

import (
	"log/slog"
	"math/rand"

	"github.com/pthm-cable/evotales/camera"
	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/input"
	"github.com/pthm-cable/evotales/renderer"
	"github.com/pthm-cable/evotales/renderer/atlas"
	"github.com/pthm-cable/evotales/systems"
	"github.com/pthm-cable/evotales/telemetry"
	"github.com/pthm-cable/evotales/ui"
	"github.com/pthm-cable/evotales/world"
)

// Options configures game behavior.
type Options struct {
	Seed           int64
	LogStats       bool
	StatsWindowSec float64
	OutputDir      string
	Headless       bool
	StepsPerUpdate int // Simulation ticks per Update call
}

// Game holds the complete game state.
type Game struct {
	cfg   *config.Config
	world *world.World
	rng   *rand.Rand
	atlas *atlas.Atlas

	// Camera and input
	camera *camera.Camera
	input  *input.Stack

	// Rendering (graphics mode only)
	sprites          *renderer.SpriteRenderer
	worldRenderer    *renderer.WorldRenderer
	overlayRenderer  *renderer.OverlayRenderer
	particleRenderer *renderer.ParticleRenderer
	particles        *systems.ParticleSystem
	overlays         *ui.OverlayRegistry
	hud              *ui.HUD
	popPanel         *ui.PopulationPanel
	perfPanel        *ui.PerfPanel
	controlsPanel    *ui.ControlsPanel
	inspector        *ui.Inspector
	registry         *systems.SystemRegistry

	// Telemetry
	collector     *telemetry.Collector
	perfCollector *telemetry.PerfCollector
	outputManager *telemetry.OutputManager
	lastStats     *telemetry.WindowStats
	logStats      bool

	// State
	headless       bool
	paused         bool
	speed          int
	stepsPerUpdate int
	dragBlocked    bool    // Left drag began on a UI panel
	pressX, pressY float32 // Where the left button went down

	// Window dimensions
	screenWidth, screenHeight float32
}

// NewGame creates a game with the given options. In graphics mode a raylib
// window must already be open.
func NewGame(cfg *config.Config, opts Options) (*Game, error) {
	a, err := atlas.New(cfg.Sprites)
	if err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(opts.Seed))

	statsWindow := opts.StatsWindowSec
	if statsWindow <= 0 {
		statsWindow = cfg.Telemetry.StatsWindow
	}

	g := &Game{
		cfg:            cfg,
		world:          world.New(cfg, a, rng),
		rng:            rng,
		atlas:          a,
		registry:       systems.NewSystemRegistry(),
		collector:      telemetry.NewCollector(statsWindow),
		perfCollector:  telemetry.NewPerfCollector(cfg.Telemetry.PerfCollectorWindow),
		logStats:       opts.LogStats,
		headless:       opts.Headless,
		speed:          1,
		stepsPerUpdate: max(opts.StepsPerUpdate, 1),
		screenWidth:    float32(cfg.Screen.Width),
		screenHeight:   float32(cfg.Screen.Height),
	}

	g.outputManager, err = telemetry.NewOutputManager(opts.OutputDir)
	if err != nil {
		return nil, err
	}
	if err := g.outputManager.WriteConfig(cfg); err != nil {
		slog.Error("failed to write config snapshot", "error", err)
	}

	g.world.SetPhaseTimer(g.perfCollector)
	g.setupTelemetryHooks()
	g.world.SeedInitialPopulation()

	g.camera = camera.New(float64(g.screenWidth), float64(g.screenHeight), cfg.Camera)
	g.camera.Setup(cfg.World.Width, cfg.World.Height)
	g.input = g.newInputStack()

	if !g.headless {
		g.initRendering()
	}

	slog.Info("world seeded",
		"run_id", g.outputManager.RunID(),
		"seed", opts.Seed,
		"plants", g.world.Plants(),
		"herbivores", g.world.Herbivores(),
	)
	return g, nil
}

// newInputStack builds the camera mode with game bindings layered on top.
func (g *Game) newInputStack() *input.Stack {
	stack := input.NewStack(input.NewCameraMode(g.camera))
	stack.Push(input.NewBindingsMode("game").
		Bind(input.KeySpace, func() { g.paused = !g.paused }).
		Bind(input.KeyEqual, func() { g.speed = min(g.speed+1, ui.MaxSpeed) }).
		Bind(input.KeyMinus, func() { g.speed = max(g.speed-1, 1) }).
		Bind(input.KeyR, g.camera.Reset))
	return stack
}

// World returns the simulation world.
func (g *Game) World() *world.World {
	return g.world
}

// Camera returns the viewport camera.
func (g *Game) Camera() *camera.Camera {
	return g.camera
}

// Input returns the input mode stack.
func (g *Game) Input() *input.Stack {
	return g.input
}

// Tick returns the current simulation tick.
func (g *Game) Tick() int64 {
	return g.world.Tick()
}

// Paused reports whether the simulation is paused.
func (g *Game) Paused() bool {
	return g.paused
}

// Speed returns the simulation speed multiplier.
func (g *Game) Speed() int {
	return g.speed
}

// LastStats returns the most recent telemetry window, or nil before the first flush.
func (g *Game) LastStats() *telemetry.WindowStats {
	return g.lastStats
}

// Unload releases resources.
func (g *Game) Unload() {
	if g.sprites != nil {
		g.sprites.Unload()
	}
	if err := g.outputManager.Close(); err != nil {
		slog.Error("failed to close output", "error", err)
	}
}
