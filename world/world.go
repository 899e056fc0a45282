// Package world owns the simulated population: the ECS world, the physics
// space the organisms live in, and the per-tick update fan-out.
package world

import (
	"log/slog"
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/evotales/components"
	"github.com/pthm-cable/evotales/config"
	"github.com/pthm-cable/evotales/physics"
	"github.com/pthm-cable/evotales/systems"
)

// PhaseTimer receives phase boundaries during Update.
// telemetry.PerfCollector satisfies it.
type PhaseTimer interface {
	StartPhase(name string)
}

// Hooks are optional callbacks for population events.
type Hooks struct {
	OnSeed       func(x, y float64) // a seed was placed at (x, y)
	OnSeedFailed func(x, y float64) // a seed drop at (x, y) was rejected
	OnStageUp    func(level int)    // a plant reached a new growth level
}

// World is the population manager.
type World struct {
	plantCfg config.PlantConfig
	herbCfg  config.HerbivoreConfig

	ecs     *ecs.World
	rng     *rand.Rand
	space   *physics.Space
	placer  *systems.Placer
	sprites systems.SpriteSet

	plantMapper *ecs.Map5[
		components.Position,
		components.Plant,
		components.Growth,
		components.Reproduction,
		components.Body,
	]
	plantFilter *ecs.Filter5[
		components.Position,
		components.Plant,
		components.Growth,
		components.Reproduction,
		components.Body,
	]
	herbMapper *ecs.Map5[
		components.Position,
		components.Herbivore,
		components.Wander,
		components.Heading,
		components.Body,
	]
	herbFilter *ecs.Filter5[
		components.Position,
		components.Herbivore,
		components.Wander,
		components.Heading,
		components.Body,
	]

	posMap     *ecs.Map1[components.Position]
	growthMap  *ecs.Map1[components.Growth]
	reproMap   *ecs.Map1[components.Reproduction]
	headingMap *ecs.Map1[components.Heading]

	// Full-grown plants collected during the growth pass
	breeders []ecs.Entity

	hooks Hooks
	timer PhaseTimer

	numPlants     int
	numHerbivores int
	tick          int64
}

// New creates an empty world sized by cfg.World.
// sprites decides which growth stages can be shown; nil means none.
func New(cfg *config.Config, sprites systems.SpriteSet, rng *rand.Rand) *World {
	world := ecs.NewWorld()
	space := physics.NewSpace(physics.Bounds{Width: cfg.World.Width, Height: cfg.World.Height}, cfg.Physics)

	return &World{
		plantCfg: cfg.Plant,
		herbCfg:  cfg.Herbivore,
		ecs:      world,
		rng:      rng,
		space:    space,
		placer:   systems.NewPlacer(space),
		sprites:  sprites,
		plantMapper: ecs.NewMap5[
			components.Position,
			components.Plant,
			components.Growth,
			components.Reproduction,
			components.Body,
		](world),
		plantFilter: ecs.NewFilter5[
			components.Position,
			components.Plant,
			components.Growth,
			components.Reproduction,
			components.Body,
		](world),
		herbMapper: ecs.NewMap5[
			components.Position,
			components.Herbivore,
			components.Wander,
			components.Heading,
			components.Body,
		](world),
		herbFilter: ecs.NewFilter5[
			components.Position,
			components.Herbivore,
			components.Wander,
			components.Heading,
			components.Body,
		](world),
		posMap:     ecs.NewMap1[components.Position](world),
		growthMap:  ecs.NewMap1[components.Growth](world),
		reproMap:   ecs.NewMap1[components.Reproduction](world),
		headingMap: ecs.NewMap1[components.Heading](world),
	}
}

// SetHooks installs population event callbacks.
func (w *World) SetHooks(h Hooks) {
	w.hooks = h
}

// SetPhaseTimer installs a receiver for phase boundaries. Nil disables timing.
func (w *World) SetPhaseTimer(t PhaseTimer) {
	w.timer = t
}

// Space returns the physics space.
func (w *World) Space() *physics.Space {
	return w.space
}

// Plants returns the number of live plants.
func (w *World) Plants() int {
	return w.numPlants
}

// Herbivores returns the number of live herbivores.
func (w *World) Herbivores() int {
	return w.numHerbivores
}

// Tick returns the number of completed updates.
func (w *World) Tick() int64 {
	return w.tick
}

func (w *World) plantRule() systems.PlacementRule {
	return systems.PlacementRule{
		Species:    components.SpeciesPlant,
		MinSpacing: w.plantCfg.MinSpacing,
		Padding:    w.plantCfg.BoundsPadding,
	}
}

// TryPlacePlant places a plant at the given growth level if (x, y) is valid.
func (w *World) TryPlacePlant(x, y float64, level int) bool {
	return w.placer.TryPlace(x, y, w.plantRule(), func(x, y float64) {
		w.spawnPlant(x, y, level)
	})
}

// DropSeed attempts to place a level 1 plant at a random offset from (x, y).
func (w *World) DropSeed(x, y float64) bool {
	dx, dy := systems.SeedOffset(w.rng, w.plantCfg.SeedMinDistance, w.plantCfg.SeedRange)
	sx, sy := x+dx, y+dy

	if w.TryPlacePlant(sx, sy, 1) {
		if w.hooks.OnSeed != nil {
			w.hooks.OnSeed(sx, sy)
		}
		return true
	}
	if w.hooks.OnSeedFailed != nil {
		w.hooks.OnSeedFailed(sx, sy)
	}
	return false
}

// SpawnHerbivore adds a herbivore at (x, y) with a random heading.
// Herbivores have no spacing constraint.
func (w *World) SpawnHerbivore(x, y float64) bool {
	rule := systems.PlacementRule{Species: components.SpeciesHerbivore, Padding: w.herbCfg.BoundsPadding}
	return w.placer.TryPlace(x, y, rule, w.spawnHerbivore)
}

// spawnPlant creates the plant entity and its static body.
// Must not be called while a query is open.
func (w *World) spawnPlant(x, y float64, level int) {
	owner := &physics.Owner{Species: components.SpeciesPlant}
	pos := components.Position{X: x, Y: y}
	growth := systems.NewGrowth(w.plantCfg, level, w.sprites, w.rng)
	repro := systems.NewReproductionState(w.plantCfg, w.rng)
	body := components.Body{Handle: w.space.AddStatic(x, y, w.plantCfg.BodyRadius, owner)}

	owner.Entity = w.plantMapper.NewEntity(&pos, &components.Plant{}, &growth, &repro, &body)
	w.numPlants++
}

// spawnHerbivore creates the herbivore entity and its dynamic body.
func (w *World) spawnHerbivore(x, y float64) {
	owner := &physics.Owner{Species: components.SpeciesHerbivore}
	pos := components.Position{X: x, Y: y}
	wander := systems.NewWander(w.herbCfg, w.rng)
	heading := components.Heading{Angle: wander.Angle}
	body := components.Body{Handle: w.space.AddDynamic(x, y, w.herbCfg.BodyRadius, w.herbCfg.Mass, owner)}

	owner.Entity = w.herbMapper.NewEntity(&pos, &components.Herbivore{}, &wander, &heading, &body)
	w.numHerbivores++
}

// SeedInitialPopulation places the configured starting plants and herbivores.
// Plant placement stops after initial_count * seed_attempt_factor attempts,
// so an overcrowded request yields a partial population.
func (w *World) SeedInitialPopulation() {
	cfg := w.plantCfg
	maxAttempts := cfg.InitialCount * max(cfg.SeedAttemptFactor, 1)

	placed, attempts := 0, 0
	for placed < cfg.InitialCount && attempts < maxAttempts {
		attempts++
		x := systems.Uniform(w.rng, cfg.BoundsPadding, w.space.Bounds().Width-cfg.BoundsPadding)
		y := systems.Uniform(w.rng, cfg.BoundsPadding, w.space.Bounds().Height-cfg.BoundsPadding)
		level := 1 + w.rng.Intn(cfg.MaxGrowthLevel)
		if w.TryPlacePlant(x, y, level) {
			placed++
		}
	}
	if placed < cfg.InitialCount {
		slog.Info("partial initial plant population",
			"requested", cfg.InitialCount,
			"placed", placed,
			"attempts", attempts,
		)
	}

	hcfg := w.herbCfg
	for i := 0; i < hcfg.InitialCount; i++ {
		x := systems.Uniform(w.rng, hcfg.BoundsPadding, w.space.Bounds().Width-hcfg.BoundsPadding)
		y := systems.Uniform(w.rng, hcfg.BoundsPadding, w.space.Bounds().Height-hcfg.BoundsPadding)
		w.SpawnHerbivore(x, y)
	}

	slog.Info("population seeded", "plants", w.numPlants, "herbivores", w.numHerbivores)
}

func (w *World) startPhase(name string) {
	if w.timer != nil {
		w.timer.StartPhase(name)
	}
}

// Update advances every organism by dt seconds, then steps physics once.
// Growing plants advance their growth stage; full-grown plants advance
// reproduction instead. Seeds are placed after the plant query closes.
func (w *World) Update(dt float64) {
	if dt < 0 {
		return
	}

	w.startPhase(systems.PhaseGrowth)
	w.updateGrowth(dt)

	w.startPhase(systems.PhaseReproduction)
	w.updateReproduction(dt)

	w.startPhase(systems.PhaseMovement)
	w.updateMovement(dt)

	w.startPhase(systems.PhasePhysics)
	w.space.Step(dt)
	w.syncPositions()

	w.tick++
}

// updateGrowth advances growing plants and collects full-grown ones.
func (w *World) updateGrowth(dt float64) {
	w.breeders = w.breeders[:0]
	maxLevel := w.plantCfg.MaxGrowthLevel

	query := w.plantFilter.Query()
	for query.Next() {
		_, _, growth, _, _ := query.Get()

		if growth.FullGrown(maxLevel) {
			w.breeders = append(w.breeders, query.Entity())
			continue
		}
		if systems.AdvanceGrowth(growth, dt, w.plantCfg, w.sprites, w.rng) && w.hooks.OnStageUp != nil {
			w.hooks.OnStageUp(growth.Level)
		}
	}
}

// updateReproduction advances the collected full-grown plants.
// Seed drops create entities, so component pointers are not held across them.
func (w *World) updateReproduction(dt float64) {
	for _, e := range w.breeders {
		if !w.ecs.Alive(e) {
			continue
		}
		pos := *w.posMap.Get(e)
		repro := *w.reproMap.Get(e)

		systems.AdvanceReproduction(&repro, dt, w.plantCfg, w.rng, func() bool {
			return w.DropSeed(pos.X, pos.Y)
		})

		*w.reproMap.Get(e) = repro
	}
}

// updateMovement steers herbivores and writes their velocity into the bodies.
func (w *World) updateMovement(dt float64) {
	query := w.herbFilter.Query()
	for query.Next() {
		_, _, wander, heading, body := query.Get()

		vx, vy, angle := systems.AdvanceWander(wander, dt, w.herbCfg, w.rng)
		physics.SetMotion(body.Handle, vx, vy, angle)
		heading.Angle = angle
	}
}

// syncPositions mirrors dynamic body positions into Position.
func (w *World) syncPositions() {
	query := w.herbFilter.Query()
	for query.Next() {
		pos, _, _, _, body := query.Get()
		p := body.Handle.Position()
		pos.X, pos.Y = p.X, p.Y
	}
}
