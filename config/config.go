// Package config provides configuration loading and access for the simulation.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Config holds all simulation configuration parameters.
// It is loaded once at startup and never mutated afterwards; subsystems
// receive the section they need by value.
type Config struct {
	Screen    ScreenConfig    `yaml:"screen"`
	World     WorldConfig     `yaml:"world"`
	Physics   PhysicsConfig   `yaml:"physics"`
	Plant     PlantConfig     `yaml:"plant"`
	Herbivore HerbivoreConfig `yaml:"herbivore"`
	Camera    CameraConfig    `yaml:"camera"`
	Sprites   SpritesConfig   `yaml:"sprites"`
	Telemetry TelemetryConfig `yaml:"telemetry"`
}

// ScreenConfig holds display settings.
type ScreenConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	TargetFPS int    `yaml:"target_fps"`
	Title     string `yaml:"title"`
}

// WorldConfig holds world dimensions in world units.
// World can be larger than the screen; the camera handles the viewport.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// PhysicsConfig holds physics space parameters.
type PhysicsConfig struct {
	DT            float64 `yaml:"dt"`             // Fixed tick used in headless mode
	Damping       float64 `yaml:"damping"`        // Fraction of velocity kept per second
	WallThickness float64 `yaml:"wall_thickness"` // Radius of the boundary segments
}

// PlantConfig holds per-species tuning for plants.
type PlantConfig struct {
	InitialCount      int                `yaml:"initial_count"`
	SeedAttemptFactor int                `yaml:"seed_attempt_factor"` // Initial seeding tries at most initial_count * this
	MinSpacing        float64            `yaml:"min_spacing"`
	BoundsPadding     float64            `yaml:"bounds_padding"`
	BodyRadius        float64            `yaml:"body_radius"`
	MaxGrowthLevel    int                `yaml:"max_growth_level"`
	MaxGrowthTimer    float64            `yaml:"max_growth_timer"`   // Seconds per stage before jitter
	ReproductionDelay float64            `yaml:"reproduction_delay"` // Seconds between seed drops before factor and jitter
	SeedMinDistance   float64            `yaml:"seed_min_distance"`
	SeedRange         float64            `yaml:"seed_range"`
	Stages            []string           `yaml:"stages"` // Sprite name per growth level, index 0 = level 1
	Reproduction      ReproductionConfig `yaml:"reproduction"`
}

// ReproductionConfig holds the adaptive seed-drop backoff parameters.
type ReproductionConfig struct {
	Factor       float64 `yaml:"factor"`        // Delay multiplier applied after max_fails consecutive failures
	MaxFails     int     `yaml:"max_fails"`     // Consecutive failures before backing off
	MaxSuccesses int     `yaml:"max_successes"` // Consecutive successes before resetting the multiplier
	MaxFactor    float64 `yaml:"max_factor"`    // Upper bound on the multiplier (0 = uncapped)
}

// HerbivoreConfig holds per-species tuning for herbivores.
type HerbivoreConfig struct {
	InitialCount  int     `yaml:"initial_count"`
	BoundsPadding float64 `yaml:"bounds_padding"`
	BodyRadius    float64 `yaml:"body_radius"`
	Mass          float64 `yaml:"mass"`
	Speed         float64 `yaml:"speed"`         // World units per second
	TurnInterval  float64 `yaml:"turn_interval"` // Seconds between heading re-rolls
	Sprite        string  `yaml:"sprite"`
}

// CameraConfig holds viewport control parameters.
type CameraConfig struct {
	ZoomFactor float64 `yaml:"zoom_factor"`
	PanRate    float64 `yaml:"pan_rate"` // World units per second
	MinZoom    float64 `yaml:"min_zoom"` // Absolute floor; the effective minimum also depends on the viewport
	MaxZoom    float64 `yaml:"max_zoom"`
	Padding    float64 `yaml:"padding"` // World units allowed outside the map edges
}

// SpritesConfig describes the sprite sheet layout.
type SpritesConfig struct {
	Sheet  string                 `yaml:"sheet"`
	Frames map[string]FrameConfig `yaml:"frames"`
}

// FrameConfig is a rectangle within the sprite sheet.
type FrameConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
	W int `yaml:"w"`
	H int `yaml:"h"`
}

// TelemetryConfig holds telemetry parameters.
type TelemetryConfig struct {
	StatsWindow         float64 `yaml:"stats_window"`
	PerfCollectorWindow int     `yaml:"perf_collector_window"`
}

// global holds the loaded configuration.
var global *Config

// Init loads configuration from the given path, or uses embedded defaults if path is empty.
// Must be called before Cfg().
func Init(path string) error {
	cfg, err := Load(path)
	if err != nil {
		return err
	}
	global = cfg
	return nil
}

// Cfg returns the global configuration. Panics if Init was not called.
func Cfg() *Config {
	if global == nil {
		panic("config: Cfg() called before Init()")
	}
	return global
}

// Defaults returns a fresh copy of the embedded defaults.
func Defaults() *Config {
	cfg, err := Load("")
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Load loads configuration from a YAML file, merging with embedded defaults.
// If path is empty, only embedded defaults are used.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	if err := yaml.Unmarshal(defaultsYAML, cfg); err != nil {
		return nil, fmt.Errorf("parsing embedded defaults: %w", err)
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		// Unmarshal into same struct - only overwrites fields present in file
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config file: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// Validate reports configuration values the simulation cannot run with.
func (c *Config) Validate() error {
	var errs []error
	if c.World.Width <= 0 || c.World.Height <= 0 {
		errs = append(errs, fmt.Errorf("world size must be positive, got %gx%g", c.World.Width, c.World.Height))
	}
	p := c.Plant
	if p.MaxGrowthLevel < 1 {
		errs = append(errs, fmt.Errorf("plant.max_growth_level must be >= 1, got %d", p.MaxGrowthLevel))
	}
	if p.MinSpacing <= 0 {
		errs = append(errs, fmt.Errorf("plant.min_spacing must be > 0, got %g", p.MinSpacing))
	}
	if p.SeedMinDistance > p.SeedRange {
		errs = append(errs, fmt.Errorf("plant.seed_min_distance %g exceeds seed_range %g", p.SeedMinDistance, p.SeedRange))
	}
	if p.Reproduction.Factor < 1 {
		errs = append(errs, fmt.Errorf("plant.reproduction.factor must be >= 1, got %g", p.Reproduction.Factor))
	}
	if p.Reproduction.MaxFails < 1 {
		errs = append(errs, fmt.Errorf("plant.reproduction.max_fails must be >= 1, got %d", p.Reproduction.MaxFails))
	}
	if p.Reproduction.MaxSuccesses < 1 {
		errs = append(errs, fmt.Errorf("plant.reproduction.max_successes must be >= 1, got %d", p.Reproduction.MaxSuccesses))
	}
	if p.Reproduction.MaxFactor != 0 && p.Reproduction.MaxFactor < 1 {
		errs = append(errs, fmt.Errorf("plant.reproduction.max_factor must be 0 or >= 1, got %g", p.Reproduction.MaxFactor))
	}
	if c.Herbivore.TurnInterval <= 0 {
		errs = append(errs, fmt.Errorf("herbivore.turn_interval must be > 0, got %g", c.Herbivore.TurnInterval))
	}
	cam := c.Camera
	if cam.ZoomFactor <= 1 {
		errs = append(errs, fmt.Errorf("camera.zoom_factor must be > 1, got %g", cam.ZoomFactor))
	}
	if cam.MinZoom <= 0 || cam.MaxZoom < cam.MinZoom {
		errs = append(errs, fmt.Errorf("camera zoom bounds invalid: min %g, max %g", cam.MinZoom, cam.MaxZoom))
	}
	return errors.Join(errs...)
}

// WriteYAML writes the configuration to a YAML file.
func (c *Config) WriteYAML(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}
