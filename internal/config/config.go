package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"github.com/go-gl/mathgl/mgl64"
	"gopkg.in/yaml.v3"

	"github.com/san-kum/wavesim/internal/controllers"
	"github.com/san-kum/wavesim/internal/input"
	"github.com/san-kum/wavesim/internal/rigid"
	"github.com/san-kum/wavesim/internal/sim"
	"github.com/san-kum/wavesim/internal/waves"
)

// ErrInvalid is wrapped by every Validate failure.
var ErrInvalid = errors.New("invalid config")

type Config struct {
	Name      string                      `yaml:"name"`
	Waves     WavesConfig                 `yaml:"waves"`
	Body      BodyConfig                  `yaml:"body"`
	Boat      controllers.BoatParams      `yaml:"boat"`
	Autopilot controllers.AutopilotParams `yaml:"autopilot"`
	Sim       sim.Timing                  `yaml:"sim"`
	Script    []input.Event               `yaml:"script,omitempty"`
	Logging   LoggingConfig               `yaml:"logging"`
}

// WavesConfig places the wave surface in the world.
type WavesConfig struct {
	waves.Parameters `yaml:",inline"`
	Origin           mgl64.Vec3 `yaml:"origin"`
}

type BodyConfig struct {
	rigid.BoxConfig `yaml:",inline"`
	Gravity         mgl64.Vec3 `yaml:"gravity"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file,omitempty"`
}

func DefaultConfig() *Config {
	return &Config{
		Name:      "default",
		Waves:     WavesConfig{Parameters: waves.DefaultParameters()},
		Body:      BodyConfig{BoxConfig: rigid.DefaultBoxConfig(), Gravity: rigid.DefaultGravity},
		Boat:      controllers.DefaultBoatParams(),
		Autopilot: controllers.DefaultAutopilotParams(),
		Sim:       sim.DefaultTiming(),
		Logging:   LoggingConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults, so a file only needs the keys
// it changes.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

func (c *Config) Validate() error {
	w := c.Waves
	for name, v := range map[string]float64{
		"amplitude":   w.Amplitude,
		"frequency":   w.Frequency,
		"persistence": w.Persistence,
		"lacunarity":  w.Lacunarity,
		"speed":       w.Speed,
	} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return fmt.Errorf("%w: waves.%s must be finite", ErrInvalid, name)
		}
	}
	if w.Iterations < 0 {
		return fmt.Errorf("%w: waves.iterations must be >= 0, got %d", ErrInvalid, w.Iterations)
	}

	b := c.Body
	if b.Mass <= 0 {
		return fmt.Errorf("%w: body.mass must be positive, got %f", ErrInvalid, b.Mass)
	}
	for i, e := range b.HalfExtents {
		if e <= 0 {
			return fmt.Errorf("%w: body.half_extents[%d] must be positive", ErrInvalid, i)
		}
	}
	if b.LinearDamping < 0 || b.LinearDamping >= 1 || b.AngularDamping < 0 || b.AngularDamping >= 1 {
		return fmt.Errorf("%w: body damping must be in [0, 1)", ErrInvalid)
	}

	if len(c.Boat.Corners) == 0 {
		return fmt.Errorf("%w: boat.corners must not be empty", ErrInvalid)
	}

	s := c.Sim
	if s.FixedDt <= 0 || s.FrameDt <= 0 {
		return fmt.Errorf("%w: sim.fixed_dt and sim.frame_dt must be positive", ErrInvalid)
	}
	if s.Duration <= 0 {
		return fmt.Errorf("%w: sim.duration must be positive, got %f", ErrInvalid, s.Duration)
	}
	if s.MaxSubSteps < 1 {
		return fmt.Errorf("%w: sim.max_substeps must be at least 1, got %d", ErrInvalid, s.MaxSubSteps)
	}

	for i, e := range c.Script {
		if e.At < 0 {
			return fmt.Errorf("%w: script[%d] at %f is negative", ErrInvalid, i, e.At)
		}
	}

	if c.Logging.Level != "" && !logLevels[c.Logging.Level] {
		return fmt.Errorf("%w: unknown logging.level %q", ErrInvalid, c.Logging.Level)
	}
	return nil
}

// Scenario converts the config into a simulator scenario.
func (c *Config) Scenario() sim.Scenario {
	corners := make([]mgl64.Vec3, len(c.Boat.Corners))
	copy(corners, c.Boat.Corners)
	boat := c.Boat
	boat.Corners = corners

	script := make([]input.Event, len(c.Script))
	copy(script, c.Script)

	return sim.Scenario{
		Name:        c.Name,
		Waves:       c.Waves.Parameters,
		WaterOrigin: c.Waves.Origin,
		Gravity:     c.Body.Gravity,
		Body:        c.Body.BoxConfig,
		Boat:        boat,
		Autopilot:   c.Autopilot,
		Script:      script,
		Timing:      c.Sim,
	}
}
