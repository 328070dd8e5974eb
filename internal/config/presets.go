package config

import (
	"sort"

	"github.com/san-kum/wavesim/internal/input"
)

// Presets are named sea states applied over the defaults.
var Presets = map[string]func(*Config){
	"calm": func(c *Config) {
		c.Waves.Amplitude = 0.01
		c.Waves.Speed = 0.2
	},
	"choppy": func(c *Config) {
		c.Waves.Amplitude = 0.15
		c.Waves.Frequency = 1.6
		c.Waves.Speed = 0.8
	},
	"storm": func(c *Config) {
		c.Waves.Amplitude = 0.6
		c.Waves.Frequency = 0.6
		c.Waves.Persistence = 0.45
		c.Waves.Speed = 1.5
		c.Sim.Duration = 30
	},
	"cruise": func(c *Config) {
		c.Waves.Amplitude = 0.1
		c.Autopilot.Enabled = true
		c.Autopilot.Cruise = true
		c.Autopilot.Heading = 0.5
		c.Sim.Duration = 30
	},
	"slalom": func(c *Config) {
		c.Script = []input.Event{
			{At: 0, Action: input.Forward, Pressed: true},
			{At: 2, Action: input.TurnLeft, Pressed: true},
			{At: 4, Action: input.TurnLeft, Pressed: false},
			{At: 4, Action: input.TurnRight, Pressed: true},
			{At: 8, Action: input.TurnRight, Pressed: false},
			{At: 8, Action: input.TurnLeft, Pressed: true},
			{At: 10, Action: input.TurnLeft, Pressed: false},
			{At: 14, Action: input.Forward, Pressed: false},
		}
	},
}

// GetPreset returns a fresh config for the named preset, or nil.
func GetPreset(name string) *Config {
	apply, ok := Presets[name]
	if !ok {
		return nil
	}
	cfg := DefaultConfig()
	cfg.Name = name
	apply(cfg)
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
