// Package config loads the YAML settings shared by the frontends.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/wagner-austin/bunny/animation"
	"github.com/wagner-austin/bunny/input"
)

// Timing is the frame period of every animation kind.
type Timing struct {
	Idle       time.Duration `yaml:"idle"`
	Walk       time.Duration `yaml:"walk"`
	Jump       time.Duration `yaml:"jump"`
	Transition time.Duration `yaml:"transition"`
	Hop        time.Duration `yaml:"hop"`
}

// Touch tunes the virtual joystick.
type Touch struct {
	Deadzone       float64       `yaml:"deadzone"`
	TapThreshold   time.Duration `yaml:"tap_threshold"`
	TapMaxDistance float64       `yaml:"tap_max_distance"`
}

// Terminal holds the tcell frontend settings.
type Terminal struct {
	// ReleaseAfter is how long a key counts as held after its last press,
	// since terminals report no key release.
	ReleaseAfter time.Duration `yaml:"release_after"`
	CellWidth    int           `yaml:"cell_width"`
	CellHeight   int           `yaml:"cell_height"`
	FPS          int           `yaml:"fps"`
}

// Config is the whole settings file.
type Config struct {
	FramesDir string                    `yaml:"frames_dir"`
	LogLevel  string                    `yaml:"log_level"`
	Timing    Timing                    `yaml:"timing"`
	Touch     Touch                     `yaml:"touch"`
	Keys      map[input.Action][]string `yaml:"keys"`
	Terminal  Terminal                  `yaml:"terminal"`
}

// Default returns the built-in settings.
func Default() *Config {
	return &Config{
		LogLevel: "info",
		Timing:   Timing(animation.DefaultTiming()),
		Touch:    Touch(input.DefaultTouchConfig()),
		Keys: map[input.Action][]string{
			input.ActionLeft:      {"ArrowLeft", "a", "A"},
			input.ActionRight:     {"ArrowRight", "d", "D"},
			input.ActionJump:      {" ", "j", "J"},
			input.ActionHopAway:   {"ArrowUp", "w", "W"},
			input.ActionHopToward: {"ArrowDown", "s", "S"},
		},
		Terminal: Terminal{
			ReleaseAfter: 550 * time.Millisecond,
			CellWidth:    8,
			CellHeight:   16,
			FPS:          30,
		},
	}
}

// Load reads path over the defaults. Sections and key bindings missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("bunny: load config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("bunny: unmarshal config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("bunny: config %s: %w", path, err)
	}
	return cfg, nil
}

var actions = []input.Action{
	input.ActionLeft,
	input.ActionRight,
	input.ActionJump,
	input.ActionHopAway,
	input.ActionHopToward,
}

// Validate reports the first setting that cannot work.
func (c *Config) Validate() error {
	periods := []struct {
		name string
		d    time.Duration
	}{
		{"timing.idle", c.Timing.Idle},
		{"timing.walk", c.Timing.Walk},
		{"timing.jump", c.Timing.Jump},
		{"timing.transition", c.Timing.Transition},
		{"timing.hop", c.Timing.Hop},
	}
	for _, p := range periods {
		if p.d <= 0 {
			return fmt.Errorf("%s must be positive, got %v", p.name, p.d)
		}
	}

	if c.Touch.Deadzone < 0 || c.Touch.TapMaxDistance < 0 || c.Touch.TapThreshold < 0 {
		return errors.New("touch thresholds must not be negative")
	}
	if c.Terminal.ReleaseAfter <= 0 {
		return fmt.Errorf("terminal.release_after must be positive, got %v", c.Terminal.ReleaseAfter)
	}
	if c.Terminal.CellWidth <= 0 || c.Terminal.CellHeight <= 0 || c.Terminal.FPS <= 0 {
		return errors.New("terminal cell size and fps must be positive")
	}

	bound := map[string]input.Action{}
	for _, action := range actions {
		if len(c.Keys[action]) == 0 {
			return fmt.Errorf("no keys bound to %s", action)
		}
	}
	for action, keys := range c.Keys {
		if !known(action) {
			return fmt.Errorf("unknown action %q", action)
		}
		for _, key := range keys {
			if other, ok := bound[key]; ok && other != action {
				return fmt.Errorf("key %q bound to both %s and %s", key, other, action)
			}
			bound[key] = action
		}
	}
	return nil
}

func known(action input.Action) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

// AnimationTiming converts the timing section.
func (c *Config) AnimationTiming() animation.Timing {
	return animation.Timing(c.Timing)
}

// TouchConfig converts the touch section.
func (c *Config) TouchConfig() input.TouchConfig {
	return input.TouchConfig(c.Touch)
}

// KeyMap flattens the key bindings.
func (c *Config) KeyMap() input.KeyMap {
	keys := input.KeyMap{}
	for action, names := range c.Keys {
		for _, name := range names {
			keys[name] = action
		}
	}
	return keys
}
