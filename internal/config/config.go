// Package config provides YAML-based configuration loading and speed
// presets for gridstep.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/movement"
)

// Config is the full gridstep configuration.
type Config struct {
	TickRate int             `yaml:"tick_rate"`
	Movement movement.Config `yaml:"movement"`
	Board    BoardConfig     `yaml:"board"`
	Entities []EntityConfig  `yaml:"entities"`
}

// BoardConfig defines the size of the grid in cells.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// EntityConfig places one grid-stepping entity on the board.
type EntityConfig struct {
	Name   string              `yaml:"name"`
	X      int                 `yaml:"x"`
	Y      int                 `yaml:"y"` // 0 is the bottom row
	Facing direction.Direction `yaml:"facing"`
}

// ErrInvalidConfig is wrapped by every Validate failure.
var ErrInvalidConfig = errors.New("config: invalid")

// Validate checks speeds, board size and entity placement.
func (c Config) Validate() error {
	if c.TickRate <= 0 {
		return fmt.Errorf("%w: tick_rate must be positive, got %d", ErrInvalidConfig, c.TickRate)
	}
	if err := c.Movement.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("%w: board must be at least 1x1, got %dx%d", ErrInvalidConfig, c.Board.Width, c.Board.Height)
	}

	seen := make(map[string]bool, len(c.Entities))
	for i, e := range c.Entities {
		if e.Name == "" {
			return fmt.Errorf("%w: entity %d has no name", ErrInvalidConfig, i)
		}
		if seen[e.Name] {
			return fmt.Errorf("%w: duplicate entity %q", ErrInvalidConfig, e.Name)
		}
		seen[e.Name] = true

		if e.X < 0 || e.X >= c.Board.Width || e.Y < 0 || e.Y >= c.Board.Height {
			return fmt.Errorf("%w: entity %q at (%d, %d) is off the board", ErrInvalidConfig, e.Name, e.X, e.Y)
		}
		if err := e.Facing.Validate(); err != nil {
			return fmt.Errorf("%w: entity %q: %w", ErrInvalidConfig, e.Name, err)
		}
	}
	return nil
}

// SpeedPreset represents a named speed scale.
type SpeedPreset string

const (
	PresetSlow   SpeedPreset = "slow"
	PresetNormal SpeedPreset = "normal"
	PresetFast   SpeedPreset = "fast"
)

// speedFactor returns the multiplier applied to both speeds for a preset.
func speedFactor(preset SpeedPreset) (float64, bool) {
	switch preset {
	case PresetSlow:
		return 0.5, true
	case PresetNormal, "":
		return 1.0, true
	case PresetFast:
		return 2.0, true
	default:
		return 0, false
	}
}

// ApplyPreset scales the movement and rotation speeds by a preset.
func ApplyPreset(cfg *Config, preset SpeedPreset) error {
	f, ok := speedFactor(preset)
	if !ok {
		return fmt.Errorf("%w: unknown speed preset %q", ErrInvalidConfig, preset)
	}
	cfg.Movement.MovementSpeed *= f
	cfg.Movement.RotateSpeed *= f
	return nil
}
