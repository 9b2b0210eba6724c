package config

import (
	_ "embed"

	"github.com/vovakirdan/gridstep/internal/direction"
	"github.com/vovakirdan/gridstep/internal/movement"
)

//go:embed defaults/gridstep.yaml
var defaultYAML []byte

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		TickRate: 60,
		Movement: movement.Config{
			MovementSpeed: 4.0,
			RotateSpeed:   6.0,
		},
		Board: BoardConfig{
			Width:  15,
			Height: 9,
		},
		Entities: []EntityConfig{
			{Name: "scout", X: 3, Y: 4, Facing: direction.Right},
			{Name: "warden", X: 11, Y: 4, Facing: direction.Left},
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}
