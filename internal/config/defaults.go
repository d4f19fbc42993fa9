package config

import (
	_ "embed"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: the classic 640x480 surface
// split into 20-unit cells.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:    32,
			Height:   24,
			CellSize: 20,
		},
		Speed: 10,
		Food: FoodConfig{
			MaxAttempts: 1024,
		},
		Colors: ColorConfig{
			Snake:  "bright_green",
			Head:   "green",
			Food:   "bright_red",
			Border: "cyan",
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
