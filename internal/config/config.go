// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// Speed limits in ticks per second.
const (
	MinSpeed = 1
	MaxSpeed = 120
)

// Config contains all configuration for the snake game.
type Config struct {
	Grid   GridConfig  `yaml:"grid"`
	Speed  int         `yaml:"speed"` // Ticks per second
	Food   FoodConfig  `yaml:"food"`
	Colors ColorConfig `yaml:"colors"`
}

// GridConfig defines the board dimensions.
type GridConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// FoodConfig defines food placement parameters.
type FoodConfig struct {
	MaxAttempts int `yaml:"max_attempts"`
}

// ColorConfig names the colors of each board element (see core.ParseColor).
type ColorConfig struct {
	Snake  string `yaml:"snake"`
	Head   string `yaml:"head"`
	Food   string `yaml:"food"`
	Border string `yaml:"border"`
}

// Palette is the resolved form of ColorConfig.
type Palette struct {
	Snake  core.Color
	Head   core.Color
	Food   core.Color
	Border core.Color
}

// Board returns the grid described by the config.
func (c Config) Board() grid.Grid {
	return grid.New(c.Grid.Width, c.Grid.Height, c.Grid.CellSize)
}

// Palette resolves color names. Unknown names fall back to the defaults;
// Validate reports them.
func (c Config) Palette() Palette {
	def := Default().Colors
	return Palette{
		Snake:  resolveColor(c.Colors.Snake, def.Snake),
		Head:   resolveColor(c.Colors.Head, def.Head),
		Food:   resolveColor(c.Colors.Food, def.Food),
		Border: resolveColor(c.Colors.Border, def.Border),
	}
}

func resolveColor(name, fallback string) core.Color {
	if col, ok := core.ParseColor(name); ok {
		return col
	}
	col, _ := core.ParseColor(fallback)
	return col
}

// Validate checks that the config describes a playable board.
func (c Config) Validate() error {
	if c.Grid.Width < 2 || c.Grid.Height < 2 {
		return fmt.Errorf("%w: grid must be at least 2x2, got %dx%d",
			ErrInvalidConfig, c.Grid.Width, c.Grid.Height)
	}
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("%w: cell_size must be positive, got %d", ErrInvalidConfig, c.Grid.CellSize)
	}
	if c.Speed < MinSpeed || c.Speed > MaxSpeed {
		return fmt.Errorf("%w: speed must be in [%d, %d], got %d",
			ErrInvalidConfig, MinSpeed, MaxSpeed, c.Speed)
	}
	if c.Food.MaxAttempts < 0 {
		return fmt.Errorf("%w: food.max_attempts must not be negative, got %d",
			ErrInvalidConfig, c.Food.MaxAttempts)
	}

	colors := []struct{ field, name string }{
		{"snake", c.Colors.Snake},
		{"head", c.Colors.Head},
		{"food", c.Colors.Food},
		{"border", c.Colors.Border},
	}
	for _, col := range colors {
		if _, ok := core.ParseColor(col.name); !ok {
			return fmt.Errorf("%w: colors.%s: unknown color %q", ErrInvalidConfig, col.field, col.name)
		}
	}
	return nil
}
