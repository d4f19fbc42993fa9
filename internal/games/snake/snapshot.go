package snake

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/tui-snake/internal/grid"
)

// GameStateType represents the current game state.
type GameStateType string

const (
	StatePlaying     GameStateType = "playing"
	StatePaused      GameStateType = "paused"
	StatePausedSmall GameStateType = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing and replay.
type Snapshot struct {
	Tick          uint64
	Length        int
	Best          int
	Resets        int
	FoodEaten     int
	Head          grid.Cell
	Heading       grid.Heading
	GrowthPending int
	Food          grid.Cell
	State         GameStateType
}

// Snapshot returns the current game snapshot for determinism verification.
func (g *Game) Snapshot() Snapshot {
	state := StatePlaying
	switch {
	case g.tooSmall:
		state = StatePausedSmall
	case g.paused:
		state = StatePaused
	}

	return Snapshot{
		Tick:          g.tick,
		Length:        g.snake.Len(),
		Best:          g.best,
		Resets:        g.resets,
		FoodEaten:     g.eaten,
		Head:          g.snake.Head(),
		Heading:       g.snake.Heading(),
		GrowthPending: g.snake.GrowthPending(),
		Food:          g.food.Position(),
		State:         state,
	}
}

// DebugState returns a string representation of the game state.
func (g *Game) DebugState() string {
	s := g.Snapshot()
	var b strings.Builder
	fmt.Fprintf(&b, "Tick: %d, Length: %d, Best: %d, Resets: %d\n", s.Tick, s.Length, s.Best, s.Resets)
	fmt.Fprintf(&b, "Head: %v, Heading: %s, Food: %v\n", s.Head, s.Heading, s.Food)
	fmt.Fprintf(&b, "Growth pending: %d, State: %s\n", s.GrowthPending, s.State)
	return b.String()
}
