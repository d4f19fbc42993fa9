package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Drawable is anything the board can paint: a position and a color.
// Both *Snake (its head) and *Food implement it.
type Drawable interface {
	Position() grid.Cell
	Color() core.Color
}

var (
	_ Drawable = (*Snake)(nil)
	_ Drawable = (*Food)(nil)
)
