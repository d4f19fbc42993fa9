package snake

import (
	"math/rand"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// CellSet is a set of grid cells.
type CellSet map[grid.Cell]struct{}

// NewCellSet builds a set from the given cells.
func NewCellSet(cells ...grid.Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set[c] = struct{}{}
	}
	return set
}

// Has reports whether c is in the set.
func (s CellSet) Has(c grid.Cell) bool {
	_, ok := s[c]
	return ok
}

// Food is the single piece of food on the board.
type Food struct {
	position grid.Cell
	color    core.Color
}

// NewFood creates food at pos.
func NewFood(pos grid.Cell, color core.Color) *Food {
	return &Food{position: pos, color: color}
}

// Position returns the food cell.
func (f *Food) Position() grid.Cell {
	return f.position
}

// Color returns the food color.
func (f *Food) Color() core.Color {
	return f.color
}

// MoveTo places the food at pos.
func (f *Food) MoveTo(pos grid.Cell) {
	f.position = pos
}

// Placer picks random free cells for food.
type Placer struct {
	grid        grid.Grid
	rng         *rand.Rand
	maxAttempts int // Rejected samples before falling back to a scan; 0 = unbounded
}

// NewPlacer creates a placer drawing from rng.
func NewPlacer(g grid.Grid, rng *rand.Rand, maxAttempts int) *Placer {
	return &Placer{
		grid:        g,
		rng:         rng,
		maxAttempts: maxAttempts,
	}
}

// Relocate samples uniformly random cells until one is not in occupied.
// After maxAttempts misses it picks uniformly among the remaining free
// cells instead. On a completely full board the last sample is returned.
func (p *Placer) Relocate(occupied CellSet) grid.Cell {
	var c grid.Cell
	for attempt := 0; p.maxAttempts <= 0 || attempt < p.maxAttempts; attempt++ {
		c = p.sample()
		if !occupied.Has(c) {
			return c
		}
	}

	free := p.freeCells(occupied)
	if len(free) == 0 {
		return c
	}
	return free[p.rng.Intn(len(free))]
}

// sample returns a uniformly random cell on the grid.
func (p *Placer) sample() grid.Cell {
	return p.grid.CellAt(p.rng.Intn(p.grid.Width), p.rng.Intn(p.grid.Height))
}

// freeCells lists every cell not in occupied, row by row.
func (p *Placer) freeCells(occupied CellSet) []grid.Cell {
	free := make([]grid.Cell, 0, max(0, p.grid.Cells()-len(occupied)))
	for row := range p.grid.Height {
		for col := range p.grid.Width {
			c := p.grid.CellAt(col, row)
			if !occupied.Has(c) {
				free = append(free, c)
			}
		}
	}
	return free
}
