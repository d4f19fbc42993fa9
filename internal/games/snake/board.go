package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Board is a grid-resolution canvas that persists between frames.
// Only changed cells are painted or erased on each tick.
type Board struct {
	grid  grid.Grid
	cells []core.Color // Row-major, ColorDefault = empty
}

// NewBoard creates an empty canvas for g.
func NewBoard(g grid.Grid) *Board {
	return &Board{
		grid:  g,
		cells: make([]core.Color, g.Cells()),
	}
}

// Clear empties the whole canvas.
func (b *Board) Clear() {
	for i := range b.cells {
		b.cells[i] = core.ColorDefault
	}
}

// Paint fills the cell at c. Cells off the board are ignored.
func (b *Board) Paint(c grid.Cell, color core.Color) {
	if i, ok := b.index(c); ok {
		b.cells[i] = color
	}
}

// Erase empties the cell at c.
func (b *Board) Erase(c grid.Cell) {
	b.Paint(c, core.ColorDefault)
}

// Draw paints a drawable at its position.
func (b *Board) Draw(d Drawable) {
	b.Paint(d.Position(), d.Color())
}

// At returns the color at the given column and row.
func (b *Board) At(col, row int) core.Color {
	if col < 0 || col >= b.grid.Width || row < 0 || row >= b.grid.Height {
		return core.ColorDefault
	}
	return b.cells[row*b.grid.Width+col]
}

func (b *Board) index(c grid.Cell) (int, bool) {
	if !b.grid.Contains(c) {
		return 0, false
	}
	col, row := b.grid.ColRow(c)
	return row*b.grid.Width + col, true
}

// ScreenSize returns the terminal footprint of the canvas: two columns per
// cell and two rows per line.
func (b *Board) ScreenSize() (w, h int) {
	return screenSize(b.grid)
}

func screenSize(g grid.Grid) (w, h int) {
	return g.Width * 2, (g.Height + 1) / 2
}

// Compose draws the canvas onto dst with its top-left corner at (x, y).
// Each terminal line holds two grid rows using half-block glyphs, which
// keeps cells roughly square.
func (b *Board) Compose(dst *core.Screen, x, y int) {
	_, h := b.ScreenSize()
	for line := range h {
		for col := range b.grid.Width {
			g := halfBlock(b.At(col, line*2), b.At(col, line*2+1))
			dst.SetGlyph(x+col*2, y+line, g)
			dst.SetGlyph(x+col*2+1, y+line, g)
		}
	}
}

// halfBlock renders an upper and a lower cell as one glyph.
func halfBlock(top, bottom core.Color) core.Glyph {
	switch {
	case top == core.ColorDefault && bottom == core.ColorDefault:
		return core.Glyph{Rune: ' '}
	case top == core.ColorDefault:
		return core.Glyph{Rune: '▄', FG: bottom}
	case bottom == core.ColorDefault:
		return core.Glyph{Rune: '▀', FG: top}
	case top == bottom:
		return core.Glyph{Rune: '█', FG: top}
	default:
		return core.Glyph{Rune: '▀', FG: top, BG: bottom}
	}
}
