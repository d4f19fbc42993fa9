// Package grid defines the discrete coordinate space the snake moves on.
// Cells are stored in surface units (multiples of the cell size), so the
// center of a 32x24 grid of 20-unit cells is (320, 240).
package grid

import "fmt"

// Cell is a single grid coordinate in surface units.
type Cell struct {
	X, Y int
}

// String returns the cell as "(x,y)".
func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// Heading is an axis-aligned unit vector describing the direction of motion.
type Heading struct {
	DX, DY int
}

// The four valid headings.
var (
	Up    = Heading{DX: 0, DY: -1}
	Down  = Heading{DX: 0, DY: 1}
	Left  = Heading{DX: -1, DY: 0}
	Right = Heading{DX: 1, DY: 0}
)

// Opposite returns the heading pointing the other way.
func (h Heading) Opposite() Heading {
	return Heading{DX: -h.DX, DY: -h.DY}
}

// IsValid reports whether h is one of Up, Down, Left or Right.
func (h Heading) IsValid() bool {
	return h == Up || h == Down || h == Left || h == Right
}

func (h Heading) String() string {
	switch h {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return "unknown"
	}
}

// Wrap maps coord into [0, axisLength). Negative coordinates wrap to the
// far edge. axisLength must be positive.
func Wrap(coord, axisLength int) int {
	return ((coord % axisLength) + axisLength) % axisLength
}

// Grid is a toroidal board of Width x Height cells, each CellSize units wide.
type Grid struct {
	Width    int // Columns
	Height   int // Rows
	CellSize int // Surface units per cell
}

// New creates a grid with the given dimensions.
func New(width, height, cellSize int) Grid {
	return Grid{Width: width, Height: height, CellSize: cellSize}
}

// PixelWidth returns the horizontal extent of the grid in surface units.
func (g Grid) PixelWidth() int {
	return g.Width * g.CellSize
}

// PixelHeight returns the vertical extent of the grid in surface units.
func (g Grid) PixelHeight() int {
	return g.Height * g.CellSize
}

// Cells returns the total number of cells on the board.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Step moves c one cell along h and wraps both axes independently.
func (g Grid) Step(c Cell, h Heading) Cell {
	return Cell{
		X: Wrap(c.X+h.DX*g.CellSize, g.PixelWidth()),
		Y: Wrap(c.Y+h.DY*g.CellSize, g.PixelHeight()),
	}
}

// Center returns the cell-aligned center of the board.
func (g Grid) Center() Cell {
	return Cell{X: (g.Width / 2) * g.CellSize, Y: (g.Height / 2) * g.CellSize}
}

// Contains reports whether c lies on the board and is aligned to a cell.
func (g Grid) Contains(c Cell) bool {
	if c.X < 0 || c.X >= g.PixelWidth() || c.Y < 0 || c.Y >= g.PixelHeight() {
		return false
	}
	return c.X%g.CellSize == 0 && c.Y%g.CellSize == 0
}

// CellAt converts a column/row pair to a cell.
func (g Grid) CellAt(col, row int) Cell {
	return Cell{X: col * g.CellSize, Y: row * g.CellSize}
}

// ColRow converts a cell back to its column and row.
func (g Grid) ColRow(c Cell) (col, row int) {
	return c.X / g.CellSize, c.Y / g.CellSize
}
