package snake

import (
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// Snake is the player-controlled segmented body.
// It is created once and reset in place on self-collision.
type Snake struct {
	grid  grid.Grid
	color core.Color

	body    []grid.Cell // Head at index 0
	heading grid.Heading

	pending    grid.Heading // Requested since the last tick
	hasPending bool

	growth int // Ticks left in which the tail is kept

	last    grid.Cell // Tail cell vacated by the last Advance
	hasLast bool
}

// NewSnake creates a length-1 snake at the center of g heading right.
func NewSnake(g grid.Grid, color core.Color) *Snake {
	s := &Snake{
		grid:  g,
		color: color,
	}
	s.Reset()
	return s
}

// SetPendingHeading requests a heading change for the next tick.
// The exact opposite of the current heading is ignored. A later request
// overwrites an earlier one that has not been applied yet.
func (s *Snake) SetPendingHeading(h grid.Heading) {
	if !h.IsValid() || h == s.heading.Opposite() {
		return
	}
	s.pending = h
	s.hasPending = true
}

// Advance moves the snake one cell and reports whether it collided with
// itself. A collision resets the snake before Advance returns.
func (s *Snake) Advance() (reset bool) {
	if s.hasPending {
		s.heading = s.pending
		s.hasPending = false
	}

	head := s.grid.Step(s.body[0], s.heading)

	s.body = append(s.body, grid.Cell{})
	copy(s.body[1:], s.body)
	s.body[0] = head

	if s.growth > 0 {
		s.growth--
		s.hasLast = false
	} else {
		tail := len(s.body) - 1
		s.last = s.body[tail]
		s.hasLast = true
		s.body = s.body[:tail]
	}

	if s.bitesItself() {
		s.Reset()
		return true
	}
	return false
}

// bitesItself checks the head against segments 2 and beyond. Segment 1 is
// the previous head and always adjacent to the new one.
func (s *Snake) bitesItself() bool {
	head := s.body[0]
	for _, seg := range s.body[min(2, len(s.body)):] {
		if seg == head {
			return true
		}
	}
	return false
}

// Reset returns the snake to a single segment at the grid center heading right.
func (s *Snake) Reset() {
	s.body = append(s.body[:0], s.grid.Center())
	s.heading = grid.Right
	s.hasPending = false
	s.growth = 0
	s.hasLast = false
}

// Grow keeps the tail on one more future tick.
func (s *Snake) Grow() {
	s.growth++
}

// Head returns the head cell.
func (s *Snake) Head() grid.Cell {
	return s.body[0]
}

// Body returns a copy of the occupied cells, head first.
func (s *Snake) Body() []grid.Cell {
	out := make([]grid.Cell, len(s.body))
	copy(out, s.body)
	return out
}

// Len returns the number of segments.
func (s *Snake) Len() int {
	return len(s.body)
}

// Heading returns the current direction of motion.
func (s *Snake) Heading() grid.Heading {
	return s.heading
}

// Pending returns the requested heading, if any.
func (s *Snake) Pending() (grid.Heading, bool) {
	return s.pending, s.hasPending
}

// GrowthPending returns how many upcoming ticks will keep the tail.
func (s *Snake) GrowthPending() int {
	return s.growth
}

// Last returns the cell vacated by the most recent Advance. It reports
// false when the snake grew on that tick or has just been reset.
func (s *Snake) Last() (grid.Cell, bool) {
	return s.last, s.hasLast
}

// Occupied returns the set of cells covered by the body.
func (s *Snake) Occupied() CellSet {
	return NewCellSet(s.body...)
}

// Position returns the head cell.
func (s *Snake) Position() grid.Cell {
	return s.Head()
}

// Color returns the body color.
func (s *Snake) Color() core.Color {
	return s.color
}
