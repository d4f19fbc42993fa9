// Package snake implements the classic Snake game: a segmented snake moves
// on a wrapping grid, eats food to grow, and resets in place when it runs
// into itself. There is no game over; play continues until the player quits.
package snake

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/grid"
)

// hudHeight is the number of screen rows above the board.
const hudHeight = 2

// Game runs one Snake session: it owns the snake and the food and advances
// them once per Step.
type Game struct {
	cfg     config.Config
	palette config.Palette
	logger  *log.Logger

	grid   grid.Grid
	rng    *rand.Rand
	snake  *Snake
	food   *Food
	placer *Placer
	board  *Board

	tick   uint64
	resets int // Self-collision resets so far
	best   int // Longest length reached
	eaten  int // Food eaten this session

	// Board bookkeeping between Step and Render
	needsClear bool
	vacated    []grid.Cell

	paused   bool
	tooSmall bool
	screenW  int
	screenH  int
}

// New creates a game for cfg. A nil logger discards output.
func New(cfg config.Config, logger *log.Logger) *Game {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Game{
		cfg:     cfg,
		palette: cfg.Palette(),
		logger:  logger,
		grid:    cfg.Board(),
	}
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "snake"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Snake"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.resets = 0
	g.eaten = 0
	g.paused = false
	g.needsClear = false
	g.vacated = g.vacated[:0]

	g.snake = NewSnake(g.grid, g.palette.Snake)
	g.placer = NewPlacer(g.grid, g.rng, g.cfg.Food.MaxAttempts)
	g.food = NewFood(g.placer.Relocate(g.snake.Occupied()), g.palette.Food)
	g.board = NewBoard(g.grid)
	g.best = g.snake.Len()

	g.Resize(cfg.ScreenW, cfg.ScreenH)

	g.logger.Info("game started",
		"grid", fmt.Sprintf("%dx%d", g.grid.Width, g.grid.Height),
		"cell_size", g.grid.CellSize,
		"seed", cfg.Seed,
		"food", g.food.Position(),
	)
}

// Resize adapts the layout to a new screen size without touching game state.
func (g *Game) Resize(w, h int) {
	g.screenW = w
	g.screenH = h

	bw, bh := screenSize(g.grid)
	tooSmall := w < bw+2 || h < bh+2+hudHeight
	if tooSmall != g.tooSmall {
		g.logger.Debug("screen size changed", "width", w, "height", h, "too_small", tooSmall)
	}
	g.tooSmall = tooSmall
}

// Step advances the game by one tick: read input, update heading, advance
// the snake, check food consumption, relocate food.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	// Handle pause toggle
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
		g.logger.Debug("pause toggled", "paused", g.paused, "tick", g.tick)
	}

	// Don't advance while paused or too small to see the board
	if g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	// Apply presses in order so a rejected reversal keeps an earlier turn
	for _, a := range input.Directions() {
		if h, ok := headingFor(a); ok {
			g.snake.SetPendingHeading(h)
		}
	}

	before := g.snake.Len()
	result := core.StepResult{}

	if g.snake.Advance() {
		g.resets++
		g.needsClear = true
		g.vacated = g.vacated[:0]
		result.Reset = true
		g.logger.Info("self-collision, snake reset",
			"tick", g.tick,
			"length", before,
			"resets", g.resets,
		)
	} else if last, ok := g.snake.Last(); ok {
		g.vacated = append(g.vacated, last)
	}

	if g.snake.Head() == g.food.Position() {
		g.snake.Grow()
		g.eaten++
		g.food.MoveTo(g.placer.Relocate(g.snake.Occupied()))
		result.Ate = true
		g.logger.Debug("food eaten",
			"tick", g.tick,
			"length", g.snake.Len(),
			"next_food", g.food.Position(),
		)
	}

	g.best = max(g.best, g.snake.Len())
	result.State = g.State()
	return result
}

// headingFor maps a directional action to a heading.
func headingFor(a core.Action) (grid.Heading, bool) {
	switch a {
	case core.ActionUp:
		return grid.Up, true
	case core.ActionDown:
		return grid.Down, true
	case core.ActionLeft:
		return grid.Left, true
	case core.ActionRight:
		return grid.Right, true
	default:
		return grid.Heading{}, false
	}
}

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	// Draw HUD
	g.renderHUD(dst)

	// Handle special states
	if g.tooSmall {
		bw, bh := screenSize(g.grid)
		g.renderOverlay(dst, "Window too small", fmt.Sprintf("Need %dx%d", bw+2, bh+2+hudHeight))
		return
	}

	// Bring the canvas up to date and draw it inside a border
	g.syncBoard()

	bw, bh := g.board.ScreenSize()
	frame := core.NewRect((dst.Width()-bw-2)/2, hudHeight, bw+2, bh+2)
	dst.DrawBox(frame, g.palette.Border)
	g.board.Compose(dst, frame.X+1, frame.Y+1)

	if g.paused {
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// syncBoard applies the changes since the last frame to the canvas:
// a full clear after a reset, otherwise erasing only the vacated tail cells.
func (g *Game) syncBoard() {
	if g.needsClear {
		g.board.Clear()
		g.needsClear = false
	}
	for _, c := range g.vacated {
		g.board.Erase(c)
	}
	g.vacated = g.vacated[:0]

	g.board.Draw(g.food)
	for _, seg := range g.snake.body[1:] {
		g.board.Paint(seg, g.snake.Color())
	}
	g.board.Paint(g.snake.Head(), g.palette.Head)
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" Snake — Length: %d  Best: %d  Resets: %d", g.snake.Len(), g.best, g.resets)
	if g.paused {
		hud += "  [paused]"
	}
	dst.DrawText(0, 0, hud)

	// Draw separator
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderOverlay draws a centered overlay message.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	maxLen := max(len([]rune(line1)), len([]rune(line2)))
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).Centered(maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, core.ColorDefault)

	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.snake.Len(),
		Paused: g.paused,
	}
}
