package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// fakeGame records the calls the platform makes.
type fakeGame struct {
	resetCfg   core.RuntimeConfig
	resets     int
	steps      int
	lastInput  core.InputFrame
	resizedW   int
	resizedH   int
	renderedAt int
}

func (g *fakeGame) ID() string    { return "fake" }
func (g *fakeGame) Title() string { return "Fake" }

func (g *fakeGame) Reset(cfg core.RuntimeConfig) {
	g.resetCfg = cfg
	g.resets++
}

func (g *fakeGame) Resize(w, h int) {
	g.resizedW = w
	g.resizedH = h
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	g.lastInput = in.Clone()
	return core.StepResult{State: core.GameState{Score: g.steps}}
}

func (g *fakeGame) Render(dst *core.Screen) {
	g.renderedAt = g.steps
	dst.Clear()
	dst.DrawText(0, 0, "fake game")
}

func (g *fakeGame) State() core.GameState {
	return core.GameState{Score: g.steps}
}

func newTestModel(game Game) Model {
	return NewModel(game, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 10, Seed: 42}, nil)
}

func TestNewModelReservesHelpLine(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game)
	m.Init()

	if game.resets != 1 {
		t.Fatalf("Reset called %d times, expected 1", game.resets)
	}
	if game.resetCfg.ScreenH != 23 || game.resetCfg.ScreenW != 80 {
		t.Errorf("Reset screen = %dx%d, expected 80x23", game.resetCfg.ScreenW, game.resetCfg.ScreenH)
	}
	if game.resetCfg.Seed != 42 {
		t.Errorf("Seed = %d, expected 42", game.resetCfg.Seed)
	}
}

func TestNewModelClampsTickRate(t *testing.T) {
	m := NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 0}, nil)
	if m.config.TickRate != minTickRate {
		t.Errorf("TickRate = %d, expected %d", m.config.TickRate, minTickRate)
	}
	if m.config.Seed == 0 {
		t.Error("zero seed should be replaced with a time-based seed")
	}

	m = NewModel(&fakeGame{}, core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 1000, Seed: 1}, nil)
	if m.config.TickRate != maxTickRate {
		t.Errorf("TickRate = %d, expected %d", m.config.TickRate, maxTickRate)
	}
}

func TestKeysReachNextTick(t *testing.T) {
	game := &fakeGame{}
	var model tea.Model = newTestModel(game)

	model, _ = model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	model, cmd := model.Update(TickMsg{})

	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if game.steps != 1 {
		t.Fatalf("Step called %d times, expected 1", game.steps)
	}
	if game.lastInput.Direction() != core.ActionLeft {
		t.Errorf("Direction() = %v, expected Left", game.lastInput.Direction())
	}

	// Input is cleared after each tick
	model.Update(TickMsg{})
	if game.lastInput.Direction() != core.ActionNone {
		t.Errorf("Direction() = %v, expected None on the following tick", game.lastInput.Direction())
	}
}

func TestQuit(t *testing.T) {
	game := &fakeGame{}
	var model tea.Model = newTestModel(game)

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}})
	if cmd == nil {
		t.Fatal("q should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("q should return tea.Quit")
	}
	if model.View() != "" {
		t.Error("View() should be empty after quitting")
	}

	model.Update(TickMsg{})
	if game.steps != 0 {
		t.Error("no ticks should run after quitting")
	}
}

func TestResizeKeepsGame(t *testing.T) {
	game := &fakeGame{}
	m := newTestModel(game)
	m.Init()

	var model tea.Model = m
	model, _ = model.Update(tea.WindowSizeMsg{Width: 100, Height: 40})

	if game.resets != 1 {
		t.Errorf("resize should not reset the game, Reset called %d times", game.resets)
	}
	if game.resizedW != 100 || game.resizedH != 39 {
		t.Errorf("Resize(%d, %d), expected Resize(100, 39)", game.resizedW, game.resizedH)
	}

	view := model.View()
	lines := strings.Split(view, "\n")
	if len(lines) != 40 {
		t.Errorf("View() has %d lines, expected 40", len(lines))
	}
	if !strings.HasPrefix(lines[0], "fake game") {
		t.Errorf("first line = %q, expected game output", lines[0])
	}
}
