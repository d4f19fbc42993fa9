package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func runeKey(r rune) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}}
}

func TestMapKey(t *testing.T) {
	km := DefaultKeyMap()

	tests := []struct {
		name     string
		msg      tea.KeyMsg
		expected core.Action
	}{
		{name: "arrow up", msg: tea.KeyMsg{Type: tea.KeyUp}, expected: core.ActionUp},
		{name: "arrow down", msg: tea.KeyMsg{Type: tea.KeyDown}, expected: core.ActionDown},
		{name: "arrow left", msg: tea.KeyMsg{Type: tea.KeyLeft}, expected: core.ActionLeft},
		{name: "arrow right", msg: tea.KeyMsg{Type: tea.KeyRight}, expected: core.ActionRight},
		{name: "w", msg: runeKey('w'), expected: core.ActionUp},
		{name: "a", msg: runeKey('a'), expected: core.ActionLeft},
		{name: "s", msg: runeKey('s'), expected: core.ActionDown},
		{name: "d", msg: runeKey('d'), expected: core.ActionRight},
		{name: "vim k", msg: runeKey('k'), expected: core.ActionUp},
		{name: "vim j", msg: runeKey('j'), expected: core.ActionDown},
		{name: "vim h", msg: runeKey('h'), expected: core.ActionLeft},
		{name: "vim l", msg: runeKey('l'), expected: core.ActionRight},
		{name: "pause p", msg: runeKey('p'), expected: core.ActionPause},
		{name: "pause space", msg: tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}, expected: core.ActionPause},
		{name: "quit q", msg: runeKey('q'), expected: core.ActionQuit},
		{name: "quit esc", msg: tea.KeyMsg{Type: tea.KeyEsc}, expected: core.ActionQuit},
		{name: "quit ctrl+c", msg: tea.KeyMsg{Type: tea.KeyCtrlC}, expected: core.ActionQuit},
		{name: "unbound", msg: runeKey('x'), expected: core.ActionNone},
		{name: "enter unbound", msg: tea.KeyMsg{Type: tea.KeyEnter}, expected: core.ActionNone},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := km.MapKey(tc.msg); got != tc.expected {
				t.Errorf("MapKey(%q) = %v, expected %v", tc.msg.String(), got, tc.expected)
			}
		})
	}
}

func TestMapKeyToFrame(t *testing.T) {
	km := DefaultKeyMap()
	frame := core.NewInputFrame()

	if km.MapKeyToFrame(tea.KeyMsg{Type: tea.KeyUp}, &frame) {
		t.Error("up should not quit")
	}
	if km.MapKeyToFrame(runeKey('x'), &frame) {
		t.Error("unbound key should not quit")
	}
	if !frame.Has(core.ActionUp) {
		t.Error("frame should contain ActionUp")
	}
	if frame.Has(core.ActionNone) {
		t.Error("unbound key should not be recorded")
	}

	if !km.MapKeyToFrame(runeKey('q'), &frame) {
		t.Error("q should quit")
	}
	if frame.Has(core.ActionQuit) {
		t.Error("quit is handled by the platform, not recorded in the frame")
	}
}

func TestShortHelpCoversBindings(t *testing.T) {
	km := DefaultKeyMap()
	if got := len(km.ShortHelp()); got != 6 {
		t.Errorf("len(ShortHelp()) = %d, expected 6", got)
	}
	total := 0
	for _, col := range km.FullHelp() {
		total += len(col)
	}
	if total != 6 {
		t.Errorf("FullHelp() has %d bindings, expected 6", total)
	}
}
