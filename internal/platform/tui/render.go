package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// colorCodes maps core.Color to ANSI color codes. ColorDefault has no entry
// and leaves the terminal color untouched.
var colorCodes = map[core.Color]lipgloss.Color{
	core.ColorRed:           lipgloss.Color("1"),
	core.ColorGreen:         lipgloss.Color("2"),
	core.ColorYellow:        lipgloss.Color("3"),
	core.ColorBlue:          lipgloss.Color("4"),
	core.ColorMagenta:       lipgloss.Color("5"),
	core.ColorCyan:          lipgloss.Color("6"),
	core.ColorWhite:         lipgloss.Color("7"),
	core.ColorBrightRed:     lipgloss.Color("9"),
	core.ColorBrightGreen:   lipgloss.Color("10"),
	core.ColorBrightYellow:  lipgloss.Color("11"),
	core.ColorBrightBlue:    lipgloss.Color("12"),
	core.ColorBrightMagenta: lipgloss.Color("13"),
	core.ColorBrightCyan:    lipgloss.Color("14"),
	core.ColorBrightWhite:   lipgloss.Color("15"),
	core.ColorOrange:        lipgloss.Color("208"),
	core.ColorGray:          lipgloss.Color("245"),
}

// styleFor builds the lipgloss style for a foreground/background pair.
func styleFor(fg, bg core.Color) lipgloss.Style {
	style := lipgloss.NewStyle()
	if c, ok := colorCodes[fg]; ok {
		style = style.Foreground(c)
	}
	if c, ok := colorCodes[bg]; ok {
		style = style.Background(c)
	}
	return style
}

// run is a horizontal stretch of glyphs sharing the same colors.
type run struct {
	fg, bg core.Color
	text   string
}

// rowRuns splits row y of s into runs of identical colors.
func rowRuns(s *core.Screen, y int) []run {
	var runs []run
	x := 0
	for x < s.Width() {
		start := s.GetCell(x, y)

		var sb strings.Builder
		for x < s.Width() {
			cell := s.GetCell(x, y)
			if cell.FG != start.FG || cell.BG != start.BG {
				break
			}
			sb.WriteRune(cell.Rune)
			x++
		}
		runs = append(runs, run{fg: start.FG, bg: start.BG, text: sb.String()})
	}
	return runs
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}
		for _, r := range rowRuns(s, y) {
			if r.fg == core.ColorDefault && r.bg == core.ColorDefault {
				sb.WriteString(r.text)
				continue
			}
			sb.WriteString(styleFor(r.fg, r.bg).Render(r.text))
		}
	}
	return sb.String()
}
