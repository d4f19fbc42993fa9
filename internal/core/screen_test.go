package core

import (
	"strings"
	"testing"
)

// rowText returns the runes of row y between x0 and x1 as a string.
func rowText(s *Screen, y, x0, x1 int) string {
	var sb strings.Builder
	for x := x0; x < x1; x++ {
		sb.WriteRune(s.Get(x, y))
	}
	return sb.String()
}

func TestNewScreenIsBlank(t *testing.T) {
	s := NewScreen(6, 3)

	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	for y := range s.Height() {
		for x := range s.Width() {
			if g := s.GetCell(x, y); g != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank", x, y, g)
			}
		}
	}
}

func TestSetGlyphBounds(t *testing.T) {
	tests := []struct {
		name   string
		x, y   int
		stored bool
	}{
		{name: "top-left", x: 0, y: 0, stored: true},
		{name: "bottom-right", x: 3, y: 2, stored: true},
		{name: "left of screen", x: -1, y: 0},
		{name: "right of screen", x: 4, y: 0},
		{name: "above screen", x: 0, y: -1},
		{name: "below screen", x: 0, y: 3},
	}

	g := Glyph{Rune: '▄', FG: ColorBrightGreen, BG: ColorBlue}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(4, 3)
			s.SetGlyph(tc.x, tc.y, g)

			got := s.GetCell(tc.x, tc.y)
			if tc.stored && got != g {
				t.Errorf("GetCell(%d, %d) = %+v, expected %+v", tc.x, tc.y, got, g)
			}
			if !tc.stored && got != blank {
				t.Errorf("GetCell(%d, %d) = %+v, expected blank off-screen", tc.x, tc.y, got)
			}
		})
	}
}

func TestSetVariantsAssignColors(t *testing.T) {
	s := NewScreen(3, 1)
	s.SetGlyph(0, 0, Glyph{Rune: 'x', FG: ColorRed, BG: ColorYellow})

	// Set and SetColored replace the whole glyph, background included
	s.Set(0, 0, 'a')
	if g := s.GetCell(0, 0); g != (Glyph{Rune: 'a'}) {
		t.Errorf("after Set, GetCell = %+v, expected plain 'a'", g)
	}

	s.SetGlyph(1, 0, Glyph{Rune: 'x', BG: ColorYellow})
	s.SetColored(1, 0, 'b', ColorCyan)
	if g := s.GetCell(1, 0); g != (Glyph{Rune: 'b', FG: ColorCyan}) {
		t.Errorf("after SetColored, GetCell = %+v, expected cyan 'b' on default", g)
	}

	s.Clear()
	for x := range 3 {
		if s.GetCell(x, 0) != blank {
			t.Errorf("Clear left %+v at x=%d", s.GetCell(x, 0), x)
		}
	}
}

func TestDrawTextRunes(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string // Row contents after drawing
	}{
		{name: "ascii", x: 1, text: "ab", expected: " ab     "},
		{name: "multibyte one cell per rune", x: 0, text: "a—b", expected: "a—b     "},
		{name: "clipped right", x: 6, text: "xyz", expected: "      xy"},
		{name: "clipped left", x: -2, text: "xyz", expected: "z       "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(8, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("Row(0) = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestDrawTextCenteredCountsRunes(t *testing.T) {
	s := NewScreen(11, 1)
	s.DrawTextCentered(0, "─ok─")

	// Four runes in eleven columns start at column 3
	if got := rowText(s, 0, 3, 7); got != "─ok─" {
		t.Errorf("centered text = %q, expected %q", got, "─ok─")
	}
}

func TestDrawRectFillsOnlyRect(t *testing.T) {
	s := NewScreen(5, 4)
	s.DrawRect(NewRect(1, 1, 2, 2), '#')

	expected := []string{
		"     ",
		" ##  ",
		" ##  ",
		"     ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}
}

func TestDrawBoxOutline(t *testing.T) {
	s := NewScreen(6, 4)
	s.DrawBox(NewRect(0, 0, 5, 4), ColorCyan)

	expected := []string{
		"┌───┐ ",
		"│   │ ",
		"│   │ ",
		"└───┘ ",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("Row(%d) = %q, expected %q", y, got, want)
		}
	}

	// Border glyphs take the color, the interior stays untouched
	if g := s.GetCell(4, 3); g.FG != ColorCyan {
		t.Errorf("corner FG = %v, expected cyan", g.FG)
	}
	if g := s.GetCell(2, 1); g != blank {
		t.Errorf("interior = %+v, expected blank", g)
	}
}

func TestDrawHLine(t *testing.T) {
	s := NewScreen(6, 2)
	s.DrawHLine(1, 1, 10, '─')

	if got := s.Row(1); got != " ─────" {
		t.Errorf("Row(1) = %q, expected the line clipped at the edge", got)
	}
	if got := s.Row(0); got != "      " {
		t.Errorf("Row(0) = %q, expected untouched", got)
	}
}

func TestStringJoinsRows(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "ab")
	s.SetColored(2, 1, '█', ColorGreen)

	if got := s.String(); got != "ab \n  █" {
		t.Errorf("String() = %q, expected %q", got, "ab \n  █")
	}
}

func TestRowOutOfRange(t *testing.T) {
	s := NewScreen(4, 2)
	for _, y := range []int{-1, 2} {
		if got := s.Row(y); got != "    " {
			t.Errorf("Row(%d) = %q, expected blanks", y, got)
		}
	}
}

func TestResizeKeepsGlyphs(t *testing.T) {
	s := NewScreen(6, 4)
	top := Glyph{Rune: '▀', FG: ColorGreen, BG: ColorRed}
	s.SetGlyph(1, 1, top)
	s.SetGlyph(5, 3, top)

	s.Resize(3, 2)
	if s.Width() != 3 || s.Height() != 2 {
		t.Fatalf("size = %dx%d, expected 3x2", s.Width(), s.Height())
	}
	if got := s.GetCell(1, 1); got != top {
		t.Errorf("GetCell(1, 1) = %+v, expected the glyph to survive shrinking", got)
	}

	// Cells dropped by shrinking come back blank
	s.Resize(6, 4)
	if got := s.GetCell(1, 1); got != top {
		t.Errorf("GetCell(1, 1) = %+v, expected the glyph after growing", got)
	}
	if got := s.GetCell(5, 3); got != blank {
		t.Errorf("GetCell(5, 3) = %+v, expected blank", got)
	}
}
