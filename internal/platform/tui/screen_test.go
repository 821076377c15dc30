package tui

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(20, 6)

	if s.Width() != 20 || s.Height() != 6 {
		t.Fatalf("size = %dx%d, expected 20x6", s.Width(), s.Height())
	}
	for y := 0; y < s.Height(); y++ {
		for x := 0; x < s.Width(); x++ {
			if c := s.GetCell(x, y); c.Rune != ' ' || c.Color != ColorDefault {
				t.Fatalf("new screen cell (%d, %d) = %+v, expected blank", x, y, c)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.Set(5, 5, 'X', ColorRed)
	if c := s.GetCell(5, 5); c.Rune != 'X' || c.Color != ColorRed {
		t.Errorf("GetCell(5, 5) = %+v, expected red X", c)
	}

	// Out of bounds is silent
	s.Set(-1, 0, 'A', ColorRed)
	s.Set(100, 0, 'A', ColorRed)
	s.Set(0, -1, 'A', ColorRed)
	s.Set(0, 100, 'A', ColorRed)

	if s.GetCell(-1, 0).Rune != ' ' || s.GetCell(100, 0).Rune != ' ' {
		t.Error("out of bounds GetCell should return a blank cell")
	}
}

func TestScreenClearAndResize(t *testing.T) {
	s := NewScreen(4, 2)
	s.DrawText(0, 0, "abcd", ColorGreen)
	s.Clear()
	if got := s.Row(0); got != "    " {
		t.Errorf("after Clear row 0 = %q", got)
	}

	s.DrawText(0, 1, "xy", ColorGreen)
	s.Resize(4, 2)
	if got := s.Row(1); got != "xy  " {
		t.Errorf("same-size Resize should keep content, row 1 = %q", got)
	}

	s.Resize(6, 3)
	if s.Width() != 6 || s.Height() != 3 {
		t.Fatalf("size = %dx%d, expected 6x3", s.Width(), s.Height())
	}
	if got := s.String(); got != strings.Repeat(strings.Repeat(" ", 6)+"\n", 2)+strings.Repeat(" ", 6) {
		t.Errorf("Resize should clear, got %q", got)
	}
}

func TestScreenDrawText(t *testing.T) {
	s := NewScreen(10, 1)
	s.DrawText(8, 0, "héllo", ColorWhite)
	if got := s.Row(0); got != "        hé" {
		t.Errorf("row = %q, expected clipped text", got)
	}

	s.Clear()
	s.DrawTextCentered(0, "ab", ColorWhite)
	if got := s.Row(0); got != "    ab    " {
		t.Errorf("centered row = %q", got)
	}
}

func TestScreenDrawBox(t *testing.T) {
	s := NewScreen(5, 3)
	s.DrawText(0, 1, "xxxxx", ColorRed)
	s.DrawBox(0, 0, 5, 3, ColorWhite)

	expected := []string{
		"┌───┐",
		"│   │",
		"└───┘",
	}
	for y, want := range expected {
		if got := s.Row(y); got != want {
			t.Errorf("row %d = %q, expected %q", y, got, want)
		}
	}
}
