package core

import (
	"strings"
	"testing"
)

func TestNewScreen(t *testing.T) {
	s := NewScreen(80, 24)

	if s.Width() != 80 || s.Height() != 24 {
		t.Fatalf("size = %dx%d, expected 80x24", s.Width(), s.Height())
	}

	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.GetCell(x, y); c != (Cell{Rune: ' '}) {
				t.Fatalf("new screen should be blank, got %+v at (%d, %d)", c, x, y)
			}
		}
	}
}

func TestScreenSetGet(t *testing.T) {
	s := NewScreen(10, 10)

	s.SetColored(5, 5, '█', ColorCyan)
	if c := s.GetCell(5, 5); c.Rune != '█' || c.Color != ColorCyan {
		t.Errorf("GetCell(5, 5) = %+v, expected cyan block", c)
	}

	s.Set(2, 2, 'X')
	if c := s.GetCell(2, 2); c.Rune != 'X' || c.Color != ColorDefault {
		t.Errorf("GetCell(2, 2) = %+v, expected default X", c)
	}

	// Out of bounds is silent.
	s.Set(-1, 0, 'A')
	s.Set(100, 0, 'A')
	s.Set(0, -1, 'A')
	s.Set(0, 100, 'A')

	if s.Get(-1, 0) != ' ' || s.Get(100, 0) != ' ' {
		t.Error("out of bounds Get should return space")
	}
}

func TestScreenClear(t *testing.T) {
	s := NewScreen(4, 4)
	for y := range 4 {
		s.DrawHLine(0, y, 4, '#', ColorRed)
	}

	s.Clear()

	for y := range 4 {
		if s.Row(y) != "    " {
			t.Errorf("row %d = %q after Clear", y, s.Row(y))
		}
		if s.GetCell(0, y).Color != ColorDefault {
			t.Errorf("row %d kept its color after Clear", y)
		}
	}
}

func TestScreenDrawText(t *testing.T) {
	tests := []struct {
		name     string
		x        int
		text     string
		expected string
	}{
		{"simple", 0, "Hello", "Hello     "},
		{"offset", 3, "Hi", "   Hi     "},
		{"clipped right", 7, "Hello", "       Hel"},
		{"clipped left", -2, "Hello", "llo       "},
		{"multibyte", 0, "║Lines", "║Lines    "},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewScreen(10, 1)
			s.DrawText(tc.x, 0, tc.text)
			if got := s.Row(0); got != tc.expected {
				t.Errorf("row = %q, expected %q", got, tc.expected)
			}
		})
	}
}

func TestScreenDrawTextCentered(t *testing.T) {
	s := NewScreen(12, 1)
	s.DrawTextCentered(NewRect(1, 0, 10, 1), 0, "Pause", ColorWhite)

	if got := s.Row(0); got != "   Pause    " {
		t.Errorf("row = %q", got)
	}
	if s.GetCell(3, 0).Color != ColorWhite {
		t.Error("centered text should carry its color")
	}
}

func TestScreenLines(t *testing.T) {
	s := NewScreen(5, 5)
	s.DrawHLine(0, 4, 5, '═', ColorGray)
	s.DrawVLine(0, 0, 4, '║', ColorGray)

	if got := s.Row(4); got != "═════" {
		t.Errorf("bottom row = %q", got)
	}
	for y := range 4 {
		if s.Get(0, y) != '║' {
			t.Errorf("left border missing at row %d", y)
		}
	}
}

func TestScreenString(t *testing.T) {
	s := NewScreen(3, 2)
	s.DrawText(0, 0, "abc")
	s.DrawText(0, 1, "def")

	if got := s.String(); got != "abc\ndef" {
		t.Errorf("String() = %q", got)
	}
	if n := strings.Count(NewScreen(4, 3).String(), "\n"); n != 2 {
		t.Errorf("expected 2 newlines, got %d", n)
	}
}

func TestScreenBounds(t *testing.T) {
	b := NewScreen(4, 2).Bounds()
	if b != NewRect(0, 0, 4, 2) {
		t.Errorf("Bounds() = %+v", b)
	}
	if !b.Contains(3, 1) || b.Contains(4, 1) {
		t.Error("Bounds() should cover exactly the buffer")
	}
	if !NewScreen(-1, 3).Bounds().Empty() {
		t.Error("negative width should give an empty screen")
	}
}
