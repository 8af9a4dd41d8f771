package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"

	"github.com/vovakirdan/skyhop/internal/core"
)

func TestRenderScreenKeepsText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.SetColor(0, 0, '▓', core.ColorGray)
	s.SetColor(1, 0, '▓', core.ColorGray)
	s.SetColor(2, 0, '★', core.ColorYellow)
	s.SetColor(3, 1, '█', core.ColorBrightBlue)

	got := ansi.Strip(RenderScreen(s))
	expected := "▓▓★   \n   █  "
	if got != expected {
		t.Errorf("RenderScreen() = %q, expected %q", got, expected)
	}
}

func TestRenderScreenRowCount(t *testing.T) {
	s := core.NewScreen(4, 3)
	lines := strings.Split(ansi.Strip(RenderScreen(s)), "\n")
	if len(lines) != 3 {
		t.Fatalf("rows = %d, expected 3", len(lines))
	}
	for i, line := range lines {
		if line != "    " {
			t.Errorf("row %d = %q, expected blank", i, line)
		}
	}
}

func TestStyleForUnknownColor(t *testing.T) {
	if got := styleFor(core.Color(200)).Render("x"); got != "x" {
		t.Errorf("styleFor(unknown).Render() = %q, expected %q", got, "x")
	}
}
