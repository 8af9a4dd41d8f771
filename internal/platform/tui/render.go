package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vovakirdan/skyhop/internal/core"
)

func fg(code string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(code))
}

// cellStyles maps core.Color to lipgloss styles. The character and the star
// are bold so they stand out against the platforms.
var cellStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorRed:        fg("1"),
	core.ColorGreen:      fg("2"),
	core.ColorCyan:       fg("6"),
	core.ColorGray:       fg("245"),
	core.ColorYellow:     fg("220").Bold(true),
	core.ColorBrightBlue: fg("12").Bold(true),
	core.ColorSkin:       fg("223").Bold(true),
	core.ColorPink:       fg("205").Bold(true),
}

func styleFor(c core.Color) lipgloss.Style {
	if st, ok := cellStyles[c]; ok {
		return st
	}
	return cellStyles[core.ColorDefault]
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Each row is split into same-color runs so a run costs one escape sequence.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var sb strings.Builder
	sb.Grow(w*h*2 + h)

	runes := make([]rune, 0, w)
	for y := range h {
		if y > 0 {
			sb.WriteByte('\n')
		}

		runes = runes[:0]
		color := s.GetCell(0, y).Color
		for x := range w {
			cell := s.GetCell(x, y)
			if cell.Color != color {
				sb.WriteString(styleFor(color).Render(string(runes)))
				runes, color = runes[:0], cell.Color
			}
			runes = append(runes, cell.Rune)
		}
		if len(runes) > 0 {
			sb.WriteString(styleFor(color).Render(string(runes)))
		}
	}
	return sb.String()
}
