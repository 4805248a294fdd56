package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/flappy/internal/core"
)

// colorStyles maps core.Color to lipgloss styles.
var colorStyles = map[core.Color]lipgloss.Style{
	core.ColorDefault:    lipgloss.NewStyle(),
	core.ColorSky:        lipgloss.NewStyle().Foreground(lipgloss.Color("117")),
	core.ColorGround:     lipgloss.NewStyle().Foreground(lipgloss.Color("136")),
	core.ColorGroundEdge: lipgloss.NewStyle().Foreground(lipgloss.Color("142")),
	core.ColorPipe:       lipgloss.NewStyle().Foreground(lipgloss.Color("34")),
	core.ColorPipeEdge:   lipgloss.NewStyle().Foreground(lipgloss.Color("40")),
	core.ColorBird:       lipgloss.NewStyle().Foreground(lipgloss.Color("226")),
	core.ColorBeak:       lipgloss.NewStyle().Foreground(lipgloss.Color("208")),
	core.ColorText:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")).Bold(true),
	core.ColorTextShadow: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
}

var helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same color to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := 0; y < s.Height(); y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			color := s.GetCell(x, y).Color

			var run strings.Builder
			for x < s.Width() {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			style, ok := colorStyles[color]
			if !ok {
				style = colorStyles[core.ColorDefault]
			}
			sb.WriteString(style.Render(run.String()))
		}
	}
	return sb.String()
}
