package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/tui-splitter/internal/core"
)

// Theme maps cell roles to lipgloss styles.
type Theme map[core.Color]lipgloss.Style

// DefaultTheme is the colour theme used by the game view.
var DefaultTheme = Theme{
	core.ColorDefault:   lipgloss.NewStyle(),
	core.ColorHUD:       lipgloss.NewStyle().Foreground(lipgloss.Color("15")),
	core.ColorStatus:    lipgloss.NewStyle().Foreground(lipgloss.Color("6")),
	core.ColorWon:       lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true),
	core.ColorLost:      lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	core.ColorFlash:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")),
	core.ColorCaptured:  lipgloss.NewStyle().Foreground(lipgloss.Color("24")).Background(lipgloss.Color("17")),
	core.ColorSeam:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	core.ColorPreview:   lipgloss.NewStyle().Foreground(lipgloss.Color("45")),
	core.ColorWall:      lipgloss.NewStyle().Foreground(lipgloss.Color("208")).Bold(true),
	core.ColorBall:      lipgloss.NewStyle().Foreground(lipgloss.Color("231")),
	core.ColorCrosshair: lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
	core.ColorFrame:     lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
	core.ColorTitle:     lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
}

// Style returns the style for a role, falling back to the default style.
func (t Theme) Style(c core.Color) lipgloss.Style {
	if style, ok := t[c]; ok {
		return style
	}
	return t[core.ColorDefault]
}

// Render converts a screen buffer to a styled string.
// Adjacent cells of the same role share one styled span.
func (t Theme) Render(s *core.Screen) string {
	var sb strings.Builder
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	var span strings.Builder
	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			role := s.GetCell(x, y).Color
			span.Reset()
			for ; x < s.Width(); x++ {
				cell := s.GetCell(x, y)
				if cell.Color != role {
					break
				}
				span.WriteRune(cell.Rune)
			}
			sb.WriteString(t.Style(role).Render(span.String()))
		}
	}
	return sb.String()
}

// RenderScreen renders a screen buffer with the default theme.
func RenderScreen(s *core.Screen) string {
	return DefaultTheme.Render(s)
}
