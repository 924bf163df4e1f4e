// Package header provides the content header component.
package header

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the header component.
type Props struct {
	Visible  bool
	Title    string
	Subtitle string
}

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	subtitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)

// Render renders the two header lines: the screen title and its context.
// An empty subtitle still takes its line so the layout height stays fixed.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		titleStyle.Render("🌿 "+p.Title),
		subtitleStyle.Render("   "+p.Subtitle),
	)
}
