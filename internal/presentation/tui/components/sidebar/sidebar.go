// Package sidebar provides the sidebar component.
package sidebar

import (
	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the sidebar component.
type Props struct {
	View   string
	Width  int
	Height int
	Title  string
	// Badge is a one-line account summary pinned under the menu.
	Badge  string
	Active bool
}

var (
	titleStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			PaddingBottom(1).
			Bold(true).
			Foreground(lipgloss.Color("42"))
	badgeStyle = lipgloss.NewStyle().
			PaddingLeft(2).
			Faint(true)
)

// Render renders the sidebar component.
func Render(p Props) string {
	border := lipgloss.Color("63")
	if p.Active {
		border = lipgloss.Color("205")
	}
	style := lipgloss.NewStyle().
		Width(p.Width).
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(border)

	menu := lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(p.Title), p.View)
	if p.Badge == "" {
		return style.Height(p.Height).Render(menu)
	}

	// The badge sits on the last row whatever the menu length.
	menu = lipgloss.NewStyle().Height(max(p.Height-1, lipgloss.Height(menu))).Render(menu)
	badge := badgeStyle.MaxWidth(p.Width).Render(p.Badge)
	return style.Render(lipgloss.JoinVertical(lipgloss.Left, menu, badge))
}
