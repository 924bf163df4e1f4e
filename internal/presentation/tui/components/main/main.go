// Package mainview provides the main content area component.
package mainview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Props defines the properties for the main view component.
type Props struct {
	Width  int
	Height int
	Header string
	// Notice is an error line shown between the header and the body.
	Notice string
	Body   string
}

var noticeStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203"))

// Render renders the main view component.
func Render(p Props) string {
	parts := make([]string, 0, 3)
	if p.Header != "" {
		parts = append(parts, p.Header)
	}
	if p.Notice != "" {
		parts = append(parts, "", noticeStyle.Width(max(p.Width-1, 1)).Render(p.Notice))
	}
	if p.Body != "" {
		parts = append(parts, p.Body)
	}

	return lipgloss.NewStyle().
		Width(p.Width).
		Height(p.Height).
		PaddingLeft(1).
		Render(strings.Join(parts, "\n"))
}
