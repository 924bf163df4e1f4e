// Package view orchestrates the composition of UI components.
package view

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sanita/internal/presentation/tui/components/header"
	"github.com/tesso57/sanita/internal/presentation/tui/components/layout"
	mainview "github.com/tesso57/sanita/internal/presentation/tui/components/main"
	"github.com/tesso57/sanita/internal/presentation/tui/components/modal"
	"github.com/tesso57/sanita/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/sanita/internal/presentation/tui/metrics"
)

// TooSmallText replaces the screen when the content column cannot fit a row.
const TooSmallText = "Window too small for Sanita. Enlarge the terminal."

// Props aggregates properties for all UI components.
type Props struct {
	Sidebar sidebar.Props
	Header  header.Props
	Main    mainview.Props
	Modal   modal.Props
	Footer  string
}

// Render draws one frame. A visible modal (quit, help, login, checkout)
// takes the whole window; otherwise the menu column, the current screen
// and the footer are laid out side by side.
func Render(p Props) string {
	if p.Modal.Visible {
		return modal.Render(p.Modal)
	}
	if p.Main.Width > 0 && p.Main.Width < metrics.MinMainWidth {
		return lipgloss.NewStyle().Faint(true).Render(TooSmallText)
	}

	p.Main.Header = header.Render(p.Header)
	return layout.Render(layout.Props{
		Sidebar: sidebar.Render(p.Sidebar),
		Main:    mainview.Render(p.Main),
		Footer:  p.Footer,
	})
}
