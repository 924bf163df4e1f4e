// Package modal provides modal dialog components.
package modal

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sanita/internal/presentation/tui/metrics"
)

// Kind represents the type of modal.
type Kind int

const (
	// None indicates no modal.
	None Kind = iota
	// Quit asks for exit confirmation.
	Quit
	// Help shows the help dialog.
	Help
	// Login shows the login form.
	Login
	// Checkout shows the payment form.
	Checkout
)

// Props defines the properties for the modal component.
type Props struct {
	Visible bool
	Kind    Kind
	Title   string
	Body    string
	Width   int
	Height  int
}

// Render renders the modal component.
func Render(p Props) string {
	if !p.Visible {
		return ""
	}

	style := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(1, 2)

	switch p.Kind {
	case Login, Checkout:
		style = style.Width(metrics.ModalWidth).BorderForeground(lipgloss.Color("205"))
	case Quit:
		style = style.BorderForeground(lipgloss.Color("205"))
	}

	body := p.Body
	if p.Title != "" {
		title := lipgloss.NewStyle().Bold(true).Render(p.Title)
		body = title + "\n\n" + body
	}

	return lipgloss.Place(p.Width, p.Height, lipgloss.Center, lipgloss.Center, style.Render(body))
}
