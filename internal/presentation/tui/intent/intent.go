// Package intent parses user input into UI intents.
package intent

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

// Type represents a user intent.
type Type int

const (
	None Type = iota
	Quit
	ToggleHelp
	Open
	Back
	Refresh
	Search
	FilterCategory
	AddToCart
	Increase
	Decrease
	Remove
	ClearCart
	Checkout
	Received
	Login
	OpenImage
)

// Intent represents a parsed user intent.
type Intent struct {
	Type Type
	// Category is set for FilterCategory; nil clears the filter.
	Category *int
}

// FromKeyMsg maps a key message to an intent.
func FromKeyMsg(msg tea.KeyMsg, keys state.KeyMap) Intent {
	switch {
	case key.Matches(msg, keys.Quit):
		return Intent{Type: Quit}
	case key.Matches(msg, keys.Help):
		return Intent{Type: ToggleHelp}
	case key.Matches(msg, keys.Right) || key.Matches(msg, keys.Open):
		return Intent{Type: Open}
	case key.Matches(msg, keys.Left) || key.Matches(msg, keys.Back):
		return Intent{Type: Back}
	case key.Matches(msg, keys.Refresh):
		return Intent{Type: Refresh}
	case key.Matches(msg, keys.Search):
		return Intent{Type: Search}
	case key.Matches(msg, keys.AllPlants):
		return Intent{Type: FilterCategory}
	case key.Matches(msg, keys.Healing):
		return Intent{Type: FilterCategory, Category: new(int(catalog.Healing))}
	case key.Matches(msg, keys.Immune):
		return Intent{Type: FilterCategory, Category: new(int(catalog.Immune))}
	case key.Matches(msg, keys.AddToCart):
		return Intent{Type: AddToCart}
	case key.Matches(msg, keys.Increase):
		return Intent{Type: Increase}
	case key.Matches(msg, keys.Decrease):
		return Intent{Type: Decrease}
	case key.Matches(msg, keys.ClearCart):
		return Intent{Type: ClearCart}
	case key.Matches(msg, keys.Remove):
		return Intent{Type: Remove}
	case key.Matches(msg, keys.Checkout):
		return Intent{Type: Checkout}
	case key.Matches(msg, keys.Received):
		return Intent{Type: Received}
	case key.Matches(msg, keys.Login):
		return Intent{Type: Login}
	case key.Matches(msg, keys.OpenImage):
		return Intent{Type: OpenImage}
	default:
		return Intent{Type: None}
	}
}
