// Package state holds UI state types for the TUI.
package state

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/tesso57/sanita/internal/application/settings"
)

// Session represents which part of the UI owns keyboard input.
type Session int

const (
	MenuView Session = iota
	ContentView
	DetailView
	SearchView
	LoginView
	CheckoutView
	QuitView
)

// KeyMap defines the keybindings for the application.
type KeyMap struct {
	Up        key.Binding
	Down      key.Binding
	Left      key.Binding
	Right     key.Binding
	UpPage    key.Binding
	DownPage  key.Binding
	Open      key.Binding
	Back      key.Binding
	Quit      key.Binding
	Refresh   key.Binding
	Search    key.Binding
	AllPlants key.Binding
	Healing   key.Binding
	Immune    key.Binding
	AddToCart key.Binding
	Increase  key.Binding
	Decrease  key.Binding
	Remove    key.Binding
	ClearCart key.Binding
	Checkout  key.Binding
	Received  key.Binding
	Login     key.Binding
	OpenImage key.Binding
	Help      key.Binding
}

// ShortHelp returns a subset of keybindings for the help view.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit, k.Back, k.Open, k.Login}
}

// FullHelp returns all keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.UpPage, k.DownPage, k.Open, k.Back},
		{k.Search, k.AllPlants, k.Healing, k.Immune},
		{k.AddToCart, k.Increase, k.Decrease, k.Remove},
		{k.ClearCart, k.Checkout, k.Received, k.OpenImage},
		{k.Refresh, k.Login, k.Quit, k.Help},
	}
}

// NewKeyMap creates a new KeyMap from the configuration.
func NewKeyMap(cfg settings.KeyMapConfig) KeyMap {
	return KeyMap{
		Up:        binding(cfg.Up, "up"),
		Down:      binding(cfg.Down, "down"),
		Left:      binding(cfg.Left, "back/menu"),
		Right:     binding(cfg.Right, "open"),
		UpPage:    binding(cfg.UpPage, "pgup"),
		DownPage:  binding(cfg.DownPage, "pgdn"),
		Open:      binding(cfg.Open, "open"),
		Back:      binding(cfg.Back, "back"),
		Quit:      binding(cfg.Quit, "quit"),
		Refresh:   binding(cfg.Refresh, "reload"),
		Search:    binding(cfg.Search, "search"),
		AllPlants: binding("0", "all plants"),
		Healing:   binding("1", "healing"),
		Immune:    binding("2", "immune"),
		AddToCart: binding(cfg.AddToCart, "add to cart"),
		Increase:  binding(cfg.Increase, "qty +1"),
		Decrease:  binding(cfg.Decrease, "qty -1"),
		Remove:    binding(cfg.Remove, "remove"),
		ClearCart: binding(cfg.ClearCart, "clear cart"),
		Checkout:  binding(cfg.Checkout, "checkout"),
		Received:  binding(cfg.Received, "mark received"),
		Login:     binding(cfg.Login, "login/logout"),
		OpenImage: binding(cfg.OpenImage, "open image"),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
	}
}

func binding(keys, help string) key.Binding {
	return key.NewBinding(
		key.WithKeys(splitKeys(keys)...),
		key.WithHelp(keys, help),
	)
}

func splitKeys(keys string) []string {
	parts := strings.Split(keys, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		keyName := strings.TrimSpace(part)
		if keyName == "" {
			continue
		}
		out = append(out, keyName)
		switch keyName {
		case "pgdn":
			out = append(out, "pgdown")
		case "pgdown":
			out = append(out, "pgdn")
		}
	}
	return out
}
