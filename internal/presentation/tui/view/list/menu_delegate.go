package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// MenuItem interface for items that can be rendered by MenuDelegate.
type MenuItem interface {
	list.Item
	Title() string
}

// MenuDelegate handles rendering of sidebar entries.
type MenuDelegate struct {
	Styles list.DefaultItemStyles
	Theme  lipgloss.Color
}

// NewMenuDelegate creates a new MenuDelegate.
func NewMenuDelegate(themeColor lipgloss.Color) *MenuDelegate {
	styles := list.NewDefaultItemStyles()
	styles.NormalTitle = styles.NormalTitle.Foreground(themeColor)
	return &MenuDelegate{
		Styles: styles,
		Theme:  themeColor,
	}
}

// Height returns the height of the item.
func (d MenuDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d MenuDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d MenuDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d MenuDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(MenuItem)
	if !ok {
		return
	}

	title := i.Title()
	if index == m.Index() {
		title = d.Styles.SelectedTitle.Render(title)
	} else {
		title = d.Styles.NormalTitle.Render(title)
	}

	_, _ = fmt.Fprint(w, title)
}
