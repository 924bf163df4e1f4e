// Package listview provides list item delegates for the view layer.
package listview

import (
	"fmt"
	"io"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// EntryItem interface for items that can be rendered by EntryDelegate.
type EntryItem interface {
	list.Item
	Title() string
	Description() string
	IsSectionHeader() bool
	IsDone() bool
}

// EntryDelegate renders content rows: plants, articles, cart lines and orders.
type EntryDelegate struct {
	Styles  list.DefaultItemStyles
	Section lipgloss.Style
}

// NewEntryDelegate creates a new EntryDelegate.
func NewEntryDelegate(highlight lipgloss.Color) *EntryDelegate {
	return &EntryDelegate{
		Styles:  withItemPadding(list.NewDefaultItemStyles()),
		Section: lipgloss.NewStyle().Bold(true).Foreground(highlight).PaddingLeft(1),
	}
}

// Height returns the height of the item.
func (d *EntryDelegate) Height() int {
	return 1
}

// Spacing returns the spacing between items.
func (d *EntryDelegate) Spacing() int {
	return 0
}

// Update handles messages for the delegate.
func (d *EntryDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd {
	return nil
}

// Render renders the item.
func (d *EntryDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	i, ok := item.(EntryItem)
	if !ok {
		return
	}

	if i.IsSectionHeader() {
		renderItemText(w, d.Section, truncateItemText(m, d.Section, i.Title()))
		return
	}

	text := i.Title()
	if desc := i.Description(); desc != "" {
		text = fmt.Sprintf("%s  %s", text, desc)
	}
	if i.IsDone() {
		text = doneMark + text
	}

	style := itemStyle(d.Styles, m, index)
	text = truncateItemText(m, style, text)
	if i.IsDone() {
		text = markDone(text, index == m.Index())
	}
	renderItemText(w, style, text)
}
