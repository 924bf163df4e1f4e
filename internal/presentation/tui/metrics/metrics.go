// Package metrics centralizes layout constants for the TUI.
package metrics

const (
	HeaderLines             = 2
	SidebarTitleLines       = 2
	SidebarBadgeLines       = 1
	SidebarMinWidth         = 18
	SidebarRightBorderWidth = 1
	HeaderWidthPadding      = 7
	ModalWidth              = 48
	MinMainWidth            = 20

	ItemRightPadding  = 1
	ItemSafetyPadding = 1
)
