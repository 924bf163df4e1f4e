package update

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/lipgloss"
	"github.com/tesso57/sanita/internal/presentation/tui/metrics"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

type layoutMetrics struct {
	sidebarWidth      int
	mainWidth         int
	sidebarListHeight int
	mainListHeight    int
}

// UpdateListSizes fits the menu, content list and detail viewport to the window.
func UpdateListSizes(s *state.ModelState) {
	if s.Width <= 0 || s.Height <= 0 {
		return
	}

	layout := buildLayoutMetrics(s)
	s.MenuList.SetSize(layout.sidebarWidth, layout.sidebarListHeight)
	s.ContentList.SetSize(layout.mainWidth, layout.mainListHeight)
	s.Viewport.Width = layout.mainWidth
	s.Viewport.Height = layout.mainListHeight
}

func buildLayoutMetrics(s *state.ModelState) layoutMetrics {
	footerHeight := footerHeight(s)
	availableHeight := clampMin(s.Height-footerHeight, 1)

	mainListHeight := clampMin(availableHeight-metrics.HeaderLines, 1)
	sidebarListHeight := clampMin(availableHeight-metrics.SidebarTitleLines-metrics.SidebarBadgeLines, 1)

	sidebarWidth := clampMin(s.Width/4, metrics.SidebarMinWidth)
	mainWidth := clampMin(s.Width-sidebarWidth-metrics.SidebarRightBorderWidth, 1)

	sidebarListHeight = reservePaginationSpace(s.MenuList, sidebarListHeight)
	mainListHeight = reservePaginationSpace(s.ContentList, mainListHeight)

	return layoutMetrics{
		sidebarWidth:      sidebarWidth,
		mainWidth:         mainWidth,
		sidebarListHeight: sidebarListHeight,
		mainListHeight:    mainListHeight,
	}
}

func footerHeight(s *state.ModelState) int {
	return lipgloss.Height(FooterContent(s))
}

// FooterContent returns the footer text: status, login state and key help.
func FooterContent(s *state.ModelState) string {
	s.Help.Width = s.Width
	helpText := s.Help.View(&s.Keys)
	return state.FooterText(s.Session, s.Loading(), s.StatusMessage, UserLabel(s), helpText)
}

// UserLabel describes the login state for the footer.
func UserLabel(s *state.ModelState) string {
	if s.User == nil {
		return fmt.Sprintf("Not logged in (%s to log in)", s.Keys.Login.Help().Key)
	}
	return fmt.Sprintf("Logged in as %s", s.User.Name)
}

func reservePaginationSpace(m list.Model, height int) int {
	if height < 1 || !m.ShowPagination() {
		return height
	}
	if height <= 1 {
		return height
	}

	statusHeight := 0
	if m.ShowStatusBar() {
		statusHeight = 1
	}

	availHeight := height - statusHeight
	if availHeight < 1 {
		return height
	}

	if len(m.VisibleItems()) > availHeight {
		return height - 1
	}
	return height
}

func clampMin(value, min int) int {
	if value < min {
		return min
	}
	return value
}
