// Package tui provides the main user interface model and view components.
package tui

import (
	"fmt"
	"strings"

	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/components/header"
	mainview "github.com/tesso57/sanita/internal/presentation/tui/components/main"
	"github.com/tesso57/sanita/internal/presentation/tui/components/modal"
	"github.com/tesso57/sanita/internal/presentation/tui/components/sidebar"
	"github.com/tesso57/sanita/internal/presentation/tui/metrics"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
	"github.com/tesso57/sanita/internal/presentation/tui/textutil"
	"github.com/tesso57/sanita/internal/presentation/tui/update"
	"github.com/tesso57/sanita/internal/presentation/tui/view"
)

func (m *Model) buildProps() view.Props {
	return view.Props{
		Sidebar: m.buildSidebarProps(),
		Header:  m.buildHeaderProps(),
		Main:    m.buildMainProps(),
		Modal:   m.buildModalProps(),
		Footer:  m.buildFooterProps(),
	}
}

func (m *Model) buildSidebarProps() sidebar.Props {
	return sidebar.Props{
		View:   m.state.MenuList.View(),
		Width:  m.state.MenuList.Width(),
		Height: m.state.MenuList.Height() + metrics.SidebarTitleLines + metrics.SidebarBadgeLines,
		Active: m.state.Session == state.MenuView,
		Title:  "Sanita",
		Badge:  accountBadge(m.state),
	}
}

func accountBadge(st *state.ModelState) string {
	if st.User == nil {
		return "👤 guest"
	}
	badge := "👤 " + st.User.Name
	if lines, ok := st.Screens.Cart.State().Data(); ok && len(lines) > 0 {
		badge += fmt.Sprintf(" · 🛒 %d", shop.CartCount(lines))
	}
	return badge
}

func (m *Model) buildHeaderProps() header.Props {
	title, subtitle := headerText(m.state)
	width := m.state.ContentList.Width() - metrics.HeaderWidthPadding
	return header.Props{
		Visible:  true,
		Title:    headerLine(title, width),
		Subtitle: headerLine(subtitle, width),
	}
}

func headerText(st *state.ModelState) (string, string) {
	target := st.Route()
	title := target.Route.Title()
	switch target.Route {
	case nav.Home:
		return title, "Highlights and featured plants"
	case nav.Catalog:
		return title, criteriaLabel(st)
	case nav.ItemDetail:
		if data, ok := st.Screens.Item.State().Data(); ok {
			return data.Name, fmt.Sprintf("%s · %s", data.PriceLabel(), categoryLabel(data.CategoryID))
		}
		return title, target.String()
	case nav.NewsDetail:
		if data, ok := st.Screens.NewsDetail.State().Data(); ok {
			return data.Title, data.Date
		}
		return title, target.String()
	case nav.Cart, nav.Orders:
		return title, update.UserLabel(st)
	default:
		return title, ""
	}
}

func criteriaLabel(st *state.ModelState) string {
	category := "All categories"
	if st.Criteria.CategoryID != nil {
		category = categoryLabel(*st.Criteria.CategoryID)
	}
	if st.Criteria.SearchText == "" {
		return category
	}
	return fmt.Sprintf("%s · %q", category, st.Criteria.SearchText)
}

func categoryLabel(id int) string {
	return catalog.Category(id).Label()
}

func (m *Model) buildMainProps() mainview.Props {
	route := m.state.Route().Route
	var body, notice string
	switch {
	case m.state.Loading():
		body = fmt.Sprintf("\n\n   %s Loading %s...", m.state.Spinner.View(), strings.ToLower(route.Title()))
	case update.StatusLine(m.state) != "":
		notice = update.StatusLine(m.state)
		body = fmt.Sprintf("\n   (press %s to retry)", m.state.Keys.Refresh.Help().Key)
	case route == nav.Community:
		body = presenter.CommunityBody()
	case route.NeedsID():
		body = m.state.Viewport.View()
	case len(m.state.ContentList.Items()) == 0:
		body = "\n\n   " + presenter.EmptyText(route)
	default:
		body = m.state.ContentList.View()
	}
	if m.state.Session == state.SearchView {
		body = m.state.SearchInput.View() + "\n" + body
	}

	return mainview.Props{
		Width:  m.state.ContentList.Width(),
		Height: m.state.ContentList.Height() + metrics.HeaderLines,
		Notice: notice,
		Body:   body,
	}
}

func (m *Model) buildModalProps() modal.Props {
	base := modal.Props{Visible: true, Width: m.state.Width, Height: m.state.Height}
	switch {
	case m.state.Session == state.QuitView:
		base.Kind = modal.Quit
		base.Body = "Are you sure you want to quit?\n\n(y/n)"
		return base
	case m.state.Session == state.LoginView:
		base.Kind = modal.Login
		base.Title = "Log in"
		base.Body = fmt.Sprintf(
			"Email\n%s\n\nPassword\n%s\n\n(tab to switch, enter to submit, esc to cancel)",
			m.state.Login.Email.View(),
			m.state.Login.Password.View(),
		)
		return base
	case m.state.Session == state.CheckoutView:
		base.Kind = modal.Checkout
		base.Title = "Checkout"
		base.Body = checkoutBody(m.state)
		return base
	case m.state.Help.ShowAll:
		base.Kind = modal.Help
		base.Body = m.state.Help.View(&m.state.Keys)
		return base
	}
	return modal.Props{Visible: false}
}

func checkoutBody(st *state.ModelState) string {
	var sb strings.Builder
	for _, in := range st.Checkout.Inputs {
		sb.WriteString(in.View())
		sb.WriteString("\n")
	}
	if msg := strings.TrimSpace(st.StatusMessage); msg != "" {
		sb.WriteString("\n")
		sb.WriteString(msg)
		sb.WriteString("\n")
	}
	sb.WriteString("\n(tab to move, enter on the last field to pay, esc to cancel)")
	return sb.String()
}

func (m *Model) buildFooterProps() string {
	return update.FooterContent(m.state)
}

func headerLine(text string, width int) string {
	return textutil.Truncate(textutil.SingleLine(text), width)
}
