package state

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/screen"
)

// Screens groups one controller per fetching route.
type Screens struct {
	Home       *screen.Controller[usecase.HomeSummary]
	Catalog    *screen.Controller[[]catalog.Item]
	Item       *screen.Controller[catalog.Item]
	News       *screen.Controller[[]news.Item]
	NewsDetail *screen.Controller[news.Item]
	Cart       *screen.Controller[[]shop.CartLine]
	Orders     *screen.Controller[[]shop.Order]
}

// TeardownAll unmounts every screen.
func (s *Screens) TeardownAll() {
	s.Home.Teardown()
	s.Catalog.Teardown()
	s.Item.Teardown()
	s.News.Teardown()
	s.NewsDetail.Teardown()
	s.Cart.Teardown()
	s.Orders.Teardown()
}

// Phase returns the view phase of the screen behind r, and false for
// routes without a fetch.
func (s *Screens) Phase(r nav.Route) (screen.Phase, bool) {
	switch r {
	case nav.Home:
		return s.Home.State().Phase(), true
	case nav.Catalog:
		return s.Catalog.State().Phase(), true
	case nav.ItemDetail:
		return s.Item.State().Phase(), true
	case nav.News:
		return s.News.State().Phase(), true
	case nav.NewsDetail:
		return s.NewsDetail.State().Phase(), true
	case nav.Cart:
		return s.Cart.State().Phase(), true
	case nav.Orders:
		return s.Orders.State().Phase(), true
	default:
		return screen.PhaseReady, false
	}
}

// Mounted reports whether the screen behind r has a live attempt.
func (s *Screens) Mounted(r nav.Route) bool {
	switch r {
	case nav.Home:
		return s.Home.Mounted()
	case nav.Catalog:
		return s.Catalog.Mounted()
	case nav.ItemDetail:
		return s.Item.Mounted()
	case nav.News:
		return s.News.Mounted()
	case nav.NewsDetail:
		return s.NewsDetail.Mounted()
	case nav.Cart:
		return s.Cart.Mounted()
	case nav.Orders:
		return s.Orders.Mounted()
	default:
		return false
	}
}

// FailureMessage returns the Failed message of the screen behind r.
func (s *Screens) FailureMessage(r nav.Route) string {
	var msg string
	switch r {
	case nav.Home:
		msg, _ = s.Home.State().Message()
	case nav.Catalog:
		msg, _ = s.Catalog.State().Message()
	case nav.ItemDetail:
		msg, _ = s.Item.State().Message()
	case nav.News:
		msg, _ = s.News.State().Message()
	case nav.NewsDetail:
		msg, _ = s.NewsDetail.State().Message()
	case nav.Cart:
		msg, _ = s.Cart.State().Message()
	case nav.Orders:
		msg, _ = s.Orders.State().Message()
	}
	return msg
}

// CheckoutForm holds the payment form inputs in tab order.
type CheckoutForm struct {
	Inputs []textinput.Model
	Focus  int
}

// Checkout form field indexes.
const (
	FieldCardNumber = iota
	FieldCardMonth
	FieldCardYear
	FieldCardCVV
	FieldAddress
	FieldStreetNumber
	FieldDNI
	CheckoutFieldCount
)

// LoginForm holds the email and masked password inputs.
type LoginForm struct {
	Email    textinput.Model
	Password textinput.Model
	Focus    int
}

// ModelState holds the presentation state for the TUI.
type ModelState struct {
	Session       Session
	Previous      Session
	Nav           *nav.Stack
	Screens       Screens
	MenuList      list.Model
	ContentList   list.Model
	SearchInput   textinput.Model
	Login         LoginForm
	Checkout      CheckoutForm
	Viewport      viewport.Model
	Help          help.Model
	Spinner       spinner.Model
	Keys          KeyMap
	Width         int
	Height        int
	Criteria      catalog.Criteria
	User          *account.User
	Busy          bool
	StatusMessage string
	Err           error
}

// Route returns the current navigation target.
func (s *ModelState) Route() nav.Target {
	if s.Nav == nil {
		return nav.To(nav.Home)
	}
	return s.Nav.Current()
}

// UserID returns the logged-in user's id.
func (s *ModelState) UserID() (int, bool) {
	if s.User == nil {
		return 0, false
	}
	return s.User.ID, true
}

// Loading reports whether the current screen is waiting for its fetch or a
// mutation is in flight.
func (s *ModelState) Loading() bool {
	if s.Busy {
		return true
	}
	route := s.Route().Route
	phase, ok := s.Screens.Phase(route)
	return ok && phase == screen.PhaseLoading && s.Screens.Mounted(route)
}
