// Package update holds UI update logic for the TUI.
package update

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/intent"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
	"github.com/tesso57/sanita/internal/presentation/tui/screen"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

// Deps groups external dependencies for updates.
type Deps struct {
	Catalog     *usecase.CatalogService
	News        *usecase.NewsService
	Home        *usecase.HomeService
	Account     *usecase.AccountService
	Cart        *usecase.CartService
	Orders      *usecase.OrderService
	Assets      presenter.Builder
	Log         logrus.FieldLogger
	OpenBrowser func(string) error
}

func (d Deps) logger() logrus.FieldLogger {
	if d.Log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		return l
	}
	return d.Log
}

// LoginDoneMsg is emitted after the login call returns.
type LoginDoneMsg struct {
	Session account.Session
	Err     error
}

// MutationDoneMsg is emitted after a cart or order mutation returns.
// Remount names the screen that must be fetched again.
type MutationDoneMsg struct {
	Action  string
	Message string
	Err     error
	Remount nav.Route
}

// LoginCmd creates a command that performs the login call.
func LoginCmd(svc *usecase.AccountService, email, password string) tea.Cmd {
	return func() tea.Msg {
		session, err := svc.Login(context.Background(), email, password)
		return LoginDoneMsg{Session: session, Err: err}
	}
}

// MutationCmd creates a command that runs one mutation.
func MutationCmd(action string, remount nav.Route, run func(context.Context) (shop.Ack, error)) tea.Cmd {
	return func() tea.Msg {
		ack, err := run(context.Background())
		return MutationDoneMsg{Action: action, Message: ack.Message, Err: err, Remount: remount}
	}
}

// HandleKeyMsg processes key messages.
func HandleKeyMsg(s *state.ModelState, msg tea.KeyMsg, deps Deps) (tea.Cmd, bool) {
	switch s.Session {
	case state.QuitView:
		return handleQuitView(s, msg)
	case state.SearchView:
		return handleSearchView(s, msg, deps)
	case state.LoginView:
		return handleLoginView(s, msg, deps)
	case state.CheckoutView:
		return handleCheckoutView(s, msg, deps)
	}

	parsed := intent.FromKeyMsg(msg, s.Keys)
	switch parsed.Type {
	case intent.Quit:
		s.Previous = s.Session
		s.Session = state.QuitView
		return nil, true
	case intent.ToggleHelp:
		s.Help.ShowAll = !s.Help.ShowAll
		return nil, true
	case intent.Login:
		return toggleLogin(s, deps), true
	case intent.Refresh:
		s.StatusMessage = ""
		return Remount(s, deps), true
	}

	switch s.Session {
	case state.MenuView:
		return handleMenuViewIntent(s, parsed, deps)
	case state.ContentView:
		return handleContentViewIntent(s, parsed, deps)
	case state.DetailView:
		return handleDetailViewIntent(s, parsed, deps)
	default:
		return nil, false
	}
}

// HandleWindowSize updates layout dimensions.
func HandleWindowSize(s *state.ModelState, msg tea.WindowSizeMsg, deps Deps) {
	s.Width = msg.Width
	s.Height = msg.Height

	UpdateListSizes(s)
	refreshDetail(s, deps)
}

// HandleLoaded applies a fetch completion to its controller and refreshes the
// content when the completion was accepted.
func HandleLoaded[T any](s *state.ModelState, c *screen.Controller[T], msg screen.LoadedMsg[T], deps Deps) {
	if !c.Apply(msg) {
		deps.logger().WithFields(logrus.Fields{
			"screen":  msg.Screen,
			"attempt": msg.Attempt,
		}).Debug("stale completion dropped")
		return
	}
	if msg.Err != nil {
		deps.logger().WithError(msg.Err).WithField("screen", msg.Screen).Warn("screen load failed")
	}
	RefreshContent(s, deps)
	UpdateListSizes(s)
}

// HandleLoginDone stores the logged-in user or reports the rejection.
func HandleLoginDone(s *state.ModelState, msg LoginDoneMsg, deps Deps) tea.Cmd {
	s.Busy = false
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("Login failed: %v", msg.Err)
		deps.logger().WithError(msg.Err).Info("login failed")
		return nil
	}
	s.User = msg.Session.User
	s.StatusMessage = msg.Session.Message
	if s.StatusMessage == "" {
		s.StatusMessage = fmt.Sprintf("Welcome, %s.", s.User.Name)
	}
	deps.logger().WithField("user_id", s.User.ID).Info("logged in")
	return remountUserScreens(s, deps)
}

// HandleMutationDone shows the outcome and re-fetches the affected screen.
func HandleMutationDone(s *state.ModelState, msg MutationDoneMsg, deps Deps) tea.Cmd {
	s.Busy = false
	if msg.Err != nil {
		s.StatusMessage = fmt.Sprintf("%s failed: %v", msg.Action, msg.Err)
		deps.logger().WithError(msg.Err).WithField("action", msg.Action).Warn("mutation failed")
	} else {
		s.StatusMessage = msg.Message
		if s.StatusMessage == "" {
			s.StatusMessage = msg.Action + " done."
		}
	}
	if msg.Remount != "" && s.Route().Route == msg.Remount {
		return Remount(s, deps)
	}
	return nil
}

func handleQuitView(s *state.ModelState, msg tea.KeyMsg) (tea.Cmd, bool) {
	switch msg.String() {
	case "y", "Y":
		s.Screens.TeardownAll()
		return tea.Quit, true
	case "n", "N", "esc", "q", "Q":
		s.Session = s.Previous
		return nil, true
	}
	return nil, true
}

func handleMenuViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Open:
		s.Session = state.ContentView
		selectFirstEntry(&s.ContentList)
		return nil, true
	case intent.Back:
		return nil, true
	case intent.Search:
		// The menu has no search; swallow the key so the list does not filter.
		return nil, true
	}
	return nil, false
}

func handleContentViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	route := s.Route().Route
	switch in.Type {
	case intent.Back:
		s.Session = state.MenuView
		return nil, true
	case intent.Open:
		item, ok := selectedItem(s)
		if !ok {
			return nil, true
		}
		return openItem(s, item, deps), true
	case intent.Search:
		if route != nav.Catalog {
			return nil, true
		}
		s.Previous = s.Session
		s.Session = state.SearchView
		s.SearchInput.SetValue(s.Criteria.SearchText)
		s.SearchInput.CursorEnd()
		return s.SearchInput.Focus(), true
	case intent.FilterCategory:
		if route != nav.Catalog {
			return nil, false
		}
		if in.Category == nil {
			s.Criteria = s.Criteria.WithoutCategory()
		} else {
			s.Criteria = s.Criteria.WithCategory(catalogCategory(*in.Category))
		}
		RefreshContent(s, deps)
		return nil, true
	case intent.AddToCart:
		item, ok := selectedItem(s)
		if !ok || item.Kind != presenter.PlantKind {
			return nil, true
		}
		return addToCart(s, item.ID, deps), true
	case intent.Increase, intent.Decrease:
		item, ok := selectedItem(s)
		if !ok || item.Kind != presenter.CartLineKind {
			return nil, true
		}
		qty := item.Quantity + 1
		if in.Type == intent.Decrease {
			qty = item.Quantity - 1
		}
		return setQuantity(s, item.ID, qty, deps), true
	case intent.Remove:
		item, ok := selectedItem(s)
		if !ok || item.Kind != presenter.CartLineKind {
			return nil, true
		}
		return removeLine(s, item.ID, deps), true
	case intent.ClearCart:
		if route != nav.Cart {
			return nil, true
		}
		return clearCart(s, deps), true
	case intent.Checkout:
		if route != nav.Cart {
			return nil, true
		}
		return openCheckout(s), true
	case intent.Received:
		item, ok := selectedItem(s)
		if !ok || item.Kind != presenter.OrderKind || item.Done {
			return nil, true
		}
		return markReceived(s, item.ID, deps), true
	}
	return nil, false
}

func handleDetailViewIntent(s *state.ModelState, in intent.Intent, deps Deps) (tea.Cmd, bool) {
	switch in.Type {
	case intent.Back:
		return Back(s, deps), true
	case intent.AddToCart:
		if s.Route().Route != nav.ItemDetail {
			return nil, true
		}
		data, ok := s.Screens.Item.State().Data()
		if !ok {
			return nil, true
		}
		return addToCart(s, data.ID, deps), true
	case intent.OpenImage:
		openImage(s, deps)
		return nil, true
	}
	return nil, false
}

func openItem(s *state.ModelState, item *presenter.Item, deps Deps) tea.Cmd {
	switch item.Kind {
	case presenter.PlantKind, presenter.CartLineKind:
		return Navigate(s, nav.WithID(nav.ItemDetail, item.ID), true, deps)
	case presenter.NewsKind, presenter.HighlightKind:
		return Navigate(s, nav.WithID(nav.NewsDetail, item.ID), true, deps)
	default:
		return nil
	}
}

func openImage(s *state.ModelState, deps Deps) {
	var ref string
	switch s.Route().Route {
	case nav.ItemDetail:
		data, ok := s.Screens.Item.State().Data()
		if !ok {
			return
		}
		ref = data.ImageRef
	case nav.NewsDetail:
		data, ok := s.Screens.NewsDetail.State().Data()
		if !ok {
			return
		}
		ref = data.ImageRef
	default:
		return
	}
	if !asset.IsRemote(ref) {
		s.StatusMessage = "No remote image to open."
		return
	}
	if deps.OpenBrowser == nil {
		return
	}
	if err := deps.OpenBrowser(ref); err != nil {
		s.StatusMessage = fmt.Sprintf("Could not open image: %v", err)
		deps.logger().WithError(err).WithField("ref", ref).Warn("open image failed")
	}
}

func toggleLogin(s *state.ModelState, deps Deps) tea.Cmd {
	if s.User != nil {
		s.User = nil
		s.StatusMessage = "Logged out."
		return remountUserScreens(s, deps)
	}
	s.Previous = s.Session
	s.Session = state.LoginView
	resetLoginForm(&s.Login)
	return s.Login.Email.Focus()
}

func remountUserScreens(s *state.ModelState, deps Deps) tea.Cmd {
	switch s.Route().Route {
	case nav.Cart, nav.Orders:
		return Remount(s, deps)
	}
	return nil
}

func addToCart(s *state.ModelState, itemID int, deps Deps) tea.Cmd {
	uid, ok := requireUser(s)
	if !ok {
		return nil
	}
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Add to cart", nav.Cart, func(ctx context.Context) (shop.Ack, error) {
		return deps.Cart.Add(ctx, uid, itemID, 1)
	}))
}

func setQuantity(s *state.ModelState, itemID, qty int, deps Deps) tea.Cmd {
	uid, ok := requireUser(s)
	if !ok {
		return nil
	}
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Update quantity", nav.Cart, func(ctx context.Context) (shop.Ack, error) {
		return deps.Cart.SetQuantity(ctx, uid, itemID, qty)
	}))
}

func removeLine(s *state.ModelState, itemID int, deps Deps) tea.Cmd {
	uid, ok := requireUser(s)
	if !ok {
		return nil
	}
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Remove item", nav.Cart, func(ctx context.Context) (shop.Ack, error) {
		return deps.Cart.Remove(ctx, uid, itemID)
	}))
}

func clearCart(s *state.ModelState, deps Deps) tea.Cmd {
	uid, ok := requireUser(s)
	if !ok {
		return nil
	}
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Clear cart", nav.Cart, func(ctx context.Context) (shop.Ack, error) {
		return deps.Cart.Clear(ctx, uid)
	}))
}

func markReceived(s *state.ModelState, orderID int, deps Deps) tea.Cmd {
	s.Busy = true
	return tea.Batch(s.Spinner.Tick, MutationCmd("Mark received", nav.Orders, func(ctx context.Context) (shop.Ack, error) {
		return deps.Orders.MarkReceived(ctx, orderID)
	}))
}

func requireUser(s *state.ModelState) (int, bool) {
	uid, ok := s.UserID()
	if !ok {
		s.StatusMessage = "Log in first (press " + s.Keys.Login.Help().Key + ")."
	}
	return uid, ok
}

func selectedItem(s *state.ModelState) (*presenter.Item, bool) {
	item, ok := s.ContentList.SelectedItem().(*presenter.Item)
	if !ok || item == nil || item.IsSectionHeader() {
		return nil, false
	}
	return item, true
}

// selectFirstEntry moves the cursor off a leading section header.
func selectFirstEntry(model *list.Model) {
	items := model.Items()
	if idx := model.Index(); idx >= 0 && idx < len(items) {
		if item, ok := items[idx].(*presenter.Item); !ok || !item.IsSectionHeader() {
			return
		}
	}
	for i, it := range items {
		if item, ok := it.(*presenter.Item); ok && !item.IsSectionHeader() {
			model.Select(i)
			return
		}
	}
}
