package update

import (
	"context"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sanita/internal/application/remote"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/screen"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

const minDetailWidth = 20

// NewScreens builds one controller per fetching route. Screens scoped by an
// id or a user get their resource bound when they mount.
func NewScreens(deps Deps) state.Screens {
	return state.Screens{
		Home:       screen.NewController(string(nav.Home), remote.New("home", deps.Home.Load)),
		Catalog:    screen.NewController(string(nav.Catalog), remote.New("plants", deps.Catalog.List)),
		Item:       screen.NewController(string(nav.ItemDetail), itemResource(deps, 0)),
		News:       screen.NewController(string(nav.News), remote.New("news", deps.News.List)),
		NewsDetail: screen.NewController(string(nav.NewsDetail), articleResource(deps, 0)),
		Cart:       screen.NewController(string(nav.Cart), cartResource(deps, 0)),
		Orders:     screen.NewController(string(nav.Orders), ordersResource(deps, 0)),
	}
}

func itemResource(deps Deps, id int) remote.Resource[catalog.Item] {
	return remote.New("plant", func(ctx context.Context) (catalog.Item, error) {
		return deps.Catalog.Get(ctx, id)
	})
}

func articleResource(deps Deps, id int) remote.Resource[news.Item] {
	return remote.New("article", func(ctx context.Context) (news.Item, error) {
		return deps.News.Get(ctx, id)
	})
}

func cartResource(deps Deps, userID int) remote.Resource[[]shop.CartLine] {
	return remote.New("cart", func(ctx context.Context) ([]shop.CartLine, error) {
		return deps.Cart.List(ctx, userID)
	})
}

func ordersResource(deps Deps, userID int) remote.Resource[[]shop.Order] {
	return remote.New("orders", func(ctx context.Context) ([]shop.Order, error) {
		return deps.Orders.List(ctx, userID)
	})
}

// Navigate moves to t. With push the target is stacked on top of the current
// route; otherwise every screen is torn down and t becomes the new root.
func Navigate(s *state.ModelState, t nav.Target, push bool, deps Deps) tea.Cmd {
	if s.Nav == nil {
		s.Nav = nav.NewStack(t)
	} else if push {
		s.Nav.Push(t)
	} else {
		s.Screens.TeardownAll()
		s.Nav.Reset(t)
		s.Criteria = catalog.Criteria{}
		s.SearchInput.SetValue("")
		s.ContentList.ResetSelected()
	}

	if t.Route.NeedsID() {
		s.Session = state.DetailView
		s.Viewport.GotoTop()
	}

	cmd := MountRoute(s, t, deps)
	RefreshContent(s, deps)
	UpdateListSizes(s)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, s.Spinner.Tick)
}

// Back pops the current route. The detail screen is torn down and the
// screen below keeps the data it already had.
func Back(s *state.ModelState, deps Deps) tea.Cmd {
	current := s.Route()
	if _, ok := s.Nav.Back(); !ok {
		s.Session = state.MenuView
		return nil
	}
	switch current.Route {
	case nav.ItemDetail:
		s.Screens.Item.Teardown()
	case nav.NewsDetail:
		s.Screens.NewsDetail.Teardown()
	}

	s.Session = state.ContentView
	if s.Route().Route.NeedsID() {
		s.Session = state.DetailView
	}

	var cmd tea.Cmd
	if phase, ok := s.Screens.Phase(s.Route().Route); ok && phase == screen.PhaseLoading {
		// The screen below never finished; start it again.
		cmd = MountRoute(s, s.Route(), deps)
	}
	RefreshContent(s, deps)
	UpdateListSizes(s)
	return cmd
}

// Remount starts a fresh fetch for the current route.
func Remount(s *state.ModelState, deps Deps) tea.Cmd {
	cmd := MountRoute(s, s.Route(), deps)
	RefreshContent(s, deps)
	if cmd == nil {
		return nil
	}
	return tea.Batch(cmd, s.Spinner.Tick)
}

// MountRoute starts the fetch of the screen behind t. Detail screens without
// an id and user screens without a login fail without a request.
func MountRoute(s *state.ModelState, t nav.Target, deps Deps) tea.Cmd {
	switch t.Route {
	case nav.Home:
		return s.Screens.Home.Mount()
	case nav.Catalog:
		return s.Screens.Catalog.Mount()
	case nav.News:
		return s.Screens.News.Mount()
	case nav.ItemDetail:
		id, err := t.RequireID()
		if err != nil {
			s.Screens.Item.Reject(err)
			return nil
		}
		return s.Screens.Item.MountWith(itemResource(deps, id))
	case nav.NewsDetail:
		id, err := t.RequireID()
		if err != nil {
			s.Screens.NewsDetail.Reject(err)
			return nil
		}
		return s.Screens.NewsDetail.MountWith(articleResource(deps, id))
	case nav.Cart:
		uid, ok := s.UserID()
		if !ok {
			s.Screens.Cart.Reject(usecase.ErrNotLoggedIn)
			return nil
		}
		return s.Screens.Cart.MountWith(cartResource(deps, uid))
	case nav.Orders:
		uid, ok := s.UserID()
		if !ok {
			s.Screens.Orders.Reject(usecase.ErrNotLoggedIn)
			return nil
		}
		return s.Screens.Orders.MountWith(ordersResource(deps, uid))
	default:
		return nil
	}
}

// RefreshContent rebuilds the content list or detail body from the Ready
// state of the current screen. The catalog is filtered here; filter edits
// never trigger a fetch.
func RefreshContent(s *state.ModelState, deps Deps) {
	var items []list.Item
	switch s.Route().Route {
	case nav.Home:
		if data, ok := s.Screens.Home.State().Data(); ok {
			items = deps.Assets.HomeItems(data)
		}
	case nav.Catalog:
		if data, ok := s.Screens.Catalog.State().Data(); ok {
			items = deps.Assets.PlantItems(catalog.Filter(data, s.Criteria))
		}
	case nav.News:
		if data, ok := s.Screens.News.State().Data(); ok {
			items = deps.Assets.NewsItems(data)
		}
	case nav.Cart:
		if data, ok := s.Screens.Cart.State().Data(); ok {
			items = deps.Assets.CartItems(data)
		}
	case nav.Orders:
		if data, ok := s.Screens.Orders.State().Data(); ok {
			items = deps.Assets.OrderItems(data)
		}
	case nav.ItemDetail, nav.NewsDetail:
		refreshDetail(s, deps)
		return
	}

	if items == nil {
		items = []list.Item{}
	}
	s.ContentList.SetItems(items)
	if s.ContentList.Index() >= len(items) {
		s.ContentList.Select(0)
	}
	selectFirstEntry(&s.ContentList)
}

func refreshDetail(s *state.ModelState, deps Deps) {
	switch s.Route().Route {
	case nav.ItemDetail:
		if data, ok := s.Screens.Item.State().Data(); ok {
			s.Viewport.SetContent(deps.Assets.PlantDetail(data, detailWrapWidth(s)))
			return
		}
	case nav.NewsDetail:
		if data, ok := s.Screens.NewsDetail.State().Data(); ok {
			s.Viewport.SetContent(deps.Assets.NewsDetail(data, detailWrapWidth(s)))
			return
		}
	default:
		return
	}
	s.Viewport.SetContent("")
}

func detailWrapWidth(s *state.ModelState) int {
	width := s.Viewport.Width - s.Viewport.Style.GetHorizontalFrameSize()
	if width < minDetailWidth {
		return minDetailWidth
	}
	return width
}

// StatusLine describes the Failed message of the current screen, or "" when
// the screen is not failed.
func StatusLine(s *state.ModelState) string {
	phase, ok := s.Screens.Phase(s.Route().Route)
	if !ok || phase != screen.PhaseFailed {
		return ""
	}
	return s.Screens.FailureMessage(s.Route().Route)
}

func catalogCategory(id int) catalog.Category {
	return catalog.Category(id)
}
