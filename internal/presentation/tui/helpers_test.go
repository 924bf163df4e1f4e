package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/mock"
	"github.com/tesso57/sanita/internal/application/settings"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
)

// shopStub answers from canned data unless an expectation is set for the method.
type shopStub struct {
	mock.Mock
	plants []catalog.Item
}

func newShopStub() *shopStub {
	return &shopStub{plants: []catalog.Item{
		{ID: 1, Name: "Aloe Vera", ImageRef: "aloe_vera.png", Price: 12, CategoryID: 1},
		{ID: 2, Name: "Maca", ImageRef: "maca.png", Price: 20, CategoryID: 2},
	}}
}

func (s *shopStub) expects(method string) bool {
	for _, c := range s.ExpectedCalls {
		if c.Method == method {
			return true
		}
	}
	return false
}

func (s *shopStub) ListItems(ctx context.Context) ([]catalog.Item, error) {
	if s.expects("ListItems") {
		args := s.Called(ctx)
		items, _ := args.Get(0).([]catalog.Item)
		return items, args.Error(1)
	}
	return s.plants, nil
}

func (s *shopStub) GetItem(_ context.Context, id int) (catalog.Item, error) {
	for _, p := range s.plants {
		if p.ID == id {
			return p, nil
		}
	}
	return catalog.Item{}, nil
}

func (s *shopStub) SearchItem(context.Context, string) (catalog.Item, error) {
	return catalog.Item{}, nil
}

func (s *shopStub) ListItemsByCategory(context.Context, int) ([]catalog.Item, error) {
	return nil, nil
}

func (s *shopStub) ListNews(context.Context) ([]news.Item, error) {
	return []news.Item{{ID: 5, Title: "Harvest season", Date: "2024-05-01"}}, nil
}

func (s *shopStub) GetNews(context.Context, int) (news.Item, error) {
	return news.Item{ID: 5, Title: "Harvest season", Body: "<p>Body</p>"}, nil
}

func (s *shopStub) ListHighlights(context.Context) ([]news.Summary, error) {
	return []news.Summary{{ID: 5, Title: "Harvest season"}}, nil
}

func (s *shopStub) Login(ctx context.Context, email, password string) (account.Session, error) {
	if s.expects("Login") {
		args := s.Called(ctx, email, password)
		session, _ := args.Get(0).(account.Session)
		return session, args.Error(1)
	}
	return account.Session{Message: "Bienvenido", User: &account.User{ID: 7, Name: "Ana"}}, nil
}

func (s *shopStub) AddToCart(context.Context, int, int, int) (shop.Ack, error) {
	return shop.Ack{Message: "Agregado al carrito"}, nil
}

func (s *shopStub) GetCart(context.Context, int) ([]shop.CartLine, error) {
	return []shop.CartLine{{ItemID: 1, Name: "Aloe Vera", Quantity: 1, Price: 12}}, nil
}

func (s *shopStub) UpdateCartItem(context.Context, int, int, int) (shop.Ack, error) {
	return shop.Ack{}, nil
}

func (s *shopStub) DeleteCartItem(context.Context, int, int) (shop.Ack, error) {
	return shop.Ack{}, nil
}

func (s *shopStub) ClearCart(context.Context, int) (shop.Ack, error) {
	return shop.Ack{}, nil
}

func (s *shopStub) Checkout(context.Context, shop.CheckoutRequest) (shop.Ack, error) {
	return shop.Ack{Message: "Pago realizado"}, nil
}

func (s *shopStub) ListOrders(context.Context, int) ([]shop.Order, error) {
	return nil, nil
}

func (s *shopStub) MarkOrderReceived(context.Context, int) (shop.Ack, error) {
	return shop.Ack{}, nil
}

func testSettings() settings.Settings {
	return settings.Settings{
		KeyMap: settings.KeyMapConfig{
			Up: "k", Down: "j", Left: "h", Right: "l",
			UpPage: "ctrl+u", DownPage: "ctrl+d",
			Open: "enter", Back: "esc", Quit: "q", Refresh: "r", Search: "/",
			AddToCart: "c", Increase: "+", Decrease: "-", Remove: "x", ClearCart: "X",
			Checkout: "p", Received: "m", Login: "L", OpenImage: "o",
		},
		Theme:         settings.ThemeConfig{MenuName: "244", Highlight: "148"},
		FeaturedCount: 4,
	}
}

type fakeCatalog map[string]asset.Handle

func (f fakeCatalog) Lookup(name string) (asset.Handle, bool) {
	h, ok := f[name]
	return h, ok
}

func newTestModel(api *shopStub, opts ...Option) *Model {
	svc := Services{
		Catalog: usecase.NewCatalogService(api),
		News:    usecase.NewNewsService(api),
		Home:    usecase.NewHomeService(api, api, 4),
		Account: usecase.NewAccountService(api),
		Cart:    usecase.NewCartService(api),
		Orders:  usecase.NewOrderService(api),
	}
	assets := presenter.NewBuilder(asset.NewResolver(fakeCatalog{
		"aloe_vera": {Name: "aloe_vera", Art: "(ALOE ART)"},
	}), nil)
	m := NewModel(testSettings(), svc, assets, opts...)
	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return m
}

// pump runs cmd and feeds every resulting message back into the model.
func pump(m *Model, cmd tea.Cmd) {
	pending := []tea.Cmd{cmd}
	for steps := 0; len(pending) > 0 && steps < 50; steps++ {
		next := pending[0]
		pending = pending[1:]
		if next == nil {
			continue
		}
		msg := next()
		if batch, ok := msg.(tea.BatchMsg); ok {
			pending = append(pending, batch...)
			continue
		}
		if !relevant(msg) {
			continue
		}
		_, follow := m.Update(msg)
		pending = append(pending, follow)
	}
}

// relevant filters out timers such as spinner ticks and cursor blinks.
func relevant(msg tea.Msg) bool {
	switch msg.(type) {
	case spinner.TickMsg, cursor.BlinkMsg, tea.QuitMsg:
		return false
	}
	return true
}

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}
