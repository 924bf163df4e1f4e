package update

import (
	"context"
	"errors"
	"sync"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/tesso57/sanita/internal/application/settings"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
	"github.com/tesso57/sanita/internal/presentation/tui/screen"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
)

var errNotFound = errors.New("status 404: Planta no encontrada")

// stubAPI serves canned shop data and counts calls.
type stubAPI struct {
	mu         sync.Mutex
	plants     []catalog.Item
	articles   []news.Item
	highlights []news.Summary
	cart       []shop.CartLine
	orders     []shop.Order
	session    account.Session
	err        error
	calls      map[string]int
	lastQty    int
	lastUserID int
}

func newStubAPI() *stubAPI {
	return &stubAPI{
		plants: []catalog.Item{
			{ID: 1, Name: "Aloe Vera", ImageRef: "aloe_vera.png", Price: 12, CategoryID: 1},
			{ID: 2, Name: "Maca", ImageRef: "https://cdn.example.com/img/maca.jpg", Price: 20, CategoryID: 2},
			{ID: 3, Name: "Muña", ImageRef: "muna.png", Price: 8, CategoryID: 1},
		},
		articles: []news.Item{
			{ID: 5, Title: "Harvest season", Body: "<p>Hello <b>world</b></p>", Date: "2024-05-01"},
		},
		highlights: []news.Summary{{ID: 5, Title: "Harvest season"}},
		cart: []shop.CartLine{
			{ID: 1, UserID: 7, ItemID: 1, Quantity: 2, Name: "Aloe Vera", Price: 12},
		},
		orders: []shop.Order{
			{ID: 30, UserID: 7, Total: 24, Status: "pendiente", Date: "2024-05-02"},
		},
		calls: map[string]int{},
	}
}

func (a *stubAPI) record(name string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.calls[name]++
}

func (a *stubAPI) count(name string) int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.calls[name]
}

func (a *stubAPI) ListItems(context.Context) ([]catalog.Item, error) {
	a.record("ListItems")
	return a.plants, a.err
}

func (a *stubAPI) GetItem(_ context.Context, id int) (catalog.Item, error) {
	a.record("GetItem")
	for _, p := range a.plants {
		if p.ID == id {
			return p, a.err
		}
	}
	return catalog.Item{}, errNotFound
}

func (a *stubAPI) SearchItem(context.Context, string) (catalog.Item, error) {
	a.record("SearchItem")
	return catalog.Item{}, a.err
}

func (a *stubAPI) ListItemsByCategory(context.Context, int) ([]catalog.Item, error) {
	a.record("ListItemsByCategory")
	return nil, a.err
}

func (a *stubAPI) ListNews(context.Context) ([]news.Item, error) {
	a.record("ListNews")
	return a.articles, a.err
}

func (a *stubAPI) GetNews(_ context.Context, id int) (news.Item, error) {
	a.record("GetNews")
	for _, n := range a.articles {
		if n.ID == id {
			return n, a.err
		}
	}
	return news.Item{}, a.err
}

func (a *stubAPI) ListHighlights(context.Context) ([]news.Summary, error) {
	a.record("ListHighlights")
	return a.highlights, a.err
}

func (a *stubAPI) Login(context.Context, string, string) (account.Session, error) {
	a.record("Login")
	return a.session, a.err
}

func (a *stubAPI) AddToCart(_ context.Context, userID, _ int, quantity int) (shop.Ack, error) {
	a.record("AddToCart")
	a.mu.Lock()
	a.lastUserID, a.lastQty = userID, quantity
	a.mu.Unlock()
	return shop.Ack{Message: "Agregado al carrito"}, a.err
}

func (a *stubAPI) GetCart(_ context.Context, userID int) ([]shop.CartLine, error) {
	a.record("GetCart")
	a.mu.Lock()
	a.lastUserID = userID
	a.mu.Unlock()
	return a.cart, a.err
}

func (a *stubAPI) UpdateCartItem(_ context.Context, _ int, _ int, quantity int) (shop.Ack, error) {
	a.record("UpdateCartItem")
	a.mu.Lock()
	a.lastQty = quantity
	a.mu.Unlock()
	return shop.Ack{Message: "Cantidad actualizada"}, a.err
}

func (a *stubAPI) DeleteCartItem(context.Context, int, int) (shop.Ack, error) {
	a.record("DeleteCartItem")
	return shop.Ack{}, a.err
}

func (a *stubAPI) ClearCart(context.Context, int) (shop.Ack, error) {
	a.record("ClearCart")
	return shop.Ack{}, a.err
}

func (a *stubAPI) Checkout(context.Context, shop.CheckoutRequest) (shop.Ack, error) {
	a.record("Checkout")
	return shop.Ack{Message: "Pago realizado"}, a.err
}

func (a *stubAPI) ListOrders(_ context.Context, userID int) ([]shop.Order, error) {
	a.record("ListOrders")
	a.mu.Lock()
	a.lastUserID = userID
	a.mu.Unlock()
	return a.orders, a.err
}

func (a *stubAPI) MarkOrderReceived(context.Context, int) (shop.Ack, error) {
	a.record("MarkOrderReceived")
	return shop.Ack{Message: "Pedido recibido"}, a.err
}

func testKeyMapConfig() settings.KeyMapConfig {
	return settings.KeyMapConfig{
		Up: "k", Down: "j", Left: "h", Right: "l",
		UpPage: "ctrl+u", DownPage: "ctrl+d",
		Open: "enter", Back: "esc", Quit: "q", Refresh: "r", Search: "/",
		AddToCart: "c", Increase: "+", Decrease: "-", Remove: "x", ClearCart: "X",
		Checkout: "p", Received: "m", Login: "L", OpenImage: "o",
	}
}

func newTestDeps(api *stubAPI) Deps {
	return Deps{
		Catalog: usecase.NewCatalogService(api),
		News:    usecase.NewNewsService(api),
		Home:    usecase.NewHomeService(api, api, 2),
		Account: usecase.NewAccountService(api),
		Cart:    usecase.NewCartService(api),
		Orders:  usecase.NewOrderService(api),
		Assets:  presenter.NewBuilder(asset.NewResolver(nil), nil),
	}
}

func newTestState(deps Deps) *state.ModelState {
	return &state.ModelState{
		Session:     state.MenuView,
		Screens:     NewScreens(deps),
		MenuList:    list.New(presenter.MenuItems(nav.Menu), list.NewDefaultDelegate(), 30, 10),
		ContentList: list.New([]list.Item{}, list.NewDefaultDelegate(), 80, 20),
		SearchInput: NewSearchInput(),
		Login:       NewLoginForm(),
		Checkout:    NewCheckoutForm(),
		Viewport:    viewport.New(80, 20),
		Help:        help.New(),
		Spinner:     spinner.New(),
		Keys:        state.NewKeyMap(testKeyMapConfig()),
		Width:       120,
		Height:      40,
	}
}

func newTestHarness() (*state.ModelState, Deps, *stubAPI) {
	api := newStubAPI()
	deps := newTestDeps(api)
	return newTestState(deps), deps, api
}

// collect runs cmd and flattens batches into their messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

// deliver routes messages the way the root model does and returns follow-up commands.
func deliver(s *state.ModelState, deps Deps, msgs []tea.Msg) []tea.Cmd {
	var cmds []tea.Cmd
	for _, msg := range msgs {
		switch msg := msg.(type) {
		case screen.LoadedMsg[usecase.HomeSummary]:
			HandleLoaded(s, s.Screens.Home, msg, deps)
		case screen.LoadedMsg[[]catalog.Item]:
			HandleLoaded(s, s.Screens.Catalog, msg, deps)
		case screen.LoadedMsg[catalog.Item]:
			HandleLoaded(s, s.Screens.Item, msg, deps)
		case screen.LoadedMsg[[]news.Item]:
			HandleLoaded(s, s.Screens.News, msg, deps)
		case screen.LoadedMsg[news.Item]:
			HandleLoaded(s, s.Screens.NewsDetail, msg, deps)
		case screen.LoadedMsg[[]shop.CartLine]:
			HandleLoaded(s, s.Screens.Cart, msg, deps)
		case screen.LoadedMsg[[]shop.Order]:
			HandleLoaded(s, s.Screens.Orders, msg, deps)
		case LoginDoneMsg:
			cmds = append(cmds, HandleLoginDone(s, msg, deps))
		case MutationDoneMsg:
			cmds = append(cmds, HandleMutationDone(s, msg, deps))
		}
	}
	return cmds
}

// settle runs cmd and every follow-up command until nothing is left.
func settle(s *state.ModelState, deps Deps, cmd tea.Cmd) {
	pending := []tea.Cmd{cmd}
	for len(pending) > 0 {
		next := pending[0]
		pending = pending[1:]
		for _, c := range deliver(s, deps, collect(next)) {
			if c != nil {
				pending = append(pending, c)
			}
		}
	}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func contentTitles(s *state.ModelState) []string {
	var out []string
	for _, it := range s.ContentList.Items() {
		if item, ok := it.(*presenter.Item); ok {
			out = append(out, item.TitleText)
		}
	}
	return out
}
