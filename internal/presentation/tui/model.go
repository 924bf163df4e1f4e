package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/sanita/internal/application/settings"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
	"github.com/tesso57/sanita/internal/presentation/tui/screen"
	"github.com/tesso57/sanita/internal/presentation/tui/state"
	"github.com/tesso57/sanita/internal/presentation/tui/update"
	"github.com/tesso57/sanita/internal/presentation/tui/view"
	listview "github.com/tesso57/sanita/internal/presentation/tui/view/list"
)

// Services groups the use cases the TUI talks to.
type Services struct {
	Catalog *usecase.CatalogService
	News    *usecase.NewsService
	Home    *usecase.HomeService
	Account *usecase.AccountService
	Cart    *usecase.CartService
	Orders  *usecase.OrderService
}

// Model represents the main application state.
type Model struct {
	settings settings.Settings
	deps     update.Deps
	start    nav.Target
	state    *state.ModelState
}

// Option customizes a Model.
type Option func(*Model)

// WithStart opens the given route instead of home.
func WithStart(t nav.Target) Option {
	return func(m *Model) { m.start = t }
}

// WithOpener replaces the system browser launcher.
func WithOpener(open func(string) error) Option {
	return func(m *Model) { m.deps.OpenBrowser = open }
}

// WithLogger routes update diagnostics to log.
func WithLogger(log logrus.FieldLogger) Option {
	return func(m *Model) { m.deps.Log = log }
}

// NewModel creates a new application model.
func NewModel(cfg settings.Settings, svc Services, assets presenter.Builder, opts ...Option) *Model {
	m := &Model{
		settings: cfg,
		deps: update.Deps{
			Catalog:     svc.Catalog,
			News:        svc.News,
			Home:        svc.Home,
			Account:     svc.Account,
			Cart:        svc.Cart,
			Orders:      svc.Orders,
			Assets:      assets,
			OpenBrowser: openBrowser,
		},
		start: nav.To(nav.Home),
	}
	for _, opt := range opts {
		opt(m)
	}
	m.state = newModelState(cfg, m.deps)
	return m
}

// Init mounts the start screen.
func (m *Model) Init() tea.Cmd {
	cmd := update.Navigate(m.state, m.start, false, m.deps)
	selectMenuRoute(&m.state.MenuList, m.start.Route)
	return cmd
}

// Update handles messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd, handled := update.HandleKeyMsg(m.state, msg, m.deps)
		if handled {
			update.UpdateListSizes(m.state)
			return m, cmd
		}
	case tea.WindowSizeMsg:
		update.HandleWindowSize(m.state, msg, m.deps)
	case screen.LoadedMsg[usecase.HomeSummary]:
		update.HandleLoaded(m.state, m.state.Screens.Home, msg, m.deps)
	case screen.LoadedMsg[[]catalog.Item]:
		update.HandleLoaded(m.state, m.state.Screens.Catalog, msg, m.deps)
	case screen.LoadedMsg[catalog.Item]:
		update.HandleLoaded(m.state, m.state.Screens.Item, msg, m.deps)
	case screen.LoadedMsg[[]news.Item]:
		update.HandleLoaded(m.state, m.state.Screens.News, msg, m.deps)
	case screen.LoadedMsg[news.Item]:
		update.HandleLoaded(m.state, m.state.Screens.NewsDetail, msg, m.deps)
	case screen.LoadedMsg[[]shop.CartLine]:
		update.HandleLoaded(m.state, m.state.Screens.Cart, msg, m.deps)
	case screen.LoadedMsg[[]shop.Order]:
		update.HandleLoaded(m.state, m.state.Screens.Orders, msg, m.deps)
	case update.LoginDoneMsg:
		cmds = append(cmds, update.HandleLoginDone(m.state, msg, m.deps))
	case update.MutationDoneMsg:
		cmds = append(cmds, update.HandleMutationDone(m.state, msg, m.deps))
	}

	if m.state.Loading() {
		m.state.Spinner, cmd = m.state.Spinner.Update(msg)
		cmds = append(cmds, cmd)
	}

	switch m.state.Session {
	case state.MenuView:
		prevIdx := m.state.MenuList.Index()
		m.state.MenuList, cmd = m.state.MenuList.Update(msg)
		cmds = append(cmds, cmd)
		if m.state.MenuList.Index() != prevIdx {
			if item, ok := m.state.MenuList.SelectedItem().(*presenter.MenuItem); ok {
				m.state.StatusMessage = ""
				cmds = append(cmds, update.Navigate(m.state, nav.To(item.Route), false, m.deps))
			}
		}
	case state.ContentView:
		m.state.ContentList, cmd = m.state.ContentList.Update(msg)
		cmds = append(cmds, cmd)
	case state.DetailView:
		m.state.Viewport, cmd = m.state.Viewport.Update(msg)
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

// View renders the application view.
func (m *Model) View() string {
	return view.Render(m.buildProps())
}

func newModelState(cfg settings.Settings, deps update.Deps) *state.ModelState {
	st := &state.ModelState{
		Session:     state.MenuView,
		Screens:     update.NewScreens(deps),
		MenuList:    newMenuList(cfg),
		ContentList: newContentList(cfg),
		SearchInput: update.NewSearchInput(),
		Login:       update.NewLoginForm(),
		Checkout:    update.NewCheckoutForm(),
		Viewport:    newViewport(),
		Help:        help.New(),
		Spinner:     newSpinner(),
		Keys:        state.NewKeyMap(cfg.KeyMap),
	}

	st.MenuList.KeyMap.PrevPage = st.Keys.UpPage
	st.MenuList.KeyMap.NextPage = st.Keys.DownPage
	st.ContentList.KeyMap.PrevPage = st.Keys.UpPage
	st.ContentList.KeyMap.NextPage = st.Keys.DownPage

	return st
}

func newMenuList(cfg settings.Settings) list.Model {
	l := list.New(presenter.MenuItems(nav.Menu), listview.NewMenuDelegate(lipgloss.Color(cfg.Theme.MenuName)), 0, 0)
	l.Title = "Sanita"
	l.SetShowHelp(false)
	l.SetShowTitle(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newContentList(cfg settings.Settings) list.Model {
	l := list.New([]list.Item{}, listview.NewEntryDelegate(lipgloss.Color(cfg.Theme.Highlight)), 0, 0)
	l.SetShowTitle(false)
	l.SetShowHelp(false)
	l.SetShowStatusBar(false)
	l.SetFilteringEnabled(false)
	l.DisableQuitKeybindings()
	return l
}

func newSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("205"))
	return s
}

func newViewport() viewport.Model {
	vp := viewport.New(0, 0)
	vp.Style = lipgloss.NewStyle().
		PaddingLeft(1).
		PaddingRight(1)
	return vp
}

func selectMenuRoute(l *list.Model, r nav.Route) {
	for i, it := range l.Items() {
		if item, ok := it.(*presenter.MenuItem); ok && item.Route == r {
			l.Select(i)
			return
		}
	}
}
