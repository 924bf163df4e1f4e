// Command sanita is a terminal client for the Sanita medicinal-plant shop.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/sanita/internal/application/settings"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/infrastructure/api"
	"github.com/tesso57/sanita/internal/infrastructure/assets"
	"github.com/tesso57/sanita/internal/infrastructure/config"
	"github.com/tesso57/sanita/internal/infrastructure/logging"
	"github.com/tesso57/sanita/internal/presentation/tui"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
	"github.com/tesso57/sanita/internal/presentation/tui/presenter"
)

const detailWidth = 60

type cli struct {
	Config string `help:"Config file path (default ~/.config/sanita/config.yaml)." type:"path"`
	APIURL string `name:"api-url" help:"Override the shop API base URL."`
	Debug  bool   `help:"Log at debug level."`

	TUI    tuiCmd    `cmd:"" name:"tui" default:"withargs" help:"Open the terminal UI."`
	Lookup lookupCmd `cmd:"" help:"Look a plant up by exact name."`
	List   listCmd   `cmd:"" help:"List plants."`
}

type tuiCmd struct {
	Open string `help:"Route to open first, e.g. catalog or item_detail/3." default:"home"`
}

type lookupCmd struct {
	Name string `arg:"" help:"Plant name."`
}

type listCmd struct {
	Category int `help:"Only plants of this category (1 healing, 2 immune)."`
}

// app carries the wired collaborators every command runs against.
type app struct {
	ctx      context.Context
	settings settings.Settings
	log      *logrus.Logger
	client   *api.Client
	services tui.Services
	assets   presenter.Builder
	out      io.Writer
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "sanita:", err)
		stop()
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("sanita"),
		kong.Description("Browse and shop medicinal plants from the terminal."),
		kong.UsageOnError(),
		kong.Writers(out, out),
	)
	if err != nil {
		return err
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	a, closer, err := c.wire(ctx, out)
	if err != nil {
		return err
	}
	defer func() { _ = closer() }()

	return kctx.Run(a)
}

func (c *cli) wire(ctx context.Context, out io.Writer) (*app, func() error, error) {
	store, err := config.Load(c.Config)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	cfg := store.Settings
	if c.APIURL != "" {
		cfg.API.BaseURL = c.APIURL
	}

	logger, logCloser, err := logging.Setup(logging.Options{File: cfg.LogFile, Level: cfg.LogLevel, Debug: c.Debug})
	if err != nil {
		return nil, nil, fmt.Errorf("setup logging: %w", err)
	}

	client := api.New(api.Options{
		BaseURL:           cfg.API.BaseURL,
		UserAgent:         cfg.API.UserAgent,
		Timeout:           cfg.API.Timeout(),
		RequestsPerSecond: cfg.API.RequestsPerSecond,
		Logger:            logger,
	})

	bundled, err := assets.Bundled()
	if err != nil {
		_ = logCloser.Close()
		return nil, nil, fmt.Errorf("load bundled assets: %w", err)
	}

	a := &app{
		ctx:      ctx,
		settings: cfg,
		log:      logger,
		client:   client,
		services: tui.Services{
			Catalog: usecase.NewCatalogService(client),
			News:    usecase.NewNewsService(client),
			Home:    usecase.NewHomeService(client, client, cfg.FeaturedCount),
			Account: usecase.NewAccountService(client),
			Cart:    usecase.NewCartService(client),
			Orders:  usecase.NewOrderService(client),
		},
		assets: presenter.NewBuilder(asset.NewResolver(bundled), logger),
		out:    out,
	}
	logger.WithFields(logrus.Fields{"config": store.Path(), "api": cfg.API.BaseURL}).Debug("sanita started")

	closer := func() error {
		_ = client.Close()
		return logCloser.Close()
	}
	return a, closer, nil
}

func (t *tuiCmd) Run(a *app) error {
	start, err := nav.Parse(t.Open)
	if err != nil {
		return err
	}
	model := tui.NewModel(a.settings, a.services, a.assets,
		tui.WithStart(start),
		tui.WithLogger(a.log),
	)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(a.ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("run tui: %w", err)
	}
	return nil
}

func (l *lookupCmd) Run(a *app) error {
	item, err := a.services.Catalog.Lookup(a.ctx, l.Name)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(a.out, a.assets.PlantDetail(item, detailWidth))
	return err
}

func (l *listCmd) Run(a *app) error {
	var (
		items []catalog.Item
		err   error
	)
	if l.Category != 0 {
		items, err = a.services.Catalog.ListByCategory(a.ctx, l.Category)
	} else {
		items, err = a.services.Catalog.List(a.ctx)
	}
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(a.out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tPRICE\tCATEGORY")
	for _, it := range items {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", it.ID, it.Name, it.PriceLabel(), catalog.Category(it.CategoryID).Label())
	}
	return w.Flush()
}
