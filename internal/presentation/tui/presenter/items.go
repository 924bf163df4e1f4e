// Package presenter builds view models for the TUI.
package presenter

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/sirupsen/logrus"
	"github.com/tesso57/sanita/internal/application/usecase"
	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
	"github.com/tesso57/sanita/internal/presentation/tui/nav"
)

// Kind tells what an Item points at.
type Kind int

const (
	PlantKind Kind = iota
	HighlightKind
	NewsKind
	CartLineKind
	OrderKind
	SectionKind
)

// Item is a view model for content list rows.
type Item struct {
	Kind      Kind
	ID        int
	TitleText string
	Desc      string
	ImageRef  string
	Asset     asset.Result
	Done      bool
	Quantity  int
}

// FilterValue implements list.Item.
func (i *Item) FilterValue() string { return i.TitleText }

// Title returns the item title.
func (i *Item) Title() string { return i.TitleText }

// Description returns the secondary text.
func (i *Item) Description() string { return i.Desc }

// IsSectionHeader reports whether the row is a non-selectable heading.
func (i *Item) IsSectionHeader() bool { return i.Kind == SectionKind }

// HasThumbnail reports whether a bundled asset was found for the row.
func (i *Item) HasThumbnail() bool { return i.Asset.Found }

// IsDone reports a completed row, such as a received order.
func (i *Item) IsDone() bool { return i.Done }

// MenuItem is a sidebar entry.
type MenuItem struct {
	Route nav.Route
	Index int
}

// FilterValue implements list.Item.
func (m *MenuItem) FilterValue() string { return m.Route.Title() }

// Title returns the numbered label.
func (m *MenuItem) Title() string { return fmt.Sprintf("%d. %s", m.Index+1, m.Route.Title()) }

// MenuItems builds the sidebar entries.
func MenuItems(routes []nav.Route) []list.Item {
	items := make([]list.Item, len(routes))
	for i, r := range routes {
		items[i] = &MenuItem{Route: r, Index: i}
	}
	return items
}

// Builder turns domain data into list rows, resolving images against the
// bundled catalog.
type Builder struct {
	resolver asset.Resolver
	log      logrus.FieldLogger
}

// NewBuilder creates a Builder. A nil logger discards diagnostics.
func NewBuilder(resolver asset.Resolver, log logrus.FieldLogger) Builder {
	if log == nil {
		discard := logrus.New()
		discard.SetLevel(logrus.PanicLevel)
		log = discard
	}
	return Builder{resolver: resolver, log: log}
}

// Resolve looks ref up and logs a debug line on a miss.
func (b Builder) Resolve(ref string) asset.Result {
	res := b.resolver.Resolve(ref)
	if !res.Found && ref != "" {
		b.log.WithFields(logrus.Fields{"ref": ref, "key": res.Key}).Debug("asset not bundled")
	}
	return res
}

// PlantItems builds rows for catalog plants in the given order.
func (b Builder) PlantItems(items []catalog.Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = b.plantItem(it)
	}
	return out
}

func (b Builder) plantItem(it catalog.Item) *Item {
	return &Item{
		Kind:      PlantKind,
		ID:        it.ID,
		TitleText: it.Name,
		Desc:      fmt.Sprintf("%s · %s", it.PriceLabel(), catalog.Category(it.CategoryID).Label()),
		ImageRef:  it.ImageRef,
		Asset:     b.Resolve(it.ImageRef),
	}
}

// HomeItems lists the highlights followed by the featured plants.
func (b Builder) HomeItems(summary usecase.HomeSummary) []list.Item {
	out := make([]list.Item, 0, len(summary.Highlights)+len(summary.Featured)+2)
	if len(summary.Highlights) > 0 {
		out = append(out, &Item{Kind: SectionKind, TitleText: "Highlights"})
		for _, h := range summary.Highlights {
			out = append(out, &Item{
				Kind:      HighlightKind,
				ID:        h.ID,
				TitleText: h.Title,
				ImageRef:  h.ImageRef,
				Asset:     b.Resolve(h.ImageRef),
			})
		}
	}
	if len(summary.Featured) > 0 {
		out = append(out, &Item{Kind: SectionKind, TitleText: "Featured plants"})
		for _, it := range summary.Featured {
			out = append(out, b.plantItem(it))
		}
	}
	return out
}

// NewsItems builds rows for news articles.
func (b Builder) NewsItems(items []news.Item) []list.Item {
	out := make([]list.Item, len(items))
	for i, it := range items {
		out[i] = &Item{
			Kind:      NewsKind,
			ID:        it.ID,
			TitleText: it.Title,
			Desc:      it.Date,
			ImageRef:  it.ImageRef,
			Asset:     b.Resolve(it.ImageRef),
		}
	}
	return out
}

// CartItems builds rows for cart lines followed by the total.
func (b Builder) CartItems(lines []shop.CartLine) []list.Item {
	out := make([]list.Item, 0, len(lines)+1)
	for _, l := range lines {
		out = append(out, &Item{
			Kind:      CartLineKind,
			ID:        l.ItemID,
			TitleText: fmt.Sprintf("%s x%d", l.Name, l.Quantity),
			Desc:      fmt.Sprintf("%s each · %s", FormatAmount(l.Price), FormatAmount(l.Subtotal())),
			ImageRef:  l.ImageRef,
			Asset:     b.Resolve(l.ImageRef),
			Quantity:  l.Quantity,
		})
	}
	if len(lines) > 0 {
		out = append(out, &Item{Kind: SectionKind, TitleText: "Total " + FormatAmount(shop.CartTotal(lines))})
	}
	return out
}

// OrderItems builds rows for orders.
func (b Builder) OrderItems(orders []shop.Order) []list.Item {
	out := make([]list.Item, len(orders))
	for i, o := range orders {
		status := o.Status
		if status == "" {
			status = "pending"
		}
		out[i] = &Item{
			Kind:      OrderKind,
			ID:        o.ID,
			TitleText: fmt.Sprintf("Order #%d · %s", o.ID, FormatAmount(o.Total)),
			Desc:      fmt.Sprintf("%s · %s", o.Date, status),
			Done:      o.Received(),
		}
	}
	return out
}

// FormatAmount formats a decimal amount in soles.
func FormatAmount(amount float64) string {
	return fmt.Sprintf("S/. %.2f", amount)
}

// EmptyText is shown in place of an empty Ready list.
func EmptyText(r nav.Route) string {
	switch r {
	case nav.Catalog:
		return "No plants found."
	case nav.News:
		return "No news yet."
	case nav.Cart:
		return "Your cart is empty."
	case nav.Orders:
		return "No orders yet."
	case nav.Home:
		return "Nothing featured today."
	default:
		return ""
	}
}
