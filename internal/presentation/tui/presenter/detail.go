package presenter

import (
	"fmt"
	"strings"

	"github.com/tesso57/sanita/internal/domain/asset"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/presentation/tui/textutil"
)

// Placeholder is shown when an image reference has no bundled asset.
const Placeholder = `  .-----.
  | ? ? |
  |  ~  |
  '-----'`

const detailSectionDivider = "----------------------------------------"

// Thumbnail returns the bundled art or the placeholder.
func Thumbnail(res asset.Result) string {
	if res.Found && res.Handle.Art != "" {
		return res.Handle.Art
	}
	return Placeholder
}

// PlantDetail renders the plant detail screen body.
func (b Builder) PlantDetail(item catalog.Item, width int) string {
	res := b.Resolve(item.ImageRef)
	var sb strings.Builder
	sb.WriteString(Thumbnail(res))
	sb.WriteString("\n\n")
	sb.WriteString(strings.TrimSpace(item.Name))
	sb.WriteString("\n")
	sb.WriteString(detailSectionDivider)
	fmt.Fprintf(&sb, "\nPrice:    %s", item.PriceLabel())
	fmt.Fprintf(&sb, "\nCategory: %s", catalog.Category(item.CategoryID).Label())
	if asset.IsRemote(item.ImageRef) && !res.Found {
		fmt.Fprintf(&sb, "\nImage:    %s (press o to open)", item.ImageRef)
	}
	return textutil.Wrap(sb.String(), width)
}

// NewsDetail renders the article body as plain text.
func (b Builder) NewsDetail(item news.Item, width int) string {
	res := b.Resolve(item.ImageRef)
	title := strings.TrimSpace(item.Title)
	body := textutil.PlainText(item.Body)
	if body == "" {
		body = "(No article body available.)"
	}
	var sb strings.Builder
	sb.WriteString(Thumbnail(res))
	sb.WriteString("\n\n")
	if title != "" {
		sb.WriteString(title)
		sb.WriteString("\n")
	}
	if item.Date != "" {
		sb.WriteString(item.Date)
		sb.WriteString("\n")
	}
	sb.WriteString(detailSectionDivider)
	sb.WriteString("\n")
	sb.WriteString(body)
	return textutil.Wrap(sb.String(), width)
}

// CommunityBody is the static community screen.
func CommunityBody() string {
	return strings.Join([]string{
		"Community",
		detailSectionDivider,
		"Share remedies and growing tips with other Sanita customers.",
		"This space is read-only in the terminal client.",
	}, "\n")
}
