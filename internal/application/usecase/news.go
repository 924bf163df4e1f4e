package usecase

import (
	"context"
	"fmt"

	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
)

// NewsService provides read access to news articles.
type NewsService struct {
	API NewsAPI
}

// NewNewsService constructs a NewsService.
func NewNewsService(api NewsAPI) *NewsService {
	return new(NewsService{API: api})
}

// List returns all news articles in server order.
func (s *NewsService) List(ctx context.Context) ([]news.Item, error) {
	return s.API.ListNews(ctx)
}

// Get returns one article by id.
func (s *NewsService) Get(ctx context.Context, id int) (news.Item, error) {
	if id <= 0 {
		return news.Item{}, fmt.Errorf("news %d: %w", id, ErrInvalidID)
	}
	return s.API.GetNews(ctx, id)
}

// HomeSummary is the payload of the home screen.
type HomeSummary struct {
	Highlights []news.Summary
	Featured   []catalog.Item
}

// DefaultFeaturedCount is the number of plants featured on the home screen.
const DefaultFeaturedCount = 4

// HomeService composes the home screen payload.
type HomeService struct {
	Catalog       CatalogAPI
	News          NewsAPI
	FeaturedCount int
}

// NewHomeService constructs a HomeService.
func NewHomeService(catalogAPI CatalogAPI, newsAPI NewsAPI, featured int) *HomeService {
	if featured <= 0 {
		featured = DefaultFeaturedCount
	}
	return new(HomeService{Catalog: catalogAPI, News: newsAPI, FeaturedCount: featured})
}

// Load fetches highlights and the first featured plants. Either failure fails the whole load.
func (s *HomeService) Load(ctx context.Context) (HomeSummary, error) {
	highlights, err := s.News.ListHighlights(ctx)
	if err != nil {
		return HomeSummary{}, fmt.Errorf("highlights: %w", err)
	}
	items, err := s.Catalog.ListItems(ctx)
	if err != nil {
		return HomeSummary{}, fmt.Errorf("featured plants: %w", err)
	}
	if len(items) > s.FeaturedCount {
		items = items[:s.FeaturedCount]
	}
	return HomeSummary{Highlights: highlights, Featured: items}, nil
}
