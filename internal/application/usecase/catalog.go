package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/tesso57/sanita/internal/domain/catalog"
)

// ErrInvalidID is returned when an id parameter is not positive.
var ErrInvalidID = errors.New("id must be positive")

// CatalogService provides read access to the plant catalog.
type CatalogService struct {
	API CatalogAPI
}

// NewCatalogService constructs a CatalogService.
func NewCatalogService(api CatalogAPI) *CatalogService {
	return new(CatalogService{API: api})
}

// List returns every plant in server order.
func (s *CatalogService) List(ctx context.Context) ([]catalog.Item, error) {
	return s.API.ListItems(ctx)
}

// Get returns one plant by id.
func (s *CatalogService) Get(ctx context.Context, id int) (catalog.Item, error) {
	if id <= 0 {
		return catalog.Item{}, fmt.Errorf("plant %d: %w", id, ErrInvalidID)
	}
	return s.API.GetItem(ctx, id)
}

// Lookup asks the server for a plant by exact name.
func (s *CatalogService) Lookup(ctx context.Context, name string) (catalog.Item, error) {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return catalog.Item{}, errors.New("plant name is empty")
	}
	return s.API.SearchItem(ctx, trimmed)
}

// ListByCategory returns the plants of one category as filtered by the server.
func (s *CatalogService) ListByCategory(ctx context.Context, categoryID int) ([]catalog.Item, error) {
	if categoryID <= 0 {
		return nil, fmt.Errorf("category %d: %w", categoryID, ErrInvalidID)
	}
	return s.API.ListItemsByCategory(ctx, categoryID)
}
