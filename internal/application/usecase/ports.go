// Package usecase contains application-level services.
package usecase

import (
	"context"

	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
)

// CatalogAPI abstracts the plant catalog endpoints.
type CatalogAPI interface {
	ListItems(ctx context.Context) ([]catalog.Item, error)
	GetItem(ctx context.Context, id int) (catalog.Item, error)
	SearchItem(ctx context.Context, name string) (catalog.Item, error)
	ListItemsByCategory(ctx context.Context, categoryID int) ([]catalog.Item, error)
}

// NewsAPI abstracts the news endpoints.
type NewsAPI interface {
	ListNews(ctx context.Context) ([]news.Item, error)
	GetNews(ctx context.Context, id int) (news.Item, error)
	ListHighlights(ctx context.Context) ([]news.Summary, error)
}

// AccountAPI abstracts the login endpoint.
type AccountAPI interface {
	Login(ctx context.Context, email, password string) (account.Session, error)
}

// CartAPI abstracts the cart and checkout endpoints.
type CartAPI interface {
	AddToCart(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error)
	GetCart(ctx context.Context, userID int) ([]shop.CartLine, error)
	UpdateCartItem(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error)
	DeleteCartItem(ctx context.Context, userID, itemID int) (shop.Ack, error)
	ClearCart(ctx context.Context, userID int) (shop.Ack, error)
	Checkout(ctx context.Context, req shop.CheckoutRequest) (shop.Ack, error)
}

// OrderAPI abstracts the order endpoints.
type OrderAPI interface {
	ListOrders(ctx context.Context, userID int) ([]shop.Order, error)
	MarkOrderReceived(ctx context.Context, orderID int) (shop.Ack, error)
}
