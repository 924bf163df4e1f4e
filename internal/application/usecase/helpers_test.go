package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
)

type mockAPI struct {
	mock.Mock
}

func (m *mockAPI) ListItems(ctx context.Context) ([]catalog.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

func (m *mockAPI) GetItem(ctx context.Context, id int) (catalog.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(catalog.Item)
	return item, args.Error(1)
}

func (m *mockAPI) SearchItem(ctx context.Context, name string) (catalog.Item, error) {
	args := m.Called(ctx, name)
	item, _ := args.Get(0).(catalog.Item)
	return item, args.Error(1)
}

func (m *mockAPI) ListItemsByCategory(ctx context.Context, categoryID int) ([]catalog.Item, error) {
	args := m.Called(ctx, categoryID)
	items, _ := args.Get(0).([]catalog.Item)
	return items, args.Error(1)
}

func (m *mockAPI) ListNews(ctx context.Context) ([]news.Item, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]news.Item)
	return items, args.Error(1)
}

func (m *mockAPI) GetNews(ctx context.Context, id int) (news.Item, error) {
	args := m.Called(ctx, id)
	item, _ := args.Get(0).(news.Item)
	return item, args.Error(1)
}

func (m *mockAPI) ListHighlights(ctx context.Context) ([]news.Summary, error) {
	args := m.Called(ctx)
	items, _ := args.Get(0).([]news.Summary)
	return items, args.Error(1)
}

func (m *mockAPI) Login(ctx context.Context, email, password string) (account.Session, error) {
	args := m.Called(ctx, email, password)
	session, _ := args.Get(0).(account.Session)
	return session, args.Error(1)
}

func (m *mockAPI) AddToCart(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}

func (m *mockAPI) GetCart(ctx context.Context, userID int) ([]shop.CartLine, error) {
	args := m.Called(ctx, userID)
	lines, _ := args.Get(0).([]shop.CartLine)
	return lines, args.Error(1)
}

func (m *mockAPI) UpdateCartItem(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	args := m.Called(ctx, userID, itemID, quantity)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}

func (m *mockAPI) DeleteCartItem(ctx context.Context, userID, itemID int) (shop.Ack, error) {
	args := m.Called(ctx, userID, itemID)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}

func (m *mockAPI) ClearCart(ctx context.Context, userID int) (shop.Ack, error) {
	args := m.Called(ctx, userID)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}

func (m *mockAPI) Checkout(ctx context.Context, req shop.CheckoutRequest) (shop.Ack, error) {
	args := m.Called(ctx, req)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}

func (m *mockAPI) ListOrders(ctx context.Context, userID int) ([]shop.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]shop.Order)
	return orders, args.Error(1)
}

func (m *mockAPI) MarkOrderReceived(ctx context.Context, orderID int) (shop.Ack, error) {
	args := m.Called(ctx, orderID)
	ack, _ := args.Get(0).(shop.Ack)
	return ack, args.Error(1)
}
