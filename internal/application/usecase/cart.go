package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/tesso57/sanita/internal/domain/shop"
)

// ErrNotLoggedIn is returned when a cart or order operation has no user.
var ErrNotLoggedIn = errors.New("log in to use the cart and orders")

// CartService wraps cart and checkout calls. Results are never applied
// locally; callers re-fetch the cart after a mutation.
type CartService struct {
	API CartAPI
}

// NewCartService constructs a CartService.
func NewCartService(api CartAPI) *CartService {
	return new(CartService{API: api})
}

// List returns the user's cart lines.
func (s *CartService) List(ctx context.Context, userID int) ([]shop.CartLine, error) {
	if userID <= 0 {
		return nil, ErrNotLoggedIn
	}
	return s.API.GetCart(ctx, userID)
}

// Add puts quantity units of a plant into the cart.
func (s *CartService) Add(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	if userID <= 0 {
		return shop.Ack{}, ErrNotLoggedIn
	}
	if itemID <= 0 {
		return shop.Ack{}, fmt.Errorf("plant %d: %w", itemID, ErrInvalidID)
	}
	if quantity <= 0 {
		quantity = 1
	}
	return s.API.AddToCart(ctx, userID, itemID, quantity)
}

// SetQuantity changes a line quantity. A quantity below one removes the line.
func (s *CartService) SetQuantity(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	if userID <= 0 {
		return shop.Ack{}, ErrNotLoggedIn
	}
	if quantity < 1 {
		return s.Remove(ctx, userID, itemID)
	}
	return s.API.UpdateCartItem(ctx, userID, itemID, quantity)
}

// Remove deletes one line from the cart.
func (s *CartService) Remove(ctx context.Context, userID, itemID int) (shop.Ack, error) {
	if userID <= 0 {
		return shop.Ack{}, ErrNotLoggedIn
	}
	return s.API.DeleteCartItem(ctx, userID, itemID)
}

// Clear empties the cart.
func (s *CartService) Clear(ctx context.Context, userID int) (shop.Ack, error) {
	if userID <= 0 {
		return shop.Ack{}, ErrNotLoggedIn
	}
	return s.API.ClearCart(ctx, userID)
}

// Checkout validates and submits the payment.
func (s *CartService) Checkout(ctx context.Context, req shop.CheckoutRequest) (shop.Ack, error) {
	if req.UserID <= 0 {
		return shop.Ack{}, ErrNotLoggedIn
	}
	if err := req.Validate(); err != nil {
		return shop.Ack{}, err
	}
	return s.API.Checkout(ctx, req)
}

// OrderService wraps the order endpoints.
type OrderService struct {
	API OrderAPI
}

// NewOrderService constructs an OrderService.
func NewOrderService(api OrderAPI) *OrderService {
	return new(OrderService{API: api})
}

// List returns the user's orders.
func (s *OrderService) List(ctx context.Context, userID int) ([]shop.Order, error) {
	if userID <= 0 {
		return nil, ErrNotLoggedIn
	}
	return s.API.ListOrders(ctx, userID)
}

// MarkReceived flags an order as received.
func (s *OrderService) MarkReceived(ctx context.Context, orderID int) (shop.Ack, error) {
	if orderID <= 0 {
		return shop.Ack{}, fmt.Errorf("order %d: %w", orderID, ErrInvalidID)
	}
	return s.API.MarkOrderReceived(ctx, orderID)
}
