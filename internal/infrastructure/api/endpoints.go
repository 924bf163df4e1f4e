package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/tesso57/sanita/internal/domain/account"
	"github.com/tesso57/sanita/internal/domain/catalog"
	"github.com/tesso57/sanita/internal/domain/news"
	"github.com/tesso57/sanita/internal/domain/shop"
)

// ListItems returns every plant.
func (c *Client) ListItems(ctx context.Context) ([]catalog.Item, error) {
	var out []plantDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: "/api/plantas"}, &out); err != nil {
		return nil, err
	}
	return plantsToDomain(out), nil
}

// GetItem returns one plant.
func (c *Client) GetItem(ctx context.Context, id int) (catalog.Item, error) {
	var out plantDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/api/plantas/%d", id)}, &out); err != nil {
		return catalog.Item{}, err
	}
	return out.toDomain(), nil
}

// SearchItem looks a plant up by exact name.
func (c *Client) SearchItem(ctx context.Context, name string) (catalog.Item, error) {
	var out plantDTO
	cl := call{method: http.MethodGet, path: "/api/informacion", query: map[string]string{"nombre": name}}
	if err := c.do(ctx, cl, &out); err != nil {
		return catalog.Item{}, err
	}
	return out.toDomain(), nil
}

// ListItemsByCategory returns the plants of one category.
func (c *Client) ListItemsByCategory(ctx context.Context, categoryID int) ([]catalog.Item, error) {
	var out []plantDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/api/plantas/categoria/%d", categoryID)}, &out); err != nil {
		return nil, err
	}
	return plantsToDomain(out), nil
}

// ListNews returns every article.
func (c *Client) ListNews(ctx context.Context) ([]news.Item, error) {
	var out []newsDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: "/api/noticias"}, &out); err != nil {
		return nil, err
	}
	items := make([]news.Item, len(out))
	for i, d := range out {
		items[i] = d.toDomain()
	}
	return items, nil
}

// GetNews returns one article.
func (c *Client) GetNews(ctx context.Context, id int) (news.Item, error) {
	var out newsDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: fmt.Sprintf("/api/noticia/%d", id)}, &out); err != nil {
		return news.Item{}, err
	}
	return out.toDomain(), nil
}

// ListHighlights returns the home carousel entries.
func (c *Client) ListHighlights(ctx context.Context) ([]news.Summary, error) {
	var out []summaryDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: "/api/resumen-inicio"}, &out); err != nil {
		return nil, err
	}
	items := make([]news.Summary, len(out))
	for i, d := range out {
		items[i] = news.Summary{ID: d.ID, Title: d.Title, ImageRef: d.Image}
	}
	return items, nil
}

// Login posts the credentials as a form.
func (c *Client) Login(ctx context.Context, email, password string) (account.Session, error) {
	var out loginDTO
	cl := call{
		method: http.MethodPost,
		path:   "/login",
		form:   map[string]string{"correo": email, "contrasena": password},
	}
	if err := c.do(ctx, cl, &out); err != nil {
		return account.Session{}, err
	}
	return out.toDomain(), nil
}

// AddToCart adds quantity units of a plant to the user's cart.
func (c *Client) AddToCart(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	body := cartAddDTO{UserID: userID, ItemID: itemID, Quantity: quantity}
	return c.ack(ctx, call{method: http.MethodPost, path: "/api/carrito", body: body})
}

// GetCart returns the user's cart lines.
func (c *Client) GetCart(ctx context.Context, userID int) ([]shop.CartLine, error) {
	var out []cartLineDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: "/api/carrito/" + strconv.Itoa(userID)}, &out); err != nil {
		return nil, err
	}
	lines := make([]shop.CartLine, len(out))
	for i, d := range out {
		lines[i] = d.toDomain()
	}
	return lines, nil
}

// UpdateCartItem sets the quantity of one cart line.
func (c *Client) UpdateCartItem(ctx context.Context, userID, itemID, quantity int) (shop.Ack, error) {
	path := fmt.Sprintf("/api/carrito/%d/%d", userID, itemID)
	return c.ack(ctx, call{method: http.MethodPut, path: path, body: quantityDTO{Quantity: quantity}})
}

// DeleteCartItem removes one cart line.
func (c *Client) DeleteCartItem(ctx context.Context, userID, itemID int) (shop.Ack, error) {
	return c.ack(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/api/carrito/%d/%d", userID, itemID)})
}

// ClearCart removes every line of the user's cart.
func (c *Client) ClearCart(ctx context.Context, userID int) (shop.Ack, error) {
	return c.ack(ctx, call{method: http.MethodDelete, path: fmt.Sprintf("/api/carrito/usuario/%d", userID)})
}

// Checkout pays for the user's cart.
func (c *Client) Checkout(ctx context.Context, req shop.CheckoutRequest) (shop.Ack, error) {
	return c.ack(ctx, call{method: http.MethodPost, path: "/api/pago", body: checkoutFromDomain(req)})
}

// ListOrders returns the user's orders.
func (c *Client) ListOrders(ctx context.Context, userID int) ([]shop.Order, error) {
	var out []orderDTO
	if err := c.do(ctx, call{method: http.MethodGet, path: "/api/pedidos/" + strconv.Itoa(userID)}, &out); err != nil {
		return nil, err
	}
	orders := make([]shop.Order, len(out))
	for i, d := range out {
		orders[i] = d.toDomain()
	}
	return orders, nil
}

// MarkOrderReceived flags an order as delivered.
func (c *Client) MarkOrderReceived(ctx context.Context, orderID int) (shop.Ack, error) {
	return c.ack(ctx, call{method: http.MethodPut, path: fmt.Sprintf("/api/pedidos/%d/recibido", orderID)})
}

// ack tolerates empty or non-JSON success bodies.
func (c *Client) ack(ctx context.Context, cl call) (shop.Ack, error) {
	var raw ackDTO
	cl.lenient = true
	if err := c.do(ctx, cl, &raw); err != nil {
		return shop.Ack{}, err
	}
	return shop.Ack{Message: raw.Message}, nil
}
