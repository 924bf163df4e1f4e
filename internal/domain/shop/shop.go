// Package shop defines cart, checkout and order models.
package shop

import (
	"errors"
	"strings"
	"unicode"
)

// Ack is the generic acknowledgement returned by mutating endpoints.
type Ack struct {
	Message string
}

// CartLine is one plant in a user's cart.
type CartLine struct {
	ID       int
	UserID   int
	ItemID   int
	Quantity int
	Name     string
	ImageRef string
	Price    float64
}

// Subtotal returns price times quantity.
func (l CartLine) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// CartTotal sums all line subtotals.
func CartTotal(lines []CartLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += line.Subtotal()
	}
	return total
}

// CartCount sums the quantities of all lines.
func CartCount(lines []CartLine) int {
	n := 0
	for _, line := range lines {
		n += line.Quantity
	}
	return n
}

// Order is a placed order.
type Order struct {
	ID     int
	UserID int
	Total  float64
	Status string
	Date   string
}

// Received reports whether the order was already marked as received.
func (o Order) Received() bool {
	status := strings.ToLower(strings.TrimSpace(o.Status))
	return status == "recibido" || status == "received"
}

// CheckoutRequest carries the payment and shipping data of a checkout.
type CheckoutRequest struct {
	UserID       int
	CardNumber   string
	CardMonth    int
	CardYear     int
	CardCVV      string
	Address      string
	StreetNumber string
	DNI          string
}

var (
	ErrInvalidUser       = errors.New("user id is required")
	ErrInvalidCardNumber = errors.New("card number must have 13 to 19 digits")
	ErrInvalidExpiry     = errors.New("card expiry month must be 1-12 and year must be set")
	ErrInvalidCVV        = errors.New("cvv must have 3 or 4 digits")
	ErrMissingAddress    = errors.New("address is required")
	ErrInvalidDNI        = errors.New("dni must have 8 digits")
)

// Validate checks the request before it is sent to the server.
func (r CheckoutRequest) Validate() error {
	if r.UserID <= 0 {
		return ErrInvalidUser
	}
	card := strings.ReplaceAll(r.CardNumber, " ", "")
	if len(card) < 13 || len(card) > 19 || !digitsOnly(card) {
		return ErrInvalidCardNumber
	}
	if r.CardMonth < 1 || r.CardMonth > 12 || r.CardYear <= 0 {
		return ErrInvalidExpiry
	}
	if (len(r.CardCVV) != 3 && len(r.CardCVV) != 4) || !digitsOnly(r.CardCVV) {
		return ErrInvalidCVV
	}
	if strings.TrimSpace(r.Address) == "" {
		return ErrMissingAddress
	}
	if len(r.DNI) != 8 || !digitsOnly(r.DNI) {
		return ErrInvalidDNI
	}
	return nil
}

func digitsOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
