// Package catalog defines the plant catalog models and the client-side list filter.
package catalog

import "fmt"

// Category identifies a catalog category on the server.
type Category int

const (
	// Healing groups wound-healing plants.
	Healing Category = 1
	// Immune groups immune-support plants.
	Immune Category = 2
)

// Label returns the display name of the category.
func (c Category) Label() string {
	switch c {
	case Healing:
		return "Healing"
	case Immune:
		return "Immune"
	default:
		return fmt.Sprintf("Category %d", int(c))
	}
}

// Categories lists the categories offered as catalog filters.
var Categories = []Category{Healing, Immune}

// Item represents a single plant returned by the catalog endpoints.
type Item struct {
	ID         int
	Name       string
	ImageRef   string
	Price      int
	CategoryID int
}

// PriceLabel formats the price in soles.
func (i Item) PriceLabel() string {
	return FormatPrice(i.Price)
}

// FormatPrice formats an integer amount in soles.
func FormatPrice(amount int) string {
	return fmt.Sprintf("S/. %d", amount)
}
