package catalog

import "strings"

// Criteria holds the active client-side filters of the catalog screen.
// A nil CategoryID and an empty SearchText mean no constraint.
type Criteria struct {
	CategoryID *int
	SearchText string
}

// WithCategory returns a copy constrained to the given category.
func (c Criteria) WithCategory(category Category) Criteria {
	id := int(category)
	c.CategoryID = &id
	return c
}

// WithoutCategory returns a copy with the category constraint removed.
func (c Criteria) WithoutCategory() Criteria {
	c.CategoryID = nil
	return c
}

// WithSearch returns a copy with the given search text.
func (c Criteria) WithSearch(text string) Criteria {
	c.SearchText = text
	return c
}

// IsEmpty reports whether no predicate is active.
func (c Criteria) IsEmpty() bool {
	return c.CategoryID == nil && c.SearchText == ""
}

// Matches reports whether the item satisfies every active predicate.
func (c Criteria) Matches(item Item) bool {
	if c.CategoryID != nil && item.CategoryID != *c.CategoryID {
		return false
	}
	return containsFold(item.Name, c.SearchText)
}

// Filter returns the items matching criteria, preserving input order.
func Filter(items []Item, criteria Criteria) []Item {
	if criteria.IsEmpty() {
		return append([]Item(nil), items...)
	}
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if criteria.Matches(item) {
			out = append(out, item)
		}
	}
	return out
}

func containsFold(s, substr string) bool {
	if substr == "" {
		return true
	}
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
