// Package nav models screen routes and the back stack.
package nav

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// Route names a screen.
type Route string

const (
	Home       Route = "home"
	Catalog    Route = "catalog"
	Community  Route = "community"
	News       Route = "news"
	NewsDetail Route = "news_detail"
	ItemDetail Route = "item_detail"
	Cart       Route = "cart"
	Orders     Route = "orders"
)

// Menu lists the top-level routes in sidebar order.
var Menu = []Route{Home, Catalog, Community, News, Cart, Orders}

// ErrMissingParameter is reported by detail screens reached without an id.
var ErrMissingParameter = errors.New("missing id parameter")

// ErrUnknownRoute is returned by Parse for names outside the route table.
var ErrUnknownRoute = errors.New("unknown route")

// Title returns a human label for the route.
func (r Route) Title() string {
	switch r {
	case Home:
		return "Home"
	case Catalog:
		return "Catalog"
	case Community:
		return "Community"
	case News:
		return "News"
	case NewsDetail:
		return "Article"
	case ItemDetail:
		return "Plant"
	case Cart:
		return "Cart"
	case Orders:
		return "Orders"
	default:
		return string(r)
	}
}

// NeedsID reports whether the route expects an integer parameter.
func (r Route) NeedsID() bool {
	return r == NewsDetail || r == ItemDetail
}

func (r Route) known() bool {
	switch r {
	case Home, Catalog, Community, News, NewsDetail, ItemDetail, Cart, Orders:
		return true
	}
	return false
}

// Target is a route plus its optional id.
type Target struct {
	Route Route
	ID    int
	HasID bool
}

// To builds a parameterless target.
func To(r Route) Target {
	return Target{Route: r}
}

// WithID builds a target carrying id.
func WithID(r Route, id int) Target {
	return Target{Route: r, ID: id, HasID: true}
}

// RequireID returns the id or ErrMissingParameter.
func (t Target) RequireID() (int, error) {
	if !t.HasID {
		return 0, fmt.Errorf("%s: %w", t.Route, ErrMissingParameter)
	}
	return t.ID, nil
}

func (t Target) String() string {
	if t.HasID {
		return fmt.Sprintf("%s/%d", t.Route, t.ID)
	}
	return string(t.Route)
}

// Parse reads "route" or "route/id". A detail route without an id parses
// successfully; the screen reports ErrMissingParameter when it mounts.
func Parse(s string) (Target, error) {
	s = strings.Trim(strings.TrimSpace(s), "/")
	name, param, hasParam := strings.Cut(s, "/")
	r := Route(name)
	if !r.known() {
		return Target{}, fmt.Errorf("%w: %q", ErrUnknownRoute, name)
	}
	if !hasParam || param == "" {
		return To(r), nil
	}
	id, err := strconv.Atoi(param)
	if err != nil {
		return Target{}, fmt.Errorf("route %s: invalid id %q: %w", r, param, err)
	}
	return WithID(r, id), nil
}

// Stack is the navigation history. The zero value is empty.
type Stack struct {
	entries []Target
}

// NewStack returns a stack rooted at root.
func NewStack(root Target) *Stack {
	return &Stack{entries: []Target{root}}
}

// Push moves to t.
func (s *Stack) Push(t Target) {
	s.entries = append(s.entries, t)
}

// Reset replaces the whole history with t.
func (s *Stack) Reset(t Target) {
	s.entries = append(s.entries[:0], t)
}

// Back pops the current entry. It reports false at the root.
func (s *Stack) Back() (Target, bool) {
	if len(s.entries) <= 1 {
		return s.Current(), false
	}
	s.entries = s.entries[:len(s.entries)-1]
	return s.Current(), true
}

// Current returns the top entry, or Home for an empty stack.
func (s *Stack) Current() Target {
	if len(s.entries) == 0 {
		return To(Home)
	}
	return s.entries[len(s.entries)-1]
}

// Depth returns the number of entries.
func (s *Stack) Depth() int {
	return len(s.entries)
}
