// Package asset resolves server image references to locally bundled assets.
package asset

import "strings"

// Handle is a displayable bundled asset.
type Handle struct {
	Name string
	Art  string
}

// Catalog looks up bundled assets by normalized name.
type Catalog interface {
	Lookup(name string) (Handle, bool)
}

// Result is the outcome of a resolution. It is never an error:
// a miss is reported with Found == false.
type Result struct {
	Key    string
	Handle Handle
	Found  bool
}

// Normalize turns an image reference into a bundled asset name.
// "https://host/path/Aloe-Vera.JPG" becomes "aloe_vera".
func Normalize(ref string) string {
	name := ref
	if idx := strings.LastIndex(name, "/"); idx >= 0 {
		name = name[idx+1:]
	}
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[:idx]
	}
	name = strings.ReplaceAll(name, "-", "_")
	return strings.ToLower(name)
}

// Resolver maps image references onto a Catalog.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	catalog Catalog
}

// NewResolver creates a Resolver backed by catalog. A nil catalog resolves nothing.
func NewResolver(catalog Catalog) Resolver {
	return Resolver{catalog: catalog}
}

// Resolve normalizes ref and looks it up.
func (r Resolver) Resolve(ref string) Result {
	key := Normalize(ref)
	result := Result{Key: key}
	if r.catalog == nil || key == "" {
		return result
	}
	handle, ok := r.catalog.Lookup(key)
	if !ok {
		return result
	}
	result.Handle = handle
	result.Found = true
	return result
}

// IsRemote reports whether ref points at an http(s) resource that could be
// opened outside the bundled catalog.
func IsRemote(ref string) bool {
	lower := strings.ToLower(strings.TrimSpace(ref))
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
