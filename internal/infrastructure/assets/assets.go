// Package assets bundles the plant thumbnails shipped with the binary.
package assets

import (
	"embed"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/tesso57/sanita/internal/domain/asset"
)

//go:embed thumbnails/*.txt
var thumbnails embed.FS

// Catalog is a read-only set of bundled thumbnails keyed by normalized name.
type Catalog struct {
	entries map[string]asset.Handle
}

// Bundled loads the thumbnails compiled into the binary.
func Bundled() (*Catalog, error) {
	sub, err := fs.Sub(thumbnails, "thumbnails")
	if err != nil {
		return nil, err
	}
	return Load(sub)
}

// Load builds a Catalog from every .txt file at the root of fsys.
// File names are normalized the same way image references are.
func Load(fsys fs.FS) (*Catalog, error) {
	files, err := fs.Glob(fsys, "*.txt")
	if err != nil {
		return nil, err
	}
	c := new(Catalog{entries: make(map[string]asset.Handle, len(files))})
	for _, name := range files {
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return nil, err
		}
		key := asset.Normalize(name)
		c.entries[key] = asset.Handle{
			Name: strings.TrimSuffix(path.Base(name), path.Ext(name)),
			Art:  strings.TrimRight(string(data), "\n"),
		}
	}
	return c, nil
}

// Lookup implements asset.Catalog.
func (c *Catalog) Lookup(name string) (asset.Handle, bool) {
	if c == nil {
		return asset.Handle{}, false
	}
	h, ok := c.entries[name]
	return h, ok
}

// Names returns the bundled keys in sorted order.
func (c *Catalog) Names() []string {
	if c == nil {
		return nil
	}
	names := make([]string, 0, len(c.entries))
	for k := range c.entries {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}
