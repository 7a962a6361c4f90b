package catalog

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"path"
	"strings"

	"faicon/internal/model"
	"faicon/internal/variant"
)

// Placeholder is the content returned for any icon and slug pair without an
// authored asset: an empty document with the standard viewbox.
const Placeholder = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 24 24"></svg>`

var (
	ErrInvalidDef    = errors.New("invalid icon definition")
	ErrDuplicateIcon = errors.New("duplicate icon")
)

// Icon identifies one declared catalog entry. Values are assigned in
// declaration order starting at zero.
type Icon int

// Def declares one icon. Path is the file name (without extension) under each
// variant directory and defaults to Name.
type Def struct {
	Name string
	Path string
}

func (d Def) file() string {
	if d.Path != "" {
		return d.Path
	}
	return d.Name
}

type entry struct {
	content string
	ok      bool
}

// Catalog is the immutable icon x slug content table. It is safe for
// concurrent use once Declare returns.
type Catalog struct {
	defs  []Def
	index map[string]Icon
	table [][]entry
}

// Declare builds a catalog from defs, reading <base>/<slug>/<path>.svg out of
// fsys for every slug the codec can produce. Missing files are not an error;
// those pairs resolve through the fallback order of Resolve.
func Declare(fsys fs.FS, base string, defs ...Def) (*Catalog, error) {
	c := &Catalog{
		defs:  make([]Def, 0, len(defs)),
		index: make(map[string]Icon, len(defs)),
		table: make([][]entry, 0, len(defs)),
	}
	slugs := variant.Slugs()
	authored := 0
	for _, def := range defs {
		if strings.TrimSpace(def.Name) == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidDef)
		}
		if _, ok := c.index[def.Name]; ok {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateIcon, def.Name)
		}
		row := make([]entry, len(slugs))
		for i, slug := range slugs {
			p := path.Join(base, string(slug), def.file()+".svg")
			data, err := fs.ReadFile(fsys, p)
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, fmt.Errorf("read %s: %w", p, err)
			}
			row[i] = entry{content: string(data), ok: true}
			authored++
		}
		c.index[def.Name] = Icon(len(c.defs))
		c.defs = append(c.defs, def)
		c.table = append(c.table, row)
	}
	slog.Debug("icon catalog declared", slog.String("base", base), slog.Int("icons", len(c.defs)), slog.Int("assets", authored))
	return c, nil
}

// MustDeclare is like Declare but panics on an invalid declaration list.
func MustDeclare(fsys fs.FS, base string, defs ...Def) *Catalog {
	c, err := Declare(fsys, base, defs...)
	if err != nil {
		panic(fmt.Sprintf("catalog: %v", err))
	}
	return c
}

// Resolve returns the content for icon drawn with slug. It tries the exact
// pair, then the solid tree for brand marks, then Placeholder. It never fails.
func (c *Catalog) Resolve(icon Icon, slug variant.Slug) string {
	if content, ok := c.lookup(icon, slug); ok {
		return content
	}
	if slug == variant.SlugBrands {
		if content, ok := c.lookup(icon, variant.SlugSolid); ok {
			return content
		}
	}
	return Placeholder
}

// Authored reports whether Resolve(icon, slug) yields authored content.
func (c *Catalog) Authored(icon Icon, slug variant.Slug) bool {
	return c.Resolve(icon, slug) != Placeholder
}

func (c *Catalog) lookup(icon Icon, slug variant.Slug) (string, bool) {
	if c == nil || icon < 0 || int(icon) >= len(c.table) {
		return "", false
	}
	i := slug.Index()
	if i < 0 {
		return "", false
	}
	e := c.table[icon][i]
	return e.content, e.ok
}

// Lookup returns the identity declared under name.
func (c *Catalog) Lookup(name string) (Icon, bool) {
	if c == nil {
		return 0, false
	}
	icon, ok := c.index[name]
	return icon, ok
}

// Name returns the declared name of icon, or "" if it was never declared.
func (c *Catalog) Name(icon Icon) string {
	if c == nil || icon < 0 || int(icon) >= len(c.defs) {
		return ""
	}
	return c.defs[icon].Name
}

// Len returns the number of declared icons.
func (c *Catalog) Len() int {
	if c == nil {
		return 0
	}
	return len(c.defs)
}

// Icons returns every declared identity in declaration order.
func (c *Catalog) Icons() []Icon {
	out := make([]Icon, c.Len())
	for i := range out {
		out[i] = Icon(i)
	}
	return out
}

// Coverage reports, per declared icon, which slugs resolve to authored content.
func (c *Catalog) Coverage() []model.Coverage {
	out := make([]model.Coverage, 0, c.Len())
	for _, icon := range c.Icons() {
		def := c.defs[icon]
		cov := model.Coverage{Name: def.Name, Path: def.file()}
		for _, slug := range variant.Slugs() {
			if c.Authored(icon, slug) {
				cov.Authored = append(cov.Authored, string(slug))
			} else {
				cov.Missing = append(cov.Missing, string(slug))
			}
		}
		out = append(out, cov)
	}
	return out
}
