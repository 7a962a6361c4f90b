// Package icons declares the icon set shipped with faicon. The SVG tree is
// embedded at build time under svgs/<slug>/<file>.svg.
package icons

import (
	"embed"

	"faicon/internal/binding"
	"faicon/internal/catalog"
	"faicon/internal/style"
)

//go:embed svgs
var assets embed.FS

// Identities, in declaration order.
const (
	House catalog.Icon = iota
	User
	Star
	Heart
	Check
	Gopher
	Bell
)

// Catalog is the process-wide icon table.
var Catalog = catalog.MustDeclare(assets, "svgs",
	catalog.Def{Name: "house"},
	catalog.Def{Name: "user"},
	catalog.Def{Name: "star"},
	catalog.Def{Name: "heart"},
	catalog.Def{Name: "check", Path: "circle-check"},
	catalog.Def{Name: "gopher"},
	catalog.Def{Name: "bell"}, // not authored yet, always the placeholder
)

// DefaultStyle is the per-icon layer a view starts from. Brand marks default
// to the brands family; everything else inherits.
func DefaultStyle(icon catalog.Icon) style.Style {
	if icon == Gopher {
		return style.New().Brands()
	}
	return style.New()
}

// View mounts icon on sink.
func View(icon catalog.Icon, sink binding.Sink, opts ...binding.Option) *binding.Binding {
	return binding.New(Catalog, icon, sink, opts...)
}
