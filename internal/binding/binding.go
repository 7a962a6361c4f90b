// Package binding keeps one view node's icon content and fill overrides in
// step with its style inputs.
package binding

import (
	"log/slog"

	"faicon/internal/catalog"
	"faicon/internal/extract"
	"faicon/internal/style"
	"faicon/internal/variant"
)

// Sink receives updates for the bound view node.
type Sink interface {
	// PushContent replaces the displayed vector markup.
	PushContent(markup string)
	// PushOverrides replaces the node's fill override rules.
	PushOverrides(text string)
}

// Resolver maps an icon and slug to content. *catalog.Catalog implements it.
type Resolver interface {
	Resolve(icon catalog.Icon, slug variant.Slug) string
}

// State is the push state of a binding within a pass.
type State int

const (
	Clean State = iota
	Dirty
)

func (s State) String() string {
	if s == Dirty {
		return "dirty"
	}
	return "clean"
}

type Option func(*Binding)

// WithLogger sets the logger used for push traces.
func WithLogger(l *slog.Logger) Option {
	return func(b *Binding) { b.log = l }
}

// Binding ties an icon identity to a view node. A Binding is owned by one
// caller; independent bindings share nothing but the read-only resolver.
type Binding struct {
	resolver  Resolver
	icon      catalog.Icon
	sink      Sink
	extractor extract.Extractor
	state     State
	slug      variant.Slug
	log       *slog.Logger
}

// New mounts icon on sink, pushing the default variant's content and an empty
// override once.
func New(r Resolver, icon catalog.Icon, sink Sink, opts ...Option) *Binding {
	b := &Binding{
		resolver: r,
		icon:     icon,
		sink:     sink,
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(b)
	}
	b.state = Dirty
	b.push()
	return b
}

// StylePass reads src and, if any input changed since the last pass, pushes
// freshly resolved content and overrides to the sink. It reports whether a
// push happened.
func (b *Binding) StylePass(src style.Source) bool {
	if !b.extractor.Read(src) {
		return false
	}
	b.state = Dirty
	b.push()
	return true
}

func (b *Binding) push() {
	b.slug = b.extractor.Variant().Slug()
	content := b.resolver.Resolve(b.icon, b.slug)
	overrides := b.extractor.OverrideText()
	b.sink.PushContent(content)
	b.sink.PushOverrides(overrides)
	b.state = Clean
	b.log.Debug("icon restyled",
		slog.Int("icon", int(b.icon)),
		slog.String("slug", string(b.slug)),
		slog.Bool("placeholder", content == catalog.Placeholder),
	)
}

func (b *Binding) Icon() catalog.Icon { return b.icon }

// Slug returns the slug of the content last pushed.
func (b *Binding) Slug() variant.Slug { return b.slug }

func (b *Binding) State() State { return b.state }

// Snapshot returns the style inputs read by the last pass.
func (b *Binding) Snapshot() extract.Snapshot { return b.extractor.Snapshot() }
