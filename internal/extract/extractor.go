// Package extract reads icon style properties from a style source and derives
// the fill override rules handed to the view node.
package extract

import (
	"fmt"
	"strings"

	"faicon/internal/style"
	"faicon/internal/variant"
)

// InheritColor is the fill used for a duotone layer without a configured
// color: the currently active text color.
const InheritColor = "currentColor"

const (
	PrimaryClass   = "fa-primary"
	SecondaryClass = "fa-secondary"
)

// Snapshot is the set of style inputs read in one pass. It is compared by
// value to detect changes.
type Snapshot struct {
	Variant   variant.Variant
	Color     style.Option
	Primary   style.Option
	Secondary style.Option
}

// Take reads a snapshot from src.
func Take(src style.Source) Snapshot {
	return Snapshot{
		Variant:   src.Variant(),
		Color:     src.Color(),
		Primary:   src.Primary(),
		Secondary: src.Secondary(),
	}
}

// Extractor keeps the last snapshot read for one view node. It is not safe
// for concurrent use.
type Extractor struct {
	snap Snapshot
}

// Read takes a new snapshot from src and reports whether it differs from the
// previous one. The first read compares against the defaults.
func (e *Extractor) Read(src style.Source) bool {
	next := Take(src)
	if next == e.snap {
		return false
	}
	e.snap = next
	return true
}

func (e *Extractor) Snapshot() Snapshot { return e.snap }

func (e *Extractor) Variant() variant.Variant { return e.snap.Variant }

func (e *Extractor) Color() style.Option { return e.snap.Color }

func (e *Extractor) Primary() style.Option { return e.snap.Primary }

func (e *Extractor) Secondary() style.Option { return e.snap.Secondary }

// OverrideText derives the fill rules for the current snapshot.
func (e *Extractor) OverrideText() string {
	return e.snap.OverrideText()
}

// OverrideText returns two rules targeting the primary and secondary layers
// for duotone variants, and a single rule for the whole graphic otherwise.
// Unset duotone layers fall back to InheritColor; an unset single color
// yields no rule at all.
func (s Snapshot) OverrideText() string {
	if s.Variant.Duotone {
		var b strings.Builder
		writeRule(&b, "."+PrimaryClass, fill(s.Primary))
		writeRule(&b, "."+SecondaryClass, fill(s.Secondary))
		return b.String()
	}
	c, ok := s.Color.Get()
	if !ok {
		return ""
	}
	var b strings.Builder
	writeRule(&b, "svg", style.CSS(c))
	return b.String()
}

func fill(o style.Option) string {
	if c, ok := o.Get(); ok {
		return style.CSS(c)
	}
	return InheritColor
}

func writeRule(b *strings.Builder, selector, color string) {
	fmt.Fprintf(b, "%s {\n  fill: %s !important;\n}\n", selector, color)
}
