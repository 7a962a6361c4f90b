package style

import (
	"github.com/lucasb-eyer/go-colorful"

	"faicon/internal/variant"
)

// Prop names one of the icon style properties.
type Prop uint8

const (
	PropVariant Prop = 1 << iota
	PropColor
	PropPrimary
	PropSecondary
)

// Option is an optional color. The zero value is unset.
type Option struct {
	Value colorful.Color
	Set   bool
}

func Some(c colorful.Color) Option { return Option{Value: c, Set: true} }

func None() Option { return Option{} }

func (o Option) Get() (colorful.Color, bool) { return o.Value, o.Set }

// Source is read by the extractor on every style pass.
type Source interface {
	Variant() variant.Variant
	Color() Option
	Primary() Option
	Secondary() Option
}

// Style is an immutable set of icon style properties. Builder methods return
// a modified copy, so a Style can be shared between layers freely. Properties
// that were never set read as their defaults and are inherited in a cascade.
type Style struct {
	set       Prop
	variant   variant.Variant
	color     colorful.Color
	primary   colorful.Color
	secondary colorful.Color
}

// New returns an empty style.
func New() Style { return Style{} }

func (s Style) Variant() variant.Variant { return s.variant }

func (s Style) Color() Option { return s.option(PropColor, s.color) }

func (s Style) Primary() Option { return s.option(PropPrimary, s.primary) }

func (s Style) Secondary() Option { return s.option(PropSecondary, s.secondary) }

func (s Style) option(p Prop, c colorful.Color) Option {
	if s.set&p == 0 {
		return None()
	}
	return Some(c)
}

// IsSet reports whether p was set on this style (not inherited).
func (s Style) IsSet(p Prop) bool { return s.set&p != 0 }

// WithVariant replaces the whole variant.
func (s Style) WithVariant(v variant.Variant) Style {
	s.variant = v
	s.set |= PropVariant
	return s
}

func (s Style) withBase(b variant.Base) Style {
	v := s.variant
	v.Base = b
	return s.WithVariant(v)
}

func (s Style) Solid() Style   { return s.withBase(variant.Solid) }
func (s Style) Regular() Style { return s.withBase(variant.Regular) }
func (s Style) Light() Style   { return s.withBase(variant.Light) }
func (s Style) Thin() Style    { return s.withBase(variant.Thin) }
func (s Style) Brands() Style  { return s.withBase(variant.Brands) }

// Sharp adds the sharp modifier to the variant currently held by s.
func (s Style) Sharp() Style {
	v := s.variant
	v.Sharp = true
	return s.WithVariant(v)
}

// Duotone adds the duotone modifier to the variant currently held by s.
func (s Style) Duotone() Style {
	v := s.variant
	v.Duotone = true
	return s.WithVariant(v)
}

// WithColor sets the single fill color used by non-duotone variants.
func (s Style) WithColor(c colorful.Color) Style {
	s.color = c
	s.set |= PropColor
	return s
}

// WithPrimary sets the duotone primary fill.
func (s Style) WithPrimary(c colorful.Color) Style {
	s.primary = c
	s.set |= PropPrimary
	return s
}

// WithSecondary sets the duotone secondary fill.
func (s Style) WithSecondary(c colorful.Color) Style {
	s.secondary = c
	s.set |= PropSecondary
	return s
}

// WithOption sets p from o, or unsets it when o is empty. p must be one of
// the color properties.
func (s Style) WithOption(p Prop, o Option) Style {
	c, ok := o.Get()
	if !ok {
		return s.Unset(p)
	}
	switch p {
	case PropColor:
		return s.WithColor(c)
	case PropPrimary:
		return s.WithPrimary(c)
	case PropSecondary:
		return s.WithSecondary(c)
	}
	return s
}

// Unset clears the given properties so they are inherited again.
func (s Style) Unset(p Prop) Style {
	s.set &^= p
	if p&PropVariant != 0 {
		s.variant = variant.Default()
	}
	if p&PropColor != 0 {
		s.color = colorful.Color{}
	}
	if p&PropPrimary != 0 {
		s.primary = colorful.Color{}
	}
	if p&PropSecondary != 0 {
		s.secondary = colorful.Color{}
	}
	return s
}

// Inherit fills every property not set on s from parent. The variant is
// inherited as a whole: a child that only adds a modifier starts from solid.
func (s Style) Inherit(parent Style) Style {
	out := s
	if !s.IsSet(PropVariant) && parent.IsSet(PropVariant) {
		out = out.WithVariant(parent.variant)
	}
	if !s.IsSet(PropColor) && parent.IsSet(PropColor) {
		out = out.WithColor(parent.color)
	}
	if !s.IsSet(PropPrimary) && parent.IsSet(PropPrimary) {
		out = out.WithPrimary(parent.primary)
	}
	if !s.IsSet(PropSecondary) && parent.IsSet(PropSecondary) {
		out = out.WithSecondary(parent.secondary)
	}
	return out
}

// Cascade folds styles from the root down; later styles win.
func Cascade(styles ...Style) Style {
	var out Style
	for _, s := range styles {
		out = s.Inherit(out)
	}
	return out
}
