package variant

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownVariant is returned by Parse for tokens that do not name a base
// family or modifier.
var ErrUnknownVariant = errors.New("unknown variant")

// Base is the style family an icon is drawn in.
type Base int

const (
	Solid Base = iota
	Regular
	Light
	Thin
	Brands
)

var baseNames = [...]string{
	Solid:   "solid",
	Regular: "regular",
	Light:   "light",
	Thin:    "thin",
	Brands:  "brands",
}

func (b Base) String() string {
	if b < Solid || b > Brands {
		return fmt.Sprintf("Base(%d)", int(b))
	}
	return baseNames[b]
}

// Bases returns every base family in declaration order.
func Bases() []Base {
	return []Base{Solid, Regular, Light, Thin, Brands}
}

// Variant describes how an icon should be drawn. The zero value is plain solid.
type Variant struct {
	Base    Base
	Sharp   bool
	Duotone bool
}

// Default returns the plain solid variant.
func Default() Variant {
	return Variant{Base: Solid}
}

// String renders the variant as sharp, duotone and base joined by dashes,
// e.g. "sharp-duotone-light". Unlike Slug it never collapses a combination.
func (v Variant) String() string {
	parts := make([]string, 0, 3)
	if v.Sharp {
		parts = append(parts, "sharp")
	}
	if v.Duotone {
		parts = append(parts, "duotone")
	}
	parts = append(parts, v.Base.String())
	return strings.Join(parts, "-")
}

// Slug returns the canonical asset key for v. Combinations the catalog does
// not author (brands with a modifier, out of range bases) map to SlugSolid.
func (v Variant) Slug() Slug {
	if v.Base == Brands {
		if v.Sharp || v.Duotone {
			return SlugSolid
		}
		return SlugBrands
	}
	if v.Base < Solid || v.Base > Brands {
		return SlugSolid
	}
	// Plain duotone solid is authored under the bare "duotone" tree.
	if v.Duotone && !v.Sharp && v.Base == Solid {
		return SlugDuotone
	}
	return Slug(v.String())
}

// Parse reads a variant from its String form or from a canonical slug.
// Tokens may appear in any order; "duotone" alone means duotone solid.
func Parse(s string) (Variant, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return Default(), nil
	}
	var (
		v       Variant
		sawBase bool
	)
	for _, tok := range strings.Split(s, "-") {
		switch tok {
		case "sharp":
			v.Sharp = true
		case "duotone":
			v.Duotone = true
		default:
			b, ok := parseBase(tok)
			if !ok || sawBase {
				return Default(), fmt.Errorf("%w: %q", ErrUnknownVariant, s)
			}
			v.Base = b
			sawBase = true
		}
	}
	return v, nil
}

func parseBase(s string) (Base, bool) {
	for i, name := range baseNames {
		if name == s {
			return Base(i), true
		}
	}
	return Solid, false
}
