package variant_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"faicon/internal/variant"
)

func TestSlugModifierOrder(t *testing.T) {
	for _, base := range variant.Bases() {
		if base == variant.Brands {
			continue
		}
		for _, sharp := range []bool{false, true} {
			for _, duotone := range []bool{false, true} {
				v := variant.Variant{Base: base, Sharp: sharp, Duotone: duotone}
				want := ""
				if sharp {
					want += "sharp-"
				}
				if duotone {
					want += "duotone-"
				}
				want += base.String()
				if base == variant.Solid && duotone && !sharp {
					want = "duotone"
				}
				require.Equal(t, variant.Slug(want), v.Slug(), "variant %s", v)
			}
		}
	}
}

func TestSlugBrandsWithModifiersFallsBackToSolid(t *testing.T) {
	cases := []variant.Variant{
		{Base: variant.Brands, Sharp: true},
		{Base: variant.Brands, Duotone: true},
		{Base: variant.Brands, Sharp: true, Duotone: true},
	}
	for _, v := range cases {
		require.Equal(t, variant.SlugSolid, v.Slug(), "variant %s", v)
	}
	require.Equal(t, variant.SlugBrands, variant.Variant{Base: variant.Brands}.Slug())
}

func TestSlugOutOfRangeBase(t *testing.T) {
	require.Equal(t, variant.SlugSolid, variant.Variant{Base: variant.Base(42), Sharp: true}.Slug())
}

func TestSlugsAreClosedSet(t *testing.T) {
	seen := map[variant.Slug]bool{}
	for _, base := range variant.Bases() {
		for _, sharp := range []bool{false, true} {
			for _, duotone := range []bool{false, true} {
				slug := variant.Variant{Base: base, Sharp: sharp, Duotone: duotone}.Slug()
				require.GreaterOrEqual(t, slug.Index(), 0, "slug %q not in Slugs()", slug)
				seen[slug] = true
			}
		}
	}
	require.Len(t, seen, len(variant.Slugs()))
	require.Equal(t, -1, variant.Slug("duotone-solid").Index())
}

func TestString(t *testing.T) {
	require.Equal(t, "solid", variant.Default().String())
	require.Equal(t, "duotone-solid", variant.Variant{Duotone: true}.String())
	require.Equal(t, "sharp-duotone-light", variant.Variant{Base: variant.Light, Sharp: true, Duotone: true}.String())
	require.Equal(t, "sharp-brands", variant.Variant{Base: variant.Brands, Sharp: true}.String())
}

func TestParse(t *testing.T) {
	cases := map[string]variant.Variant{
		"":                     variant.Default(),
		"solid":                variant.Default(),
		"duotone":              {Duotone: true},
		"duotone-regular":      {Base: variant.Regular, Duotone: true},
		"Sharp-Thin":           {Base: variant.Thin, Sharp: true},
		" sharp-duotone-light": {Base: variant.Light, Sharp: true, Duotone: true},
		"brands":               {Base: variant.Brands},
	}
	for in, want := range cases {
		got, err := variant.Parse(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
}

func TestParseRoundTrip(t *testing.T) {
	for _, base := range variant.Bases() {
		for _, sharp := range []bool{false, true} {
			for _, duotone := range []bool{false, true} {
				v := variant.Variant{Base: base, Sharp: sharp, Duotone: duotone}
				got, err := variant.Parse(v.String())
				require.NoError(t, err)
				require.Equal(t, v, got)
			}
		}
	}
}

func TestParseErrors(t *testing.T) {
	for _, in := range []string{"bold", "solid-regular", "sharp--thin"} {
		_, err := variant.Parse(in)
		require.ErrorIs(t, err, variant.ErrUnknownVariant, in)
	}
}
