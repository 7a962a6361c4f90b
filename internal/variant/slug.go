package variant

// Slug is a canonical asset lookup key. Slugs are only produced by Variant.Slug
// and the constants below.
type Slug string

const (
	SlugSolid   Slug = "solid"
	SlugRegular Slug = "regular"
	SlugLight   Slug = "light"
	SlugThin    Slug = "thin"
	SlugBrands  Slug = "brands"

	SlugSharpSolid   Slug = "sharp-solid"
	SlugSharpRegular Slug = "sharp-regular"
	SlugSharpLight   Slug = "sharp-light"
	SlugSharpThin    Slug = "sharp-thin"

	SlugDuotone        Slug = "duotone"
	SlugDuotoneRegular Slug = "duotone-regular"
	SlugDuotoneLight   Slug = "duotone-light"
	SlugDuotoneThin    Slug = "duotone-thin"

	SlugSharpDuotoneSolid   Slug = "sharp-duotone-solid"
	SlugSharpDuotoneRegular Slug = "sharp-duotone-regular"
	SlugSharpDuotoneLight   Slug = "sharp-duotone-light"
	SlugSharpDuotoneThin    Slug = "sharp-duotone-thin"
)

var slugs = []Slug{
	SlugSolid, SlugRegular, SlugLight, SlugThin, SlugBrands,
	SlugSharpSolid, SlugSharpRegular, SlugSharpLight, SlugSharpThin,
	SlugDuotone, SlugDuotoneRegular, SlugDuotoneLight, SlugDuotoneThin,
	SlugSharpDuotoneSolid, SlugSharpDuotoneRegular, SlugSharpDuotoneLight, SlugSharpDuotoneThin,
}

// Slugs returns every slug the codec can produce.
func Slugs() []Slug {
	out := make([]Slug, len(slugs))
	copy(out, slugs)
	return out
}

// Index returns the position of s in Slugs, or -1 for strings that are not
// canonical slugs.
func (s Slug) Index() int {
	for i, known := range slugs {
		if known == s {
			return i
		}
	}
	return -1
}
