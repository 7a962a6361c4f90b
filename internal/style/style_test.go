package style_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"faicon/internal/style"
	"faicon/internal/variant"
)

var (
	red  = colorful.Color{R: 1}
	blue = colorful.Color{B: 1}
)

func TestZeroStyleReadsDefaults(t *testing.T) {
	s := style.New()
	require.Equal(t, variant.Default(), s.Variant())
	require.False(t, s.Color().Set)
	require.False(t, s.Primary().Set)
	require.False(t, s.Secondary().Set)
}

func TestBuilderMethods(t *testing.T) {
	s := style.New().Light().Sharp().Duotone()
	require.Equal(t, variant.Variant{Base: variant.Light, Sharp: true, Duotone: true}, s.Variant())
	require.True(t, s.IsSet(style.PropVariant))

	// Builders never mutate the receiver.
	base := style.New().Regular()
	_ = base.Sharp()
	require.False(t, base.Variant().Sharp)

	c := style.New().WithColor(red).WithPrimary(blue)
	got, ok := c.Color().Get()
	require.True(t, ok)
	require.Equal(t, red, got)
	require.Equal(t, style.Some(blue), c.Primary())
	require.Equal(t, style.None(), c.Secondary())
}

func TestWithOptionAndUnset(t *testing.T) {
	s := style.New().WithOption(style.PropSecondary, style.Some(red))
	require.Equal(t, style.Some(red), s.Secondary())

	s = s.WithOption(style.PropSecondary, style.None())
	require.False(t, s.IsSet(style.PropSecondary))

	s = style.New().Thin().WithColor(blue).Unset(style.PropVariant | style.PropColor)
	require.Equal(t, style.New(), s)
}

func TestCascadeChildWins(t *testing.T) {
	root := style.New().Regular().WithColor(red).WithPrimary(red)
	child := style.New().WithColor(blue)

	got := style.Cascade(root, child)
	require.Equal(t, variant.Variant{Base: variant.Regular}, got.Variant())
	require.Equal(t, style.Some(blue), got.Color())
	require.Equal(t, style.Some(red), got.Primary())
	require.Equal(t, style.None(), got.Secondary())
}

func TestCascadeVariantInheritsWhole(t *testing.T) {
	root := style.New().Thin()
	child := style.New().Duotone()
	got := style.Cascade(root, child)
	require.Equal(t, variant.Variant{Base: variant.Solid, Duotone: true}, got.Variant())

	require.Equal(t, variant.Variant{Base: variant.Thin}, style.Cascade(root, style.New()).Variant())
	require.Equal(t, style.New(), style.Cascade())
}

func TestParseColor(t *testing.T) {
	cases := map[string]string{
		"red":     "#ff0000",
		" Blue ":  "#0000ff",
		"#0f0":    "#00ff00",
		"a1b2c3":  "#a1b2c3",
		"#FFD700": "#ffd700",
	}
	for in, want := range cases {
		c, err := style.ParseColor(in)
		require.NoError(t, err, in)
		require.Equal(t, want, style.CSS(c), in)
	}

	for _, in := range []string{"", "chartreuse-ish", "#12345", "#zzzzzz"} {
		_, err := style.ParseColor(in)
		require.ErrorIs(t, err, style.ErrInvalidColor, in)
	}
}

func TestParseOption(t *testing.T) {
	o, err := style.ParseOption("  ")
	require.NoError(t, err)
	require.False(t, o.Set)

	o, err = style.ParseOption("teal")
	require.NoError(t, err)
	require.Equal(t, "#008080", style.CSS(o.Value))
}

func TestPaletteSorted(t *testing.T) {
	p := style.Palette()
	require.NotEmpty(t, p)
	for i := 1; i < len(p); i++ {
		require.Less(t, p[i-1].Name, p[i].Name)
	}
}
