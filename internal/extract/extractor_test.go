package extract_test

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/stretchr/testify/require"

	"faicon/internal/extract"
	"faicon/internal/style"
	"faicon/internal/variant"
)

var (
	red  = colorful.Color{R: 1}
	blue = colorful.Color{B: 1}
)

func TestReadDetectsChange(t *testing.T) {
	var e extract.Extractor
	require.False(t, e.Read(style.New()), "defaults are not a change")

	src := style.New().Regular()
	require.True(t, e.Read(src))
	require.Equal(t, variant.Variant{Base: variant.Regular}, e.Variant())

	require.True(t, e.Read(src.WithColor(red)))
	require.Equal(t, style.Some(red), e.Color())
}

func TestReadIsIdempotent(t *testing.T) {
	var e extract.Extractor
	src := style.New().Duotone().WithPrimary(blue)
	require.True(t, e.Read(src))
	before := e.OverrideText()

	require.False(t, e.Read(src))
	require.Equal(t, before, e.OverrideText())
	require.Equal(t, extract.Take(src), e.Snapshot())
}

func TestOverrideNoColor(t *testing.T) {
	var e extract.Extractor
	e.Read(style.New().Solid())
	require.Equal(t, "", e.OverrideText())
}

func TestOverrideSingleColor(t *testing.T) {
	var e extract.Extractor
	require.True(t, e.Read(style.New().Solid().WithColor(red)))
	require.Equal(t, "svg {\n  fill: #ff0000 !important;\n}\n", e.OverrideText())
}

func TestOverrideSingleIgnoresDuotoneColors(t *testing.T) {
	var e extract.Extractor
	e.Read(style.New().WithPrimary(red).WithSecondary(blue))
	require.Equal(t, "", e.OverrideText())
}

func TestOverrideDuotonePartial(t *testing.T) {
	var e extract.Extractor
	src := style.New().Regular().Duotone().WithPrimary(blue)
	require.True(t, e.Read(src))
	require.Equal(t, variant.Slug("duotone-regular"), e.Variant().Slug())
	require.Equal(t,
		".fa-primary {\n  fill: #0000ff !important;\n}\n"+
			".fa-secondary {\n  fill: currentColor !important;\n}\n",
		e.OverrideText())
}

func TestOverrideDuotoneIgnoresSingleColor(t *testing.T) {
	s := extract.Snapshot{
		Variant: variant.Variant{Duotone: true},
		Color:   style.Some(red),
	}
	got := s.OverrideText()
	require.NotContains(t, got, "#ff0000")
	require.Contains(t, got, ".fa-primary {\n  fill: "+extract.InheritColor)
	require.Contains(t, got, ".fa-secondary {\n  fill: "+extract.InheritColor)
}
