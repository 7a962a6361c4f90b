package tui

import (
	"testing"
	"testing/fstest"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"faicon/internal/catalog"
	"faicon/internal/style"
	"faicon/internal/variant"
)

func testModel(t *testing.T, root style.Style) AppModel {
	t.Helper()
	fsys := fstest.MapFS{
		"svgs/solid/house.svg":   {Data: []byte(`<svg id="house"/>`)},
		"svgs/duotone/house.svg": {Data: []byte(`<svg id="house-duotone"/>`)},
		"svgs/solid/gopher.svg":  {Data: []byte(`<svg id="gopher"/>`)},
	}
	c, err := catalog.Declare(fsys, "svgs", catalog.Def{Name: "house"}, catalog.Def{Name: "gopher"}, catalog.Def{Name: "bell"})
	require.NoError(t, err)
	defaults := func(icon catalog.Icon) style.Style {
		if c.Name(icon) == "gopher" {
			return style.New().Brands()
		}
		return style.New()
	}
	return InitialModel(c, root, defaults, nil)
}

func press(t *testing.T, m AppModel, keys ...string) AppModel {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEsc}
		case "down":
			msg = tea.KeyMsg{Type: tea.KeyDown}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(AppModel)
	}
	return m
}

func TestInitialPass(t *testing.T) {
	m := testModel(t, style.New())
	require.Len(t, m.Rows, 3)
	require.Equal(t, 1, m.Passes)
	require.Equal(t, []int{0, 1, 2}, m.FilteredIndices)

	// Only the brand icon differs from the mount defaults.
	require.Equal(t, 1, m.LastPushed)
	require.Equal(t, variant.SlugBrands, m.Rows[1].binding.Slug())
	require.Equal(t, `<svg id="gopher"/>`, m.Rows[1].node.content)
	require.Equal(t, catalog.Placeholder, m.Rows[2].node.content)
}

func TestDuotoneKeyPushesOncePerChange(t *testing.T) {
	m := testModel(t, style.New())
	m = press(t, m, "d")
	require.Equal(t, variant.SlugDuotone, m.Rows[0].binding.Slug())
	require.Equal(t, `<svg id="house-duotone"/>`, m.Rows[0].node.content)
	require.Contains(t, m.Rows[0].node.overrides, "currentColor")
	require.Equal(t, 2, m.Rows[0].node.pushes)

	// Navigation runs no style pass and pushes nothing.
	m = press(t, m, "j", "k")
	require.Equal(t, 2, m.Rows[0].node.pushes)

	// The user layer replaces the brand default as a whole variant.
	require.Equal(t, variant.SlugDuotone, m.Rows[1].binding.Slug())
	require.Equal(t, catalog.Placeholder, m.Rows[1].node.content)
}

func TestBaseAndColorKeys(t *testing.T) {
	m := testModel(t, style.New().Sharp())
	m = press(t, m, "t")
	require.Equal(t, variant.Variant{Base: variant.Thin, Sharp: true}, m.User.Variant())
	require.Equal(t, variant.SlugSharpThin, m.Rows[0].binding.Slug())
	require.Equal(t, catalog.Placeholder, m.Rows[0].node.content)

	m = press(t, m, "c")
	first := style.Palette()[0].Color
	require.Equal(t, style.Some(first), m.User.Color())
	require.Contains(t, m.Rows[0].node.overrides, style.CSS(first))

	m = press(t, m, "x")
	require.Equal(t, style.New(), m.User)
	require.Equal(t, variant.SlugSharpSolid, m.Rows[0].binding.Slug())
}

func TestNextColorCycles(t *testing.T) {
	palette := style.Palette()
	o := style.None()
	for i := range palette {
		o = nextColor(o)
		require.Equal(t, style.Some(palette[i].Color), o)
	}
	require.Equal(t, style.None(), nextColor(o))
}

func TestSearchFilters(t *testing.T) {
	m := testModel(t, style.New())
	m = press(t, m, "down", "down")
	require.Equal(t, 2, m.SelectedIdx)

	m = press(t, m, "/", "g", "o")
	require.True(t, m.InputMode)
	require.Equal(t, []int{1}, m.FilteredIndices)
	require.Equal(t, 0, m.SelectedIdx)

	m = press(t, m, "enter")
	require.False(t, m.InputMode)
	require.True(t, m.SearchActive)

	m = press(t, m, "esc")
	require.False(t, m.SearchActive)
	require.Len(t, m.FilteredIndices, 3)
}

func TestViewRenders(t *testing.T) {
	m := testModel(t, style.New())
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 30})
	m = next.(AppModel)
	out := m.View()
	require.Contains(t, out, "house")
	require.Contains(t, out, "gopher")
	require.Contains(t, out, "pass 1")
}
