package tui

import (
	"strings"

	"faicon/internal/style"
	"faicon/internal/variant"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

var baseKeys = map[string]variant.Base{
	"s": variant.Solid,
	"r": variant.Regular,
	"l": variant.Light,
	"t": variant.Thin,
	"b": variant.Brands,
}

var colorKeys = map[string]style.Prop{
	"c": style.PropColor,
	"p": style.PropPrimary,
	"o": style.PropSecondary,
}

// Update handles events. Every handled message ends with a style pass; the
// bindings decide for themselves whether anything needs pushing.
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.WindowSize = msg
		m.DetailsViewport.Width = msg.Width / 2
		m.DetailsViewport.Height = msg.Height - 12 // minus header/swatches/footer
		if m.DetailsViewport.Height < 3 {
			m.DetailsViewport.Height = 3
		}
		m.refreshDetails()
		return m, nil

	case tea.KeyMsg:
		if m.InputMode {
			switch msg.Type {
			case tea.KeyEnter:
				// Keep the filter, leave input mode.
				m.InputMode = false
				m.InputBuffer.Blur()
				m.performSearch()
				m.refreshDetails()
				return m, nil
			case tea.KeyEsc:
				m.clearSearch()
				return m, nil
			}
			m.InputBuffer, cmd = m.InputBuffer.Update(msg)
			m.performSearch()
			m.refreshDetails()
			return m, cmd
		}

		key := msg.String()
		if base, ok := baseKeys[key]; ok {
			v := m.userVariant()
			v.Base = base
			m.User = m.User.WithVariant(v)
			m.stylePass()
			return m, nil
		}
		if prop, ok := colorKeys[key]; ok {
			m.User = m.User.WithOption(prop, nextColor(userOption(m.User, prop)))
			m.stylePass()
			return m, nil
		}

		switch key {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "esc":
			if m.SearchActive {
				m.clearSearch()
			}
		case "up", "k":
			if m.SelectedIdx > 0 {
				m.SelectedIdx--
			}
			m.refreshDetails()
		case "down", "j":
			if m.SelectedIdx < len(m.FilteredIndices)-1 {
				m.SelectedIdx++
			}
			m.refreshDetails()
		case "pgup", "pgdown":
			m.DetailsViewport, cmd = m.DetailsViewport.Update(msg)
			return m, cmd
		case "h":
			v := m.userVariant()
			v.Sharp = !v.Sharp
			m.User = m.User.WithVariant(v)
			m.stylePass()
		case "d":
			v := m.userVariant()
			v.Duotone = !v.Duotone
			m.User = m.User.WithVariant(v)
			m.stylePass()
		case "x":
			m.User = style.New()
			m.stylePass()
		case "/":
			m.InputMode = true
			m.InputBuffer.Focus()
			m.InputBuffer.SetValue("")
			return m, textinput.Blink
		}
	}

	return m, cmd
}

// userVariant is the variant the keyboard edits start from: the user layer's
// own variant if set, else the configured root variant.
func (m *AppModel) userVariant() variant.Variant {
	return style.Cascade(m.Root, m.User).Variant()
}

func userOption(s style.Style, p style.Prop) style.Option {
	switch p {
	case style.PropPrimary:
		return s.Primary()
	case style.PropSecondary:
		return s.Secondary()
	}
	return s.Color()
}

// nextColor cycles unset -> palette colors in order -> unset.
func nextColor(cur style.Option) style.Option {
	palette := style.Palette()
	c, ok := cur.Get()
	if !ok {
		return style.Some(palette[0].Color)
	}
	for i, nc := range palette {
		if style.CSS(nc.Color) == style.CSS(c) {
			if i+1 < len(palette) {
				return style.Some(palette[i+1].Color)
			}
			return style.None()
		}
	}
	return style.None()
}

func (m *AppModel) clearSearch() {
	m.InputMode = false
	m.InputBuffer.Blur()
	m.InputBuffer.SetValue("")
	m.performSearch()
	m.refreshDetails()
}

func (m *AppModel) performSearch() {
	term := strings.ToLower(strings.TrimSpace(m.InputBuffer.Value()))
	m.FilteredIndices = make([]int, 0, len(m.Rows))
	m.SearchActive = term != ""
	for i, r := range m.Rows {
		if term == "" || strings.Contains(strings.ToLower(r.Name), term) {
			m.FilteredIndices = append(m.FilteredIndices, i)
		}
	}

	// Bounds check
	if m.SelectedIdx >= len(m.FilteredIndices) {
		if len(m.FilteredIndices) > 0 {
			m.SelectedIdx = len(m.FilteredIndices) - 1
		} else {
			m.SelectedIdx = 0
		}
	}
}
