package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"faicon/internal/catalog"
	"faicon/internal/model"
	"faicon/internal/style"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("229")).
			Background(lipgloss.Color("57"))

	normalStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("255"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	dirtyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("208")) // Orange

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("81")). // Sky Blue/Cyan
			Bold(true)

	borderColor = lipgloss.Color("63")
	activeColor = lipgloss.Color("205")
)

func (m AppModel) View() string {
	width := m.WindowSize.Width
	height := m.WindowSize.Height

	// Subtracting 6 for horizontal margin (borders x2 + buffer)
	netWidth := width - 6
	if netWidth < 40 {
		netWidth = 40
	}
	leftWidth := netWidth / 2
	rightWidth := netWidth - leftWidth

	// Total box height (including borders)
	boxHeight := height - 4
	if boxHeight < 8 {
		boxHeight = 8
	}
	interiorHeight := boxHeight - 2

	left := lipgloss.NewStyle().
		Width(leftWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(activeColor).
		Render(m.renderList(leftWidth, interiorHeight))

	right := lipgloss.NewStyle().
		Width(rightWidth).
		Height(interiorHeight).
		Border(lipgloss.NormalBorder()).
		BorderForeground(borderColor).
		Render(m.renderDetails())

	return lipgloss.JoinVertical(lipgloss.Left,
		lipgloss.JoinHorizontal(lipgloss.Top, left, right),
		m.renderFooter(),
	)
}

func (m AppModel) renderList(width, height int) string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Icons"))
	b.WriteString("\n\n")

	// Windowing: header is 2 lines (Title + blank line)
	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	end := len(m.FilteredIndices)
	if end > visible {
		if m.SelectedIdx >= visible/2 {
			start = m.SelectedIdx - visible/2
		}
		if start+visible > end {
			start = end - visible
		}
		end = start + visible
	}

	for i := start; i < end; i++ {
		r := m.Rows[m.FilteredIndices[i]]
		cursor := " "
		if i == m.SelectedIdx {
			cursor = model.GlyphSelected
		}
		status := model.GlyphAuthored
		if r.node.content == catalog.Placeholder {
			status = model.GlyphPlaceholder
		}
		dirty := " "
		if r.Dirty {
			dirty = dirtyStyle.Render(model.GlyphDirty)
		}
		line := fmt.Sprintf("%s %s %-10s %s", cursor, status, r.Name, r.binding.Slug())
		if len(line) > width-3 {
			line = line[:width-6] + "..."
		}

		st := normalStyle
		if i == m.SelectedIdx {
			st = selectedStyle
		} else if status == model.GlyphPlaceholder {
			st = dimStyle
		}
		b.WriteString(st.Render(line))
		b.WriteString(" ")
		b.WriteString(dirty)
		b.WriteString("\n")
	}
	if len(m.FilteredIndices) == 0 {
		b.WriteString(dimStyle.Render("  no icons match"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}

func (m AppModel) renderDetails() string {
	r, ok := m.selected()
	if !ok {
		return titleStyle.Render("Details")
	}
	snap := r.binding.Snapshot()

	var b strings.Builder
	b.WriteString(titleStyle.Render(r.Name))
	b.WriteString("\n\n")
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("variant"), snap.Variant)
	fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("slug   "), r.binding.Slug())
	if snap.Variant.Duotone {
		fmt.Fprintf(&b, "%s %s  %s %s\n",
			labelStyle.Render("primary"), swatch(snap.Primary),
			labelStyle.Render("secondary"), swatch(snap.Secondary))
	} else {
		fmt.Fprintf(&b, "%s %s\n", labelStyle.Render("color  "), swatch(snap.Color))
	}
	fmt.Fprintf(&b, "%s %d\n\n", labelStyle.Render("pushes "), r.node.pushes)
	b.WriteString(m.DetailsViewport.View())
	return b.String()
}

// swatch draws an optional color in itself, followed by its literal.
func swatch(o style.Option) string {
	c, ok := o.Get()
	if !ok {
		return dimStyle.Render(model.GlyphUnset + " inherit")
	}
	hex := style.CSS(c)
	return lipgloss.NewStyle().Foreground(lipgloss.Color(hex)).Render(model.GlyphSwatch) + " " + hex
}

// refreshDetails loads the selected row's pushed markup and overrides into
// the viewport.
func (m *AppModel) refreshDetails() {
	r, ok := m.selected()
	if !ok {
		m.DetailsViewport.SetContent("")
		return
	}
	var b strings.Builder
	b.WriteString(r.node.content)
	b.WriteString("\n")
	if r.node.overrides != "" {
		b.WriteString("\n")
		b.WriteString(r.node.overrides)
	}
	m.DetailsViewport.SetContent(lipgloss.NewStyle().Width(m.DetailsViewport.Width).Render(b.String()))
}

func (m AppModel) renderFooter() string {
	if m.InputMode {
		return " Filter: " + m.InputBuffer.View()
	}
	help := "s/r/l/t/b base  h sharp  d duotone  c/p/o color/primary/secondary  x reset  / filter  q quit"
	status := fmt.Sprintf("pass %d, %d pushed", m.Passes, m.LastPushed)
	return dimStyle.Render(" " + help + "  |  " + status)
}
