package tui

import (
	"log/slog"

	"faicon/internal/binding"
	"faicon/internal/catalog"
	"faicon/internal/style"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
)

// node is the view-side target of one binding: it keeps whatever was pushed
// last so View can draw it.
type node struct {
	content   string
	overrides string
	pushes    int
}

func (n *node) PushContent(markup string) {
	n.content = markup
	n.pushes++
}

func (n *node) PushOverrides(text string) { n.overrides = text }

// Row is one declared icon in the list.
type Row struct {
	Icon    catalog.Icon
	Name    string
	node    *node
	binding *binding.Binding
	Dirty   bool // pushed during the last style pass
}

// AppModel holds the TUI state.
type AppModel struct {
	// Data
	Catalog  *catalog.Catalog
	Root     style.Style // from config
	User     style.Style // edited with the keyboard
	defaults func(catalog.Icon) style.Style
	Rows     []Row

	// UI State
	SelectedIdx int
	WindowSize  tea.WindowSizeMsg
	Passes      int // style passes run so far
	LastPushed  int // rows pushed by the last pass

	// Search State
	InputMode       bool
	InputBuffer     textinput.Model
	FilteredIndices []int // Indices of Rows to show
	SearchActive    bool

	// Components
	DetailsViewport viewport.Model
}

// InitialModel mounts one binding per declared icon and runs the first style
// pass. defaults supplies the per-icon style layer and may be nil.
func InitialModel(c *catalog.Catalog, root style.Style, defaults func(catalog.Icon) style.Style, log *slog.Logger) AppModel {
	ti := textinput.New()
	ti.Placeholder = "Icon name..."
	ti.CharLimit = 50
	ti.Width = 20

	if defaults == nil {
		defaults = func(catalog.Icon) style.Style { return style.New() }
	}
	if log == nil {
		log = slog.Default()
	}

	m := AppModel{
		Catalog:         c,
		Root:            root,
		User:            style.New(),
		defaults:        defaults,
		InputBuffer:     ti,
		DetailsViewport: viewport.New(40, 10),
	}
	for _, icon := range c.Icons() {
		n := &node{}
		m.Rows = append(m.Rows, Row{
			Icon:    icon,
			Name:    c.Name(icon),
			node:    n,
			binding: binding.New(c, icon, n, binding.WithLogger(log)),
		})
	}
	m.performSearch()
	m.stylePass()
	return m
}

func (m AppModel) Init() tea.Cmd {
	return nil
}

// effective returns the cascade a row's binding reads.
func (m *AppModel) effective(r Row) style.Style {
	return style.Cascade(m.Root, m.defaults(r.Icon), m.User)
}

// stylePass reconciles every binding with the current cascade. Bindings whose
// inputs did not change push nothing.
func (m *AppModel) stylePass() {
	m.Passes++
	m.LastPushed = 0
	for i := range m.Rows {
		r := &m.Rows[i]
		r.Dirty = r.binding.StylePass(m.effective(*r))
		if r.Dirty {
			m.LastPushed++
		}
	}
	m.refreshDetails()
}

// selected returns the row under the cursor, if any.
func (m *AppModel) selected() (Row, bool) {
	if m.SelectedIdx < 0 || m.SelectedIdx >= len(m.FilteredIndices) {
		return Row{}, false
	}
	return m.Rows[m.FilteredIndices[m.SelectedIdx]], true
}
