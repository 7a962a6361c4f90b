package model

// Centralized glyphs for the UI components
// Using simple single-width characters for consistent terminal rendering
const (
	GlyphAuthored    = "●" // Asset authored for the active variant
	GlyphPlaceholder = "○" // Resolved to the empty placeholder
	GlyphSelected    = "›" // Cursor
	GlyphDirty       = "*" // Pushed during the last style pass
	GlyphUnset       = "·" // Color not configured
	GlyphSwatch      = "■" // Color swatch
)
