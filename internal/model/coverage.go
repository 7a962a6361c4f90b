package model

// Coverage describes which variants of one declared icon resolve to authored
// content rather than the placeholder.
type Coverage struct {
	Name     string   // Symbolic icon name
	Path     string   // File name under each variant directory
	Authored []string // Slugs that resolve to an authored asset
	Missing  []string // Slugs that resolve to the placeholder
}

// Ratio returns the fraction of slugs backed by an authored asset.
func (c Coverage) Ratio() float64 {
	total := len(c.Authored) + len(c.Missing)
	if total == 0 {
		return 0
	}
	return float64(len(c.Authored)) / float64(total)
}

// CatalogSummary is the machine-readable form of the coverage report.
type CatalogSummary struct {
	Icons       []Coverage
	Slugs       []string
	Diagnostics []string
	Version     string
}
