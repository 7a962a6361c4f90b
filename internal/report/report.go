package report

import (
	"fmt"
	"strings"

	"faicon/internal/catalog"
	"faicon/internal/model"
	"faicon/internal/variant"
)

// Analyze collects coverage for every declared icon plus diagnostics about
// icons that will render as the placeholder.
func Analyze(c *catalog.Catalog) model.CatalogSummary {
	summary := model.CatalogSummary{
		Icons:   c.Coverage(),
		Version: model.Version,
	}
	for _, slug := range variant.Slugs() {
		summary.Slugs = append(summary.Slugs, string(slug))
	}
	for _, cov := range summary.Icons {
		switch {
		case len(cov.Authored) == 0:
			summary.Diagnostics = append(summary.Diagnostics,
				fmt.Sprintf("%s: no authored assets, every variant renders the placeholder", cov.Name))
		case !contains(cov.Authored, string(variant.SlugSolid)):
			summary.Diagnostics = append(summary.Diagnostics,
				fmt.Sprintf("%s: no solid asset, brand and fallback variants render the placeholder", cov.Name))
		}
	}
	return summary
}

// Generate renders summary as a plain-text report. Verbose mode lists the
// missing slugs of every icon.
func Generate(summary model.CatalogSummary, verbose bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "faicon %s catalog report\n", summary.Version)
	fmt.Fprintf(&b, "%d icons, %d variants each\n\n", len(summary.Icons), len(summary.Slugs))

	width := 4
	for _, cov := range summary.Icons {
		if len(cov.Name) > width {
			width = len(cov.Name)
		}
	}
	authored := 0
	for _, cov := range summary.Icons {
		authored += len(cov.Authored)
		glyph := model.GlyphAuthored
		if len(cov.Authored) == 0 {
			glyph = model.GlyphPlaceholder
		}
		file := ""
		if cov.Path != cov.Name {
			file = " (" + cov.Path + ".svg)"
		}
		fmt.Fprintf(&b, "%s %-*s %2d/%d %3.0f%%%s\n",
			glyph, width, cov.Name, len(cov.Authored), len(summary.Slugs), cov.Ratio()*100, file)
		if verbose && len(cov.Missing) > 0 {
			fmt.Fprintf(&b, "    missing: %s\n", strings.Join(cov.Missing, ", "))
		}
	}

	total := len(summary.Icons) * len(summary.Slugs)
	fmt.Fprintf(&b, "\n%d of %d icon variants authored\n", authored, total)

	if len(summary.Diagnostics) > 0 {
		b.WriteString("\nDiagnostics:\n")
		for _, d := range summary.Diagnostics {
			fmt.Fprintf(&b, "  - %s\n", d)
		}
	}
	return b.String()
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
