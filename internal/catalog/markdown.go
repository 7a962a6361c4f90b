package catalog

import "strings"

// Markdown renders the catalog as a markdown table listing every declared icon
// and the variants that resolve to authored content.
func (c *Catalog) Markdown() string {
	var builder strings.Builder
	builder.WriteString("# Icon Catalog\n\n")
	builder.WriteString("| Icon | File | Authored variants |\n")
	builder.WriteString("| --- | --- | --- |\n")
	for _, cov := range c.Coverage() {
		builder.WriteString("| ")
		builder.WriteString(cov.Name)
		builder.WriteString(" | ")
		builder.WriteString(cov.Path)
		builder.WriteString(" | ")
		if len(cov.Authored) == 0 {
			builder.WriteString("none")
		} else {
			builder.WriteString(strings.Join(cov.Authored, ", "))
		}
		builder.WriteString(" |\n")
	}
	return builder.String()
}
