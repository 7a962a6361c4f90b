package style

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidColor is returned by ParseColor for unrecognised input.
var ErrInvalidColor = errors.New("invalid color")

var named = map[string]string{
	"black":  "#000000",
	"blue":   "#0000ff",
	"gold":   "#ffd700",
	"gray":   "#808080",
	"green":  "#008000",
	"orange": "#ffa500",
	"purple": "#800080",
	"red":    "#ff0000",
	"teal":   "#008080",
	"white":  "#ffffff",
}

// ParseColor accepts a CSS named color from the built-in palette or a hex
// literal in #rgb or #rrggbb form (the leading # is optional).
func ParseColor(s string) (colorful.Color, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[s]; ok {
		s = hex
	}
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}
	if len(s) != 4 && len(s) != 7 {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("%w: %q", ErrInvalidColor, s)
	}
	return c, nil
}

// ParseOption is ParseColor for optional inputs: an empty string is unset.
func ParseOption(s string) (Option, error) {
	if strings.TrimSpace(s) == "" {
		return None(), nil
	}
	c, err := ParseColor(s)
	if err != nil {
		return None(), err
	}
	return Some(c), nil
}

// CSS formats c as a presentation color literal.
func CSS(c colorful.Color) string {
	return c.Clamped().Hex()
}

// NamedColor pairs a palette name with its value.
type NamedColor struct {
	Name  string
	Color colorful.Color
}

// Palette returns the built-in named colors sorted by name.
func Palette() []NamedColor {
	out := make([]NamedColor, 0, len(named))
	for name, hex := range named {
		c, _ := colorful.Hex(hex)
		out = append(out, NamedColor{Name: name, Color: c})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}
