package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/caarlos0/env/v11"

	"faicon/internal/style"
	"faicon/internal/variant"
)

type Config struct {
	Style  StyleConfig  `toml:"style"`
	Web    WebConfig    `toml:"web"`
	Update UpdateConfig `toml:"update"`
	TUI    TUIConfig    `toml:"tui"`
}

// StyleConfig is the root layer of the style cascade.
type StyleConfig struct {
	Variant   string `toml:"variant" env:"FAICON_VARIANT"`     // e.g. "sharp-duotone-light" (default "solid")
	Color     string `toml:"color" env:"FAICON_COLOR"`         // single fill, name or hex; empty inherits
	Primary   string `toml:"primary" env:"FAICON_PRIMARY"`     // duotone primary fill
	Secondary string `toml:"secondary" env:"FAICON_SECONDARY"` // duotone secondary fill
}

type WebConfig struct {
	Addr string `toml:"addr" env:"FAICON_WEB_ADDR"` // listen address (default ":8080")
}

type UpdateConfig struct {
	Owner      string `toml:"owner"`      // GitHub owner for the release check
	Repository string `toml:"repository"` // GitHub repository for the release check
}

type TUIConfig struct {
	AltScreen bool `toml:"alt_screen"`
}

func Defaults() *Config {
	return &Config{
		Style: StyleConfig{Variant: "solid"},
		Web:   WebConfig{Addr: ":8080"},
		TUI:   TUIConfig{AltScreen: true},
	}
}

// Load loads configuration from explicit path or discovered search path, then
// applies environment overrides.
// Precedence: environment, then provided path (if set) else first existing
// search path, then defaults. A missing file is not an error; read, parse and
// env errors return the defaults together with the error.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	chosen := path
	if chosen == "" {
		for _, p := range searchPaths() {
			if _, err := os.Stat(p); err == nil {
				chosen = p
				break
			}
		}
	}
	if chosen != "" {
		data, err := os.ReadFile(chosen)
		if err != nil {
			return Defaults(), fmt.Errorf("read config: %w", err)
		}
		if _, err := toml.Decode(string(data), cfg); err != nil { // decode overlays onto defaults
			return Defaults(), fmt.Errorf("parse config: %w", err)
		}
	}
	if err := env.Parse(cfg); err != nil {
		return Defaults(), fmt.Errorf("parse env: %w", err)
	}
	cfg.normalize()
	return cfg, nil
}

func searchPaths() []string {
	var out []string
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		out = append(out, filepath.Join(xdg, "faicon", "config.toml"))
	}
	if home, _ := os.UserHomeDir(); home != "" {
		out = append(out, filepath.Join(home, ".config", "faicon", "config.toml"))
	}
	return out
}

// normalize fills blanks left by decoding.
func (c *Config) normalize() {
	c.Style.Variant = strings.TrimSpace(c.Style.Variant)
	if c.Style.Variant == "" {
		c.Style.Variant = "solid"
	}
	if strings.TrimSpace(c.Web.Addr) == "" {
		c.Web.Addr = ":8080"
	}
}

// UpdateEnabled reports whether a release source is configured.
func (c *Config) UpdateEnabled() bool {
	return c.Update.Owner != "" && c.Update.Repository != ""
}

// RootStyle converts the style section into the root layer of the cascade.
// Only properties present in the config are set.
func (c *Config) RootStyle() (style.Style, error) {
	s := style.New()
	v, err := variant.Parse(c.Style.Variant)
	if err != nil {
		return style.New(), fmt.Errorf("style.variant: %w", err)
	}
	if v != variant.Default() {
		s = s.WithVariant(v)
	}
	colors := []struct {
		key  string
		raw  string
		prop style.Prop
	}{
		{"style.color", c.Style.Color, style.PropColor},
		{"style.primary", c.Style.Primary, style.PropPrimary},
		{"style.secondary", c.Style.Secondary, style.PropSecondary},
	}
	var errs []error
	for _, col := range colors {
		o, err := style.ParseOption(col.raw)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", col.key, err))
			continue
		}
		s = s.WithOption(col.prop, o)
	}
	if len(errs) > 0 {
		return style.New(), errors.Join(errs...)
	}
	return s, nil
}
