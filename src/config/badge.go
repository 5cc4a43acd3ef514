package config

import "path/filepath"

// BadgeDefaults apply to every badge item that leaves a field empty.
type BadgeDefaults struct {
	Style      string `yaml:"style" toml:"style"`             // flat, flat-square, plastic (default: flat)
	LabelColor string `yaml:"label_color" toml:"label_color"` // palette name, hex, rgb()/hsl() or CSS name
	Color      string `yaml:"color" toml:"color"`             // message color
	OutputDir  string `yaml:"output_dir" toml:"output_dir"`   // default: .badgemaker/badges
}

// BadgeItem defines a single badge to generate.
type BadgeItem struct {
	Name       string `yaml:"name" toml:"name"`               // unique identifier
	Label      string `yaml:"label" toml:"label"`             // left side text, empty for a label-less badge
	Message    string `yaml:"message" toml:"message"`         // right side text (supports {version} etc. templates)
	LabelColor string `yaml:"label_color" toml:"label_color"` // overrides defaults.label_color
	Color      string `yaml:"color" toml:"color"`             // overrides defaults.color; "auto" = status-driven
	Style      string `yaml:"style" toml:"style"`             // overrides defaults.style
	Output     string `yaml:"output" toml:"output"`           // file path (default: <output_dir>/<name>.svg)
}

// DefaultBadgeDefaults returns sensible defaults for badge generation.
func DefaultBadgeDefaults() BadgeDefaults {
	return BadgeDefaults{
		Style:     "flat",
		OutputDir: ".badgemaker/badges",
	}
}

// Resolved returns the item with defaults applied.
func (b BadgeItem) Resolved(d BadgeDefaults) BadgeItem {
	if b.LabelColor == "" {
		b.LabelColor = d.LabelColor
	}
	if b.Color == "" {
		b.Color = d.Color
	}
	if b.Style == "" {
		b.Style = d.Style
	}
	if b.Output == "" {
		dir := d.OutputDir
		if dir == "" {
			dir = DefaultBadgeDefaults().OutputDir
		}
		b.Output = filepath.Join(dir, b.Name+".svg")
	}
	return b
}
