package config

import (
	"errors"
	"fmt"

	"github.com/sofmeright/badgemaker/src/color"
	"github.com/sofmeright/badgemaker/src/style"
)

// Validate checks structural invariants of a loaded Config.
// Returns warnings (soft issues) and a hard error if the config is invalid.
func Validate(cfg *Config) (warnings []string, err error) {
	var errs []error

	if _, err := style.Parse(cfg.Defaults.Style); err != nil {
		errs = append(errs, fmt.Errorf("defaults.style: %w", err))
	}
	warnings = append(warnings, colorWarnings("defaults", cfg.Defaults.LabelColor, cfg.Defaults.Color)...)

	names := make(map[string]bool, len(cfg.Badges))
	for i, b := range cfg.Badges {
		path := fmt.Sprintf("badges[%d]", i)

		if b.Name == "" {
			errs = append(errs, fmt.Errorf("%s: name is required", path))
		} else if names[b.Name] {
			errs = append(errs, fmt.Errorf("%s: duplicate badge name %q", path, b.Name))
		} else {
			names[b.Name] = true
		}

		if b.Message == "" {
			errs = append(errs, fmt.Errorf("%s: message is required", path))
		}
		if b.Style != "" {
			if _, err := style.Parse(b.Style); err != nil {
				errs = append(errs, fmt.Errorf("%s.style: %w", path, err))
			}
		}
		msgColor := b.Color
		if msgColor == "auto" {
			msgColor = ""
		}
		warnings = append(warnings, colorWarnings(path, b.LabelColor, msgColor)...)
	}

	if cfg.Verify.Concurrency < 0 {
		errs = append(errs, fmt.Errorf("verify.concurrency: must be >= 0, got %d", cfg.Verify.Concurrency))
	}

	return warnings, errors.Join(errs...)
}

// colorWarnings flags non-empty color tokens that will silently fall back
// to the role default.
func colorWarnings(path, labelColor, messageColor string) []string {
	var w []string
	if labelColor != "" && color.Resolve(labelColor, color.Label).Source == color.Default {
		w = append(w, fmt.Sprintf("%s.label_color: %q is not a recognized color, using %s", path, labelColor, color.DefaultLabel))
	}
	if messageColor != "" && color.Resolve(messageColor, color.Message).Source == color.Default {
		w = append(w, fmt.Sprintf("%s.color: %q is not a recognized color, using %s", path, messageColor, color.DefaultMessage))
	}
	return w
}
