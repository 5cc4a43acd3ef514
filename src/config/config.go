package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// defaultConfigFiles are tried in order when no path is given.
var defaultConfigFiles = []string{".badgemaker.yml", ".badgemaker.yaml", ".badgemaker.toml"}

// Config is the top-level badgemaker configuration.
type Config struct {
	Defaults BadgeDefaults `yaml:"defaults" toml:"defaults"`
	Badges   []BadgeItem   `yaml:"badges" toml:"badges"`
	Verify   VerifyConfig  `yaml:"verify" toml:"verify"`

	path string // file the config was read from, "" for built-in defaults
}

// Path returns the file the config was loaded from.
func (c *Config) Path() string { return c.path }

// Load reads configuration from a YAML or TOML file, chosen by extension.
// If path is empty, the default files are tried in order.
// Returns defaults if no default file exists.
func Load(path string) (*Config, error) {
	if path == "" {
		for _, candidate := range defaultConfigFiles {
			if _, err := os.Stat(candidate); err == nil {
				path = candidate
				break
			}
		}
		if path == "" {
			return defaults(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config file %s not found", path)
		}
		return nil, err
	}

	cfg := defaults()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		err = toml.Unmarshal(data, cfg)
	default:
		err = yaml.Unmarshal(data, cfg)
	}
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	cfg.path = path
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		Defaults: DefaultBadgeDefaults(),
		Verify:   DefaultVerifyConfig(),
	}
}
