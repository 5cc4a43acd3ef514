package config

// VerifyConfig configures differential checks against the reference renderer.
type VerifyConfig struct {
	Command     []string `yaml:"command" toml:"command"`         // reference CLI, e.g. ["node", "badge-cli.js"]
	Dir         string   `yaml:"dir" toml:"dir"`                 // working directory for the command
	Corpus      string   `yaml:"corpus" toml:"corpus"`           // case list file
	CacheDir    string   `yaml:"cache_dir" toml:"cache_dir"`     // cache root (default: current directory)
	Cache       *bool    `yaml:"cache" toml:"cache"`             // default: true
	Concurrency int      `yaml:"concurrency" toml:"concurrency"` // 0 = 2×CPU
}

// DefaultVerifyConfig returns sensible defaults for verification.
func DefaultVerifyConfig() VerifyConfig {
	return VerifyConfig{
		Command: []string{"node", "badge-cli.js"},
		Corpus:  "badges.yml",
	}
}

// CacheEnabled reports whether oracle output should be cached.
func (v VerifyConfig) CacheEnabled() bool {
	return v.Cache == nil || *v.Cache
}
