package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the per-project policy file looked up at the scan root.
const FileName = ".envdrift.yml"

// Config represents the envdrift policy file
type Config struct {
	Ignores IgnoresConfig `yaml:"ignores"`
	Policy  PolicyConfig  `yaml:"policy"`
}

// IgnoresConfig contains ignore rules for environment variables
type IgnoresConfig struct {
	Missing []string `yaml:"missing"` // Names suppressed from the missing report
	Folders []string `yaml:"folders"` // Directory names excluded from scanning
}

// PolicyConfig tunes the approximate heuristics. Both knobs default to on;
// nil means unset.
type PolicyConfig struct {
	SkipComments     *bool `yaml:"skip_comments"`     // Skip leading-comment lines
	BareDeclarations *bool `yaml:"bare_declarations"` // Accept NAME lines with no '='
}

// Load reads the policy file from the given directory. A missing file yields
// the default config, not an error.
func Load(rootPath string) (*Config, error) {
	configPath := filepath.Join(rootPath, FileName)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}
	return &cfg, nil
}

// SkipComments reports whether commented-out lines are skipped (default true).
func (c *Config) SkipComments() bool {
	return c.Policy.SkipComments == nil || *c.Policy.SkipComments
}

// BareDeclarations reports whether bare-identifier declaration lines are
// accepted (default true).
func (c *Config) BareDeclarations() bool {
	return c.Policy.BareDeclarations == nil || *c.Policy.BareDeclarations
}
