package gitrepo

import (
	"fmt"
	"os"
	"path"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// userConfigFile is the user configuration file name, a sibling of
	// the .git directory.
	userConfigFile = ".fadconfig.yaml"

	// DefaultColor is the default color mode.
	DefaultColor = "auto"
)

// Config represents user configuration from .fadconfig.yaml.
// This file is user-managed and never written by fad.
type Config struct {
	// Exclude lists glob patterns removed from the candidate set
	// before matching (lock files, vendored trees).
	Exclude []string `yaml:"exclude"`

	// Color controls ANSI output: auto, always, or never.
	Color string `yaml:"color"`
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{Color: DefaultColor}
}

// LoadConfig loads .fadconfig.yaml from the repository root if it
// exists, otherwise returns defaults. Partial config files are merged
// with defaults.
func (r *Repo) LoadConfig() (*Config, error) {
	configPath := filepath.Join(r.root, userConfigFile)

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", userConfigFile, err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", userConfigFile, err)
	}

	return cfg, nil
}

// Apply filters out candidates matched by the exclude patterns.
// Malformed patterns are ignored.
func (c *Config) Apply(cands []Candidate) []Candidate {
	if len(c.Exclude) == 0 {
		return cands
	}
	kept := make([]Candidate, 0, len(cands))
	for _, cand := range cands {
		if c.excluded(cand.Path) {
			continue
		}
		kept = append(kept, cand)
	}
	return kept
}

func (c *Config) excluded(p string) bool {
	for _, pattern := range c.Exclude {
		if ok, err := path.Match(pattern, p); err == nil && ok {
			return true
		}
	}
	return false
}
