// internal/config/config.go
// Package config resolves run-wide settings from defaults, an optional
// YAML file, and the SEQSTAT_CONFIG environment variable.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const pathEnv = "SEQSTAT_CONFIG"

// Config holds the user-tunable settings shared by every subcommand.
type Config struct {
	// ColumnWidth is the wrap width for FASTA output.
	ColumnWidth int `yaml:"columnWidth"`
	// IDField is the header field used to identify records in tabular
	// output, looked up in pipe-delimited headers (e.g. "gb").
	IDField string `yaml:"idField"`

	Complexity ComplexityConfig `yaml:"complexity"`
}

// ComplexityConfig carries the default complexity-score parameters.
type ComplexityConfig struct {
	AlphabetSize int    `yaml:"alphabetSize"`
	WindowLength int    `yaml:"windowLength"`
	WordLength   int    `yaml:"wordLength"`
	Jump         int    `yaml:"jump"`
	Offset       int    `yaml:"offset"`
	Drop         string `yaml:"drop"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		ColumnWidth: 80,
		IDField:     "gb",
		Complexity: ComplexityConfig{
			AlphabetSize: 4,
			WindowLength: 100,
			WordLength:   1,
			Jump:         1,
			Offset:       0,
		},
	}
}

// Load resolves the effective configuration. An explicitly given path
// must exist and parse; the environment fallback is best-effort and a
// missing file there silently yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	explicit := path != ""
	if !explicit {
		path = os.Getenv(pathEnv)
	}
	if path == "" {
		return cfg, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if explicit {
			return cfg, fmt.Errorf("config: %w", err)
		}
		return cfg, nil
	}
	var file Config
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return cfg, fmt.Errorf("config: parse %s: %w", path, err)
	}
	cfg.merge(file)
	return cfg, nil
}

// merge overlays non-zero file settings onto the defaults.
func (c *Config) merge(o Config) {
	if o.ColumnWidth > 0 {
		c.ColumnWidth = o.ColumnWidth
	}
	if o.IDField != "" {
		c.IDField = o.IDField
	}
	if o.Complexity.AlphabetSize > 0 {
		c.Complexity.AlphabetSize = o.Complexity.AlphabetSize
	}
	if o.Complexity.WindowLength > 0 {
		c.Complexity.WindowLength = o.Complexity.WindowLength
	}
	if o.Complexity.WordLength > 0 {
		c.Complexity.WordLength = o.Complexity.WordLength
	}
	if o.Complexity.Jump > 0 {
		c.Complexity.Jump = o.Complexity.Jump
	}
	if o.Complexity.Offset > 0 {
		c.Complexity.Offset = o.Complexity.Offset
	}
	if o.Complexity.Drop != "" {
		c.Complexity.Drop = o.Complexity.Drop
	}
}
