// Package config loads dashdown.yaml, the optional per-project
// conversion settings file.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the config file dashdown looks for, walking up from the
// working directory.
const FileName = "dashdown.yaml"

type Config struct {
	MarkerClass     string   `yaml:"marker-class"`
	PathKey         string   `yaml:"path-key"`
	AppPath         string   `yaml:"app-path"`
	Indent          string   `yaml:"indent"`
	MarkdownClasses []string `yaml:"markdown-classes"`
	LayoutClasses   []string `yaml:"layout-classes"`
	Precode         string   `yaml:"precode"`
	AppPrecode      string   `yaml:"app-precode"`
	Pattern         string   `yaml:"pattern"`
	Format          *bool    `yaml:"format"`
}

// Default returns a validated config with every field at its default.
func Default() *Config {
	cfg := &Config{}
	if err := Validate(cfg); err != nil {
		panic(err) // defaults are known-good
	}
	return cfg
}

// Load reads a YAML config file and returns a validated Config. An
// empty file is valid and yields the defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	if err := Validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Find walks up from dir looking for a dashdown.yaml. Returns "" when
// none exists, which is not an error: the defaults apply.
func Find(dir string) string {
	for {
		path := filepath.Join(dir, FileName)
		if _, err := os.Stat(path); err == nil {
			return path
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return ""
		}
		dir = parent
	}
}

// FormatEnabled reports whether generated source should be passed
// through go/format. Unset means enabled.
func (c *Config) FormatEnabled() bool {
	return c.Format == nil || *c.Format
}
