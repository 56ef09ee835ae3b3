package config

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/dashdown/dashdown/internal/segment"
)

// Validate checks the config for errors and sets defaults.
func Validate(cfg *Config) error {
	if cfg.MarkerClass == "" {
		cfg.MarkerClass = "dash"
	}
	if cfg.PathKey == "" {
		cfg.PathKey = "app"
	}
	if cfg.AppPath == "" {
		cfg.AppPath = "."
	}
	if cfg.Indent == "" {
		cfg.Indent = "\t"
	}
	if cfg.MarkdownClasses == nil {
		cfg.MarkdownClasses = []string{"dash-markdown"}
	}
	if cfg.LayoutClasses == nil {
		cfg.LayoutClasses = []string{"dash-layout"}
	}

	if err := validClass(cfg.MarkerClass); err != nil {
		return fmt.Errorf("config: marker-class: %w", err)
	}
	if strings.ContainsAny(cfg.MarkerClass, "/\\") {
		return fmt.Errorf("config: marker-class %q must not contain path separators", cfg.MarkerClass)
	}
	if strings.ContainsFunc(cfg.PathKey, unicode.IsSpace) || strings.Contains(cfg.PathKey, "=") {
		return fmt.Errorf("config: path-key %q must not contain whitespace or '='", cfg.PathKey)
	}
	for _, c := range cfg.MarkdownClasses {
		if err := validClass(c); err != nil {
			return fmt.Errorf("config: markdown-classes: %w", err)
		}
	}
	for _, c := range cfg.LayoutClasses {
		if err := validClass(c); err != nil {
			return fmt.Errorf("config: layout-classes: %w", err)
		}
	}
	for _, r := range cfg.Indent {
		if r != ' ' && r != '\t' {
			return fmt.Errorf("config: indent must contain only spaces and tabs")
		}
	}
	if cfg.Pattern != "" {
		// Surface a bad custom pattern at load time, with the same
		// requirements segmentation will apply.
		if _, err := segment.NewPattern(cfg.Pattern); err != nil {
			return fmt.Errorf("config: pattern: %w", err)
		}
	}
	return nil
}

func validClass(c string) error {
	if c == "" {
		return fmt.Errorf("class name must be non-empty")
	}
	if strings.ContainsFunc(c, unicode.IsSpace) {
		return fmt.Errorf("class name %q must not contain whitespace", c)
	}
	return nil
}
