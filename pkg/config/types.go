// Package config provides configuration loading and validation for llogcolor.
package config

import (
	"regexp"

	"github.com/llnl/llogcolor/pkg/color"
)

// Config is the root configuration structure loaded from YAML or TOML.
type Config struct {
	// IdentifierPattern is a regex locating the thread/process identifier
	// in a log line. Must contain at least IdentifierGroup capture groups.
	IdentifierPattern string `yaml:"identifier_pattern" toml:"identifier_pattern"`

	// IdentifierGroup is the 1-based capture group holding the identifier.
	IdentifierGroup int `yaml:"identifier_group,omitempty" toml:"identifier_group,omitempty"`

	// Palette lists color names (red, bold-cyan, bright-blue, ...) or raw SGR
	// parameters ("38;5;208"), in assignment order.
	Palette []string `yaml:"palette,omitempty" toml:"palette,omitempty"`

	// Pager is the pager command line used on a terminal.
	// Supports ${VAR} and $VAR references.
	Pager string `yaml:"pager,omitempty" toml:"pager,omitempty"`

	// NoPager always writes directly to stdout.
	NoPager bool `yaml:"no_pager,omitempty" toml:"no_pager,omitempty"`

	// NoColor disables coloring.
	NoColor bool `yaml:"no_color,omitempty" toml:"no_color,omitempty"`

	// Populated during validation.
	compiledPattern *regexp.Regexp
	palette         color.Palette
}

// CompiledPattern returns the pre-compiled identifier pattern.
func (c *Config) CompiledPattern() *regexp.Regexp {
	return c.compiledPattern
}

// ResolvedPalette returns the palette resolved during validation.
func (c *Config) ResolvedPalette() color.Palette {
	return c.palette
}
