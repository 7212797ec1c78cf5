package config

import (
	"os"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/output"
)

// Default values for configuration.
const (
	// DefaultIdentifierPattern matches the Lustre debug record header
	//   subsys:mask:cpu.type[F]:sec.usec:stack:pid:extern_pid:(file:line:func()) text
	// and captures the pid.
	DefaultIdentifierPattern = `^[0-9a-fA-F]+:[0-9a-fA-F]+:\d+(?:\.\d+)?F?:\d+\.\d+:\d+:(\d+):`
	DefaultIdentifierGroup   = 1
	DefaultPager             = output.DefaultPager
)

// Environment variable names.
const (
	EnvPager       = "LLOGCOLOR_PAGER"
	EnvSystemPager = "PAGER"
	EnvConfigDir   = "LLOGCOLOR_CONFIG_DIR"
)

// DefaultConfig returns a configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		IdentifierPattern: DefaultIdentifierPattern,
		IdentifierGroup:   DefaultIdentifierGroup,
		Palette:           append([]string(nil), color.DefaultNames...),
	}
}

// applyEnvironmentOverrides applies environment variable overrides to the config.
// LLOGCOLOR_PAGER beats the config file; PAGER only fills in a missing pager.
func (c *Config) applyEnvironmentOverrides() {
	if pager := os.Getenv(EnvPager); pager != "" {
		c.Pager = pager
		return
	}
	if c.Pager == "" {
		c.Pager = os.Getenv(EnvSystemPager)
	}
}
