package config

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/llnl/llogcolor/pkg/color"
)

// Load reads and validates a configuration file. The format is chosen by
// extension: .toml is TOML, anything else is YAML.
func Load(_ context.Context, path string) (*Config, error) {
	data, err := os.ReadFile(path) // #nosec G304 -- user-provided config path is expected
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := unmarshal(path, data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}

	cfg.applyEnvironmentOverrides()

	if err := Validate(cfg); err != nil {
		return nil, fmt.Errorf("validating config: %w", err)
	}

	return cfg, nil
}

// LoadDefault loads the first config file found in the default locations,
// or the built-in defaults when there is none. It returns the path that was
// loaded, or "" for the defaults.
func LoadDefault(ctx context.Context) (*Config, string, error) {
	for _, path := range DefaultPaths() {
		if _, err := os.Stat(path); err == nil {
			cfg, err := Load(ctx, path)
			return cfg, path, err
		}
	}

	cfg := DefaultConfig()
	cfg.applyEnvironmentOverrides()
	if err := Validate(cfg); err != nil {
		return nil, "", fmt.Errorf("validating config: %w", err)
	}
	return cfg, "", nil
}

// DefaultPaths lists the config file locations searched by LoadDefault.
func DefaultPaths() []string {
	dir := os.Getenv(EnvConfigDir)
	if dir == "" {
		base, err := os.UserConfigDir()
		if err != nil {
			return nil
		}
		dir = filepath.Join(base, "llogcolor")
	}
	return []string{
		filepath.Join(dir, "config.yaml"),
		filepath.Join(dir, "config.yml"),
		filepath.Join(dir, "config.toml"),
	}
}

func unmarshal(path string, data []byte, cfg *Config) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.Unmarshal(data, cfg)
	}
	return yaml.Unmarshal(data, cfg)
}

// Validate checks a configuration for errors, compiles the identifier
// pattern and resolves the palette.
func Validate(cfg *Config) error {
	if err := validatePattern(cfg); err != nil {
		return fmt.Errorf("identifier_pattern: %w", err)
	}

	if len(cfg.Palette) == 0 {
		cfg.Palette = append([]string(nil), color.DefaultNames...)
	}
	p, err := color.ParsePalette(cfg.Palette)
	if err != nil {
		return fmt.Errorf("palette: %w", err)
	}
	cfg.palette = p

	cfg.Pager = strings.TrimSpace(expandEnvVar(cfg.Pager))
	if cfg.Pager == "" {
		cfg.Pager = DefaultPager
	}

	return nil
}

func validatePattern(cfg *Config) error {
	if cfg.IdentifierPattern == "" {
		return errors.New("pattern is required")
	}

	re, err := regexp.Compile(cfg.IdentifierPattern)
	if err != nil {
		return fmt.Errorf("invalid pattern: %w", err)
	}

	if cfg.IdentifierGroup == 0 {
		cfg.IdentifierGroup = DefaultIdentifierGroup
	}
	if cfg.IdentifierGroup < 0 {
		return fmt.Errorf("identifier_group must be >= 1, got %d", cfg.IdentifierGroup)
	}

	if re.NumSubexp() < cfg.IdentifierGroup {
		return fmt.Errorf("pattern has only %d capture groups, but identifier_group is %d",
			re.NumSubexp(), cfg.IdentifierGroup)
	}

	cfg.compiledPattern = re
	return nil
}

// expandEnvVar expands environment variables in the format ${VAR} or $VAR.
func expandEnvVar(s string) string {
	if s == "" {
		return s
	}

	// Handle ${VAR} format
	if strings.HasPrefix(s, "${") && strings.HasSuffix(s, "}") {
		varName := s[2 : len(s)-1]
		return os.Getenv(varName)
	}

	// Handle $VAR format (no braces)
	if strings.HasPrefix(s, "$") && !strings.HasPrefix(s, "${") {
		varName := s[1:]
		return os.Getenv(varName)
	}

	return s
}
