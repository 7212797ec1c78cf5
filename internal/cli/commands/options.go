package commands

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/config"
	"github.com/llnl/llogcolor/pkg/logging"
)

// GlobalOptions holds flags shared by every command.
type GlobalOptions struct {
	ConfigPath string
	Verbose    bool
	Quiet      bool
}

// BindGlobalFlags registers the persistent flags on the root command.
func BindGlobalFlags(cmd *cobra.Command, opts *GlobalOptions) {
	cmd.PersistentFlags().StringVar(&opts.ConfigPath, "config", "", "Config file (YAML or TOML; default searches the user config dir)")
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "Log diagnostics to stderr")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "Only log errors")
}

// loadConfig loads the config named by --config, or the default one.
func loadConfig(ctx context.Context, opts *GlobalOptions) (*config.Config, error) {
	logger := logging.New("config")

	if opts.ConfigPath != "" {
		cfg, err := config.Load(ctx, opts.ConfigPath)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		logger.Debug("loaded config", "path", opts.ConfigPath)
		return cfg, nil
	}

	cfg, path, err := config.LoadDefault(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading config %s: %w", path, err)
	}
	if path != "" {
		logger.Debug("loaded config", "path", path)
	} else {
		logger.Debug("using built-in config")
	}
	return cfg, nil
}

// paletteValue is a pflag.Value holding a comma-separated palette.
type paletteValue struct {
	raw     []string
	palette color.Palette
}

var _ pflag.Value = (*paletteValue)(nil)

func (v *paletteValue) String() string {
	return strings.Join(v.raw, ",")
}

func (v *paletteValue) Set(s string) error {
	raw := strings.Split(s, ",")
	p, err := color.ParsePalette(raw)
	if err != nil {
		return err
	}
	v.raw = raw
	v.palette = p
	return nil
}

func (v *paletteValue) Type() string {
	return "colors"
}
