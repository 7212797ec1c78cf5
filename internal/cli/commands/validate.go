package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llnl/llogcolor/pkg/config"
	"github.com/llnl/llogcolor/pkg/output"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand(global *GlobalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate [config-file]",
		Short: "Validate a configuration file",
		Long: `Validate an llogcolor configuration file without reading any logs.

With no argument, the file named by --config is checked, or else the first
config file found in the default locations.

Checks:
  - YAML or TOML syntax
  - Identifier pattern compiles and has the configured capture group
  - Palette entries are known color names or SGR codes
  - Pager command resolution`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd, args, global)
		},
	}
}

func runValidate(cmd *cobra.Command, args []string, global *GlobalOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	configPath := global.ConfigPath
	if len(args) == 1 {
		configPath = args[0]
	}

	var (
		cfg *config.Config
		err error
	)
	if configPath != "" {
		_, _ = fmt.Fprintf(out, "Validating %s...\n", configPath)
		cfg, err = config.Load(ctx, configPath)
	} else {
		cfg, configPath, err = config.LoadDefault(ctx)
		if configPath == "" {
			_, _ = fmt.Fprintf(out, "No config file found, validating built-in defaults...\n")
		} else {
			_, _ = fmt.Fprintf(out, "Validating %s...\n", configPath)
		}
	}
	if err != nil {
		return fmt.Errorf("validation failed: %w", err)
	}

	// Report what we found
	swatches := output.IsTerminal(out)
	_, _ = fmt.Fprintf(out, "\nConfiguration valid!\n")
	_, _ = fmt.Fprintf(out, "  Identifier pattern: %s\n", cfg.IdentifierPattern)
	_, _ = fmt.Fprintf(out, "  Capture group:      %d\n", cfg.IdentifierGroup)
	_, _ = fmt.Fprintf(out, "  Pager:              %s\n", cfg.Pager)
	if cfg.NoPager {
		_, _ = fmt.Fprintf(out, "  Paging:             disabled\n")
	}
	if cfg.NoColor {
		_, _ = fmt.Fprintf(out, "  Coloring:           disabled\n")
	}

	palette := cfg.ResolvedPalette()
	_, _ = fmt.Fprintf(out, "\nPalette (%d colors):\n", len(palette))
	for i, c := range palette {
		name := c.Name
		if swatches {
			name = c.Wrap(name)
		}
		_, _ = fmt.Fprintf(out, "  %2d. %s (%s)\n", i+1, name, c.SGR)
	}

	return nil
}
