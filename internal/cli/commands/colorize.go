package commands

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/colorize"
	"github.com/llnl/llogcolor/pkg/config"
	"github.com/llnl/llogcolor/pkg/logging"
	"github.com/llnl/llogcolor/pkg/output"
	"github.com/llnl/llogcolor/pkg/parser"
)

// ColorizeOptions holds command-line options for coloring a log.
type ColorizeOptions struct {
	NoPager bool
	NoColor bool
	Pager   string
	Palette paletteValue
}

// BindColorizeFlags registers the coloring flags on cmd.
func BindColorizeFlags(cmd *cobra.Command, opts *ColorizeOptions) {
	cmd.Flags().BoolVarP(&opts.NoPager, "no-pager", "P", false, "Write to stdout instead of a pager")
	cmd.Flags().BoolVarP(&opts.NoColor, "no-color", "C", false, "Do not color; output equals input")
	cmd.Flags().StringVar(&opts.Pager, "pager", "", "Pager command line (default \"less -R\")")
	cmd.Flags().Var(&opts.Palette, "palette", "Comma-separated colors: names (red, bold-cyan, bright-blue) or SGR codes (38;5;208)")
}

// RunColorize colors the inputs named by args and writes them to stdout or a pager.
func RunColorize(cmd *cobra.Command, args []string, global *GlobalOptions, opts *ColorizeOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	logger := logging.New("llogcolor")

	cfg, err := loadConfig(ctx, global)
	if err != nil {
		return err
	}
	applyColorizeFlags(cmd, cfg, opts)

	files, err := parser.ExpandInputs(args)
	if err != nil {
		return fmt.Errorf("expanding inputs: %w", err)
	}

	palette := cfg.ResolvedPalette()
	if opts.Palette.palette != nil {
		palette = opts.Palette.palette
	}

	pipeline := colorize.New(
		parser.NewIdentifierExtractor(cfg.CompiledPattern(), cfg.IdentifierGroup),
		color.NewAssigner(palette),
		output.NewRenderer(output.ModeFor(cfg.NoColor)),
		colorize.WithLogger(logging.New("colorize")),
	)

	source := parser.NewFileSource(files, cmd.InOrStdin())
	defer source.Close()

	sink, err := output.OpenSink(output.SinkOptions{
		NoPager: cfg.NoPager,
		Pager:   cfg.Pager,
		Stdout:  cmd.OutOrStdout(),
		Stderr:  cmd.ErrOrStderr(),
	})
	if err != nil {
		return fmt.Errorf("starting pager: %w", err)
	}

	stats, runErr := pipeline.Run(ctx, source, sink)
	closeErr := sink.Close()
	if runErr != nil {
		return runErr
	}
	if closeErr != nil {
		return closeErr
	}

	logger.Debug("done",
		"lines", stats.LinesProcessed,
		"identifiers", stats.Identifiers,
		"truncated", stats.Truncated,
		"duration", stats.Duration())
	return nil
}

// applyColorizeFlags lets explicitly set flags override the config file.
func applyColorizeFlags(cmd *cobra.Command, cfg *config.Config, opts *ColorizeOptions) {
	if opts.NoPager {
		cfg.NoPager = true
	}
	if opts.NoColor {
		cfg.NoColor = true
	}
	if cmd.Flags().Changed("pager") && opts.Pager != "" {
		cfg.Pager = opts.Pager
	}
}
