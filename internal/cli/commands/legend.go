package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/colorize"
	"github.com/llnl/llogcolor/pkg/logging"
	"github.com/llnl/llogcolor/pkg/output"
	"github.com/llnl/llogcolor/pkg/parser"
	"github.com/llnl/llogcolor/pkg/report"
)

// LegendOptions holds command-line options for the legend command.
type LegendOptions struct {
	OutputFormat string
	Summary      bool
	Detail       bool
	NoColor      bool
	Palette      paletteValue
}

// NewLegendCommand creates the legend command.
func NewLegendCommand(global *GlobalOptions) *cobra.Command {
	opts := &LegendOptions{}

	cmd := &cobra.Command{
		Use:   "legend [flags] [file...]",
		Short: "Show which color each thread gets",
		Long: `Read the inputs exactly as the colorizer would and print the identifier
to color mapping instead of the log, with per-identifier line counts.

Assignment is the same as when coloring the same inputs with the same
palette, so the legend matches what the pager shows.

Output formats:
  text - Human-readable table (default)
  json - Machine-readable JSON`,
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLegend(cmd, args, global, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.OutputFormat, "output", "o", "text", "Output format: text, json")
	cmd.Flags().BoolVarP(&opts.Summary, "summary", "s", false, "Print only the one-line summary")
	cmd.Flags().BoolVarP(&opts.Detail, "detail", "d", false, "Show where each identifier first appears")
	cmd.Flags().BoolVarP(&opts.NoColor, "no-color", "C", false, "Do not color identifiers in the table")
	cmd.Flags().Var(&opts.Palette, "palette", "Comma-separated colors, as for the root command")

	return cmd
}

func runLegend(cmd *cobra.Command, args []string, global *GlobalOptions, opts *LegendOptions) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	formatOpts := report.FormatOptions{
		Color:   !opts.NoColor && output.IsTerminal(out),
		Verbose: opts.Detail,
		Quiet:   opts.Summary,
	}
	var formatter report.Formatter
	switch opts.OutputFormat {
	case "text":
		formatter = report.NewTextFormatter(formatOpts)
	case "json":
		formatter = report.NewJSONFormatter(formatOpts)
	default:
		return fmt.Errorf("unknown output format: %s", opts.OutputFormat)
	}

	cfg, err := loadConfig(ctx, global)
	if err != nil {
		return err
	}

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
		output.NewRenderer(output.ModeColor),
		colorize.WithLogger(logging.New("legend")),
	)

	source := parser.NewFileSource(files, cmd.InOrStdin())
	defer source.Close()

	stats, err := pipeline.Run(ctx, source, output.NewStreamSink(io.Discard, false))
	if err != nil {
		return err
	}

	sources := files
	if len(sources) == 0 {
		sources = []string{parser.StdinName}
	}
	rpt := report.NewReport(stats, pipeline.Entries(), len(pipeline.Palette()), sources)

	if err := formatter.Format(ctx, rpt, out); err != nil {
		return &output.WriteError{Err: err}
	}
	return nil
}
