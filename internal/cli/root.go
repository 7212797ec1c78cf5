// Package cli provides the command-line interface for llogcolor.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/llnl/llogcolor/internal/cli/commands"
	"github.com/llnl/llogcolor/pkg/logging"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	rootCmd := NewRootCommand()
	err := rootCmd.ExecuteContext(ctx)
	code := commands.ExitCodeFor(err)

	// Interrupted runs exit quietly, the user asked for it
	if err != nil && code != commands.ExitInterrupted {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	}
	return code
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	global := &commands.GlobalOptions{}
	opts := &commands.ColorizeOptions{}

	rootCmd := &cobra.Command{
		Use:   "llogcolor [flags] [file...]",
		Short: "Color Lustre debug logs by thread",
		Long: `llogcolor colors each line of a Lustre debug log by the pid of the thread
that wrote it, so interleaved output from many threads can be told apart.

Files are read in the order given, as one stream; with no files, or "-",
standard input is read. Each thread keeps its color for the whole run,
including across files. Colors are handed out in order of first appearance.
Lines without a recognizable record header are passed through unchanged.

On a terminal the output is shown in a pager (less -R by default; see
--pager, $LLOGCOLOR_PAGER and $PAGER).

Examples:
  lctl dk | llogcolor
  llogcolor /tmp/lustre-log.1323211069.5555
  llogcolor -P dk.1 dk.2 > colored.txt
  llogcolor -P -C dk.1           # plain concatenation

Exit codes:
  0  - Success
  2  - Usage, configuration or pager error
  74 - An input could not be read or output could not be written`,
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.Setup(global.Verbose, global.Quiet)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return commands.RunColorize(cmd, args, global, opts)
		},
	}

	commands.BindGlobalFlags(rootCmd, global)
	commands.BindColorizeFlags(rootCmd, opts)

	// Add subcommands
	rootCmd.AddCommand(commands.NewLegendCommand(global))
	rootCmd.AddCommand(commands.NewDetectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand(global))
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
