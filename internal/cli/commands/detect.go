package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/llnl/llogcolor/pkg/config"
	"github.com/llnl/llogcolor/pkg/detector"
	"github.com/llnl/llogcolor/pkg/parser"
)

// DetectOptions holds command-line options for the detect command.
type DetectOptions struct {
	Output      string
	SampleSize  int
	ShowAll     bool
	WriteConfig string
}

// NewDetectCommand creates the detect command.
func NewDetectCommand() *cobra.Command {
	opts := &DetectOptions{}

	cmd := &cobra.Command{
		Use:   "detect <log-file>",
		Short: "Detect where the thread identifier sits in a log file",
		Long: `Sample a log file and test it against known log layouts to find the
pattern that locates each line's thread identifier.

Reports the detected layout with a confidence score and a ready-to-use
configuration snippet. Use "-" to read standard input.

Optionally generates a starter config file with --write-config.

Supports:
  - Lustre debug logs (lctl debug_kernel)
  - Lustre console messages from dmesg or syslog
  - BSD syslog program pids
  - Bracketed thread names after an ISO timestamp

Example:
  llogcolor detect /tmp/lustre-log.1323211069.5555
  dmesg | llogcolor detect -
  llogcolor detect --write-config ~/.config/llogcolor/config.yaml /var/log/messages`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDetect(cmd, args, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.Output, "output", "o", "text", "Output format (text|json)")
	cmd.Flags().IntVarP(&opts.SampleSize, "sample", "n", 100, "Number of lines to sample")
	cmd.Flags().BoolVar(&opts.ShowAll, "all", false, "Show all detected layouts, not just the best match")
	cmd.Flags().StringVarP(&opts.WriteConfig, "write-config", "w", "", "Write starter config to file (will not overwrite)")

	return cmd
}

func runDetect(cmd *cobra.Command, args []string, opts *DetectOptions) error {
	logFile := args[0]
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	out := cmd.OutOrStdout()

	if opts.Output != "text" && opts.Output != "json" {
		return fmt.Errorf("unknown output format: %s", opts.Output)
	}

	d := detector.New(detector.WithSampleSize(opts.SampleSize))

	var (
		result *detector.DetectionResult
		err    error
	)
	if logFile == parser.StdinName {
		result, err = d.DetectFromReader(ctx, cmd.InOrStdin())
	} else {
		result, err = d.DetectFromFile(ctx, logFile)
	}
	if err != nil {
		return &parser.InputError{Path: logFile, Op: "read", Err: err}
	}

	// Write config file if requested
	if opts.WriteConfig != "" {
		if err := writeStarterConfig(out, result, logFile, opts.WriteConfig); err != nil {
			return err
		}
	}

	switch opts.Output {
	case "json":
		return outputDetectJSON(out, result, logFile, opts)
	default:
		return outputDetectText(out, result, logFile, opts)
	}
}

func outputDetectText(w io.Writer, result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	_, _ = fmt.Fprintln(w, "=== Identifier Format Detection ===")
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "File: %s\n", logFile)
	_, _ = fmt.Fprintf(w, "Lines sampled: %d\n", result.SampledLines)
	_, _ = fmt.Fprintf(w, "Lines with identifiers: %d\n", result.MatchedLines)
	_, _ = fmt.Fprintln(w)

	if !result.HasMatch() {
		_, _ = fmt.Fprintln(w, "No known layout detected.")
		_, _ = fmt.Fprintln(w)
		_, _ = fmt.Fprintln(w, "Tip: set identifier_pattern in the config file to a regex whose")
		_, _ = fmt.Fprintln(w, "capture group holds the thread or process id.")
		return nil
	}

	best := result.BestMatch()
	_, _ = fmt.Fprintf(w, "Detected Format: %s\n", best.Format.Name)
	_, _ = fmt.Fprintf(w, "Confidence: %.1f%% (%d/%d lines matched)\n",
		best.Confidence*100, best.MatchCount, result.SampledLines)
	_, _ = fmt.Fprintf(w, "Identifiers: %d distinct\n", best.Identifiers)
	_, _ = fmt.Fprintln(w)
	_, _ = fmt.Fprintf(w, "Sample match:\n  %s\n", best.SampleLine)
	_, _ = fmt.Fprintf(w, "Identifier: %s\n", best.SampleIdentifier)
	_, _ = fmt.Fprintln(w)

	_, _ = fmt.Fprintln(w, "--- Configuration snippet (copy to your config file) ---")
	_, _ = fmt.Fprintln(w)
	snippet, err := starterConfig(best)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(w, "%s\n", snippet)

	if opts.ShowAll && len(result.Matches) > 1 {
		_, _ = fmt.Fprintln(w, "--- Alternative layouts detected ---")
		for i, m := range result.Matches[1:] {
			_, _ = fmt.Fprintf(w, "%d. %s (%.1f%% confidence)\n", i+2, m.Format.Name, m.Confidence*100)
			_, _ = fmt.Fprintf(w, "   identifier_pattern: '%s'\n", m.Format.PatternStr)
			_, _ = fmt.Fprintf(w, "   identifier_group: %d\n", m.Format.Group)
		}
		_, _ = fmt.Fprintln(w)
	}

	return nil
}

// JSONMatch represents a format match in JSON output.
type JSONMatch struct {
	Name             string  `json:"name"`
	Pattern          string  `json:"pattern"`
	Group            int     `json:"group"`
	Confidence       float64 `json:"confidence"`
	MatchCount       int     `json:"match_count"`
	Identifiers      int     `json:"identifiers"`
	SampleLine       string  `json:"sample_line"`
	SampleIdentifier string  `json:"sample_identifier"`
}

// JSONOutput represents the full JSON output.
type JSONOutput struct {
	File         string      `json:"file"`
	Matches      []JSONMatch `json:"matches"`
	SampledLines int         `json:"sampled_lines"`
	MatchedLines int         `json:"matched_lines"`
}

func outputDetectJSON(w io.Writer, result *detector.DetectionResult, logFile string, opts *DetectOptions) error {
	output := JSONOutput{
		File:         logFile,
		SampledLines: result.SampledLines,
		MatchedLines: result.MatchedLines,
		Matches:      make([]JSONMatch, 0),
	}

	matches := result.Matches
	if !opts.ShowAll && len(matches) > 1 {
		matches = matches[:1] // Only show best match
	}

	for _, m := range matches {
		output.Matches = append(output.Matches, JSONMatch{
			Name:             m.Format.Name,
			Pattern:          m.Format.PatternStr,
			Group:            m.Format.Group,
			Confidence:       m.Confidence,
			MatchCount:       m.MatchCount,
			Identifiers:      m.Identifiers,
			SampleLine:       m.SampleLine,
			SampleIdentifier: m.SampleIdentifier,
		})
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}

// writeStarterConfig writes a config file for the detected format.
func writeStarterConfig(w io.Writer, result *detector.DetectionResult, logFile, configPath string) error {
	// Check if file already exists
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("config file already exists: %s (will not overwrite)", configPath)
	}

	// Need a detected format to generate config
	if !result.HasMatch() {
		return fmt.Errorf("cannot generate config: no known layout detected")
	}

	best := result.BestMatch()
	body, err := starterConfig(best)
	if err != nil {
		return err
	}

	content := fmt.Sprintf(`# llogcolor configuration
# Generated by: llogcolor detect %s
# Detected format: %s (%.0f%% confidence)

%s
# palette: [red, green, yellow, blue, magenta, cyan]
# pager: "less -R"
`, logFile, best.Format.Name, best.Confidence*100, body)

	// #nosec G306 - config file doesn't need restrictive permissions
	if err := os.WriteFile(configPath, []byte(content), 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(w, "Wrote starter config to: %s\n\n", configPath)
	return nil
}

// starterConfig renders the config keys for a detected format as YAML.
func starterConfig(match *detector.FormatMatch) (string, error) {
	cfg := &config.Config{
		IdentifierPattern: match.Format.PatternStr,
		IdentifierGroup:   match.Format.Group,
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("rendering config: %w", err)
	}
	return string(data), nil
}
