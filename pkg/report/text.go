package report

import (
	"context"
	"fmt"
	"io"
	"strings"
)

// TextFormatter formats reports as a human-readable table.
type TextFormatter struct {
	opts FormatOptions
}

// NewTextFormatter creates a new text formatter with the given options.
func NewTextFormatter(opts FormatOptions) *TextFormatter {
	return &TextFormatter{opts: opts}
}

// Name returns the format name.
func (f *TextFormatter) Name() string {
	return "text"
}

// Format renders the report as text.
func (f *TextFormatter) Format(ctx context.Context, report *Report, w io.Writer) error {
	if f.opts.Quiet {
		return f.formatQuiet(report, w)
	}
	return f.formatFull(report, w)
}

func (f *TextFormatter) formatQuiet(report *Report, w io.Writer) error {
	_, err := fmt.Fprintf(w, "llogcolor: %d identifiers, %d lines, %d unmatched\n",
		report.Summary.Identifiers,
		report.Summary.LinesProcessed,
		report.Summary.LinesUnmatched)
	return err
}

func (f *TextFormatter) formatFull(report *Report, w io.Writer) error {
	var sb strings.Builder

	sb.WriteString("=== llogcolor legend ===\n\n")

	if len(report.Entries) == 0 {
		sb.WriteString("  No identifiers found\n")
	}

	idWidth := len("IDENTIFIER")
	colorWidth := len("COLOR")
	for _, e := range report.Entries {
		idWidth = max(idWidth, len(e.Identifier))
		colorWidth = max(colorWidth, len(e.Color.Name))
	}

	if len(report.Entries) > 0 {
		fmt.Fprintf(&sb, "  %-*s  %-*s  %8s\n", idWidth, "IDENTIFIER", colorWidth, "COLOR", "LINES")
	}
	for _, e := range report.Entries {
		id := fmt.Sprintf("%-*s", idWidth, e.Identifier)
		if f.opts.Color {
			id = e.Color.Wrap(id)
		}
		fmt.Fprintf(&sb, "  %s  %-*s  %8d", id, colorWidth, e.Color.Name, e.Lines)
		if f.opts.Verbose {
			fmt.Fprintf(&sb, "  first at %s:%d", e.FirstSource, e.FirstLine)
		}
		sb.WriteString("\n")
	}

	sb.WriteString("\n---\n")
	fmt.Fprintf(&sb, "Summary: %d identifiers, %d lines (%d identified, %d unmatched)\n",
		report.Summary.Identifiers,
		report.Summary.LinesProcessed,
		report.Summary.LinesIdentified,
		report.Summary.LinesUnmatched)

	if report.ColorsReused() {
		fmt.Fprintf(&sb, "Note: %d identifiers share a palette of %d colors; colors repeat in first-seen order\n",
			report.Summary.Identifiers, report.Summary.PaletteSize)
	}

	if f.opts.Verbose {
		fmt.Fprintf(&sb, "Sources: %s\n", strings.Join(report.Metadata.Sources, ", "))
		fmt.Fprintf(&sb, "Duration: %s\n", report.Metadata.Duration.Round(1e6))
	}

	_, err := io.WriteString(w, sb.String())
	return err
}
