package report

import (
	"context"
	"io"
)

// Formatter renders a legend report in a specific format.
type Formatter interface {
	// Format renders the report to the given writer.
	Format(ctx context.Context, report *Report, w io.Writer) error

	// Name returns the format name (text, json).
	Name() string
}

// FormatOptions controls formatter behavior.
type FormatOptions struct {
	// Color wraps each identifier in its assigned color.
	Color bool

	// Verbose adds where each identifier was first seen.
	Verbose bool

	// Quiet enables minimal summary-only output.
	Quiet bool
}
