// Package report formats the identifier → color legend of a run.
package report

import (
	"time"

	"github.com/llnl/llogcolor/pkg/colorize"
)

// Report is the complete legend output.
type Report struct {
	// Summary provides aggregate statistics.
	Summary Summary

	// Entries lists each identifier in first-seen order.
	Entries []colorize.Entry

	// Metadata provides context about the run.
	Metadata Metadata
}

// Summary provides aggregate statistics.
type Summary struct {
	// Identifiers is the number of distinct identifiers seen.
	Identifiers int

	// PaletteSize is the number of colors available.
	PaletteSize int

	// LinesProcessed is the total number of lines read.
	LinesProcessed int

	// LinesIdentified is the number of lines carrying an identifier.
	LinesIdentified int

	// LinesUnmatched is the number of lines without an identifier.
	LinesUnmatched int
}

// Metadata provides context about the run.
type Metadata struct {
	// Sources lists the inputs that were read, in order.
	Sources []string

	// GeneratedAt is when the run finished.
	GeneratedAt time.Time

	// Duration is how long the run took.
	Duration time.Duration
}

// NewReport creates a Report from a finished run.
func NewReport(stats *colorize.Stats, entries []colorize.Entry, paletteSize int, sources []string) *Report {
	return &Report{
		Entries: entries,
		Summary: Summary{
			Identifiers:     len(entries),
			PaletteSize:     paletteSize,
			LinesProcessed:  stats.LinesProcessed,
			LinesIdentified: stats.LinesProcessed - stats.LinesUnmatched,
			LinesUnmatched:  stats.LinesUnmatched,
		},
		Metadata: Metadata{
			Sources:     sources,
			GeneratedAt: stats.EndTime,
			Duration:    stats.Duration(),
		},
	}
}

// ColorsReused returns true if more identifiers were seen than the palette
// has colors, so some colors stand for more than one identifier.
func (r *Report) ColorsReused() bool {
	return r.Summary.PaletteSize > 0 && r.Summary.Identifiers > r.Summary.PaletteSize
}
