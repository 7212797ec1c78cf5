package colorize

import (
	"time"

	"github.com/llnl/llogcolor/pkg/color"
)

// Stats summarizes one Run.
type Stats struct {
	// LinesProcessed is the number of lines read and written.
	LinesProcessed int

	// LinesColored is the number of lines wrapped in a color.
	LinesColored int

	// LinesUnmatched is the number of lines with no identifier.
	LinesUnmatched int

	// Identifiers is the number of distinct identifiers seen so far
	// by the pipeline, including earlier runs.
	Identifiers int

	// Truncated is set when the pager was closed before all lines were written.
	Truncated bool

	StartTime time.Time
	EndTime   time.Time
}

// Duration returns how long the run took.
func (s *Stats) Duration() time.Duration {
	return s.EndTime.Sub(s.StartTime)
}

// Entry describes one identifier and its color.
type Entry struct {
	Identifier  string
	Color       color.Color
	Lines       int
	FirstSource string
	FirstLine   int
}
