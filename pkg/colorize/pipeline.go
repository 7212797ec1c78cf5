// Package colorize drives log lines from a source through identifier
// extraction, color assignment and rendering into an output sink.
package colorize

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/logging"
	"github.com/llnl/llogcolor/pkg/output"
	"github.com/llnl/llogcolor/pkg/parser"
)

// Extractor finds the identifier in a line's content.
type Extractor interface {
	Extract(content string) (parser.Identifier, bool)
}

// Pipeline owns the per-run state: one assigner shared by every input
// read through it.
type Pipeline struct {
	extractor Extractor
	assigner  *color.Assigner
	renderer  *output.Renderer
	logger    *log.Logger

	entries map[string]*Entry
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithLogger sets the logger used for diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(p *Pipeline) {
		if l != nil {
			p.logger = l
		}
	}
}

// New creates a Pipeline.
func New(extractor Extractor, assigner *color.Assigner, renderer *output.Renderer, opts ...Option) *Pipeline {
	p := &Pipeline{
		extractor: extractor,
		assigner:  assigner,
		renderer:  renderer,
		logger:    logging.New("colorize"),
		entries:   make(map[string]*Entry),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Run reads every line from src and writes its rendering to sink, in order.
// It stops at the first source or sink error. A pager closed by the user
// ends the run without error. The sink is not closed.
func (p *Pipeline) Run(ctx context.Context, src parser.LineSource, sink output.Sink) (*Stats, error) {
	stats := &Stats{StartTime: time.Now()}
	defer func() {
		stats.Identifiers = p.assigner.Len()
		stats.EndTime = time.Now()
	}()

	source := ""
	for {
		line, err := src.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return stats, err
		}

		if line.Source != source {
			source = line.Source
			p.logger.Debug("reading input", "source", source)
		}
		stats.LinesProcessed++

		var c *color.Color
		if id, ok := p.extractor.Extract(line.Content); ok {
			assigned := p.assigner.ColorFor(string(id))
			p.track(string(id), assigned, line)
			if p.renderer.Colors() {
				c = &assigned
				stats.LinesColored++
			}
		} else {
			stats.LinesUnmatched++
		}

		if err := sink.WriteLine(p.renderer.Render(line, c)); err != nil {
			if errors.Is(err, output.ErrPagerClosed) {
				p.logger.Debug("pager closed, stopping", "lines", stats.LinesProcessed)
				stats.Truncated = true
				return stats, nil
			}
			return stats, err
		}
	}

	p.logger.Debug("run complete",
		"lines", stats.LinesProcessed,
		"colored", stats.LinesColored,
		"unmatched", stats.LinesUnmatched,
		"identifiers", p.assigner.Len())
	return stats, nil
}

// Entries returns one entry per identifier seen, in first-seen order.
func (p *Pipeline) Entries() []Entry {
	assignments := p.assigner.Assignments()
	out := make([]Entry, 0, len(assignments))
	for _, a := range assignments {
		if e, ok := p.entries[a.Identifier]; ok {
			out = append(out, *e)
		}
	}
	return out
}

// Palette returns the palette colors are drawn from.
func (p *Pipeline) Palette() color.Palette {
	return p.assigner.Palette()
}

func (p *Pipeline) track(id string, c color.Color, line *parser.LogLine) {
	e, ok := p.entries[id]
	if !ok {
		e = &Entry{
			Identifier:  id,
			Color:       c,
			FirstSource: line.Source,
			FirstLine:   line.LineNum,
		}
		p.entries[id] = e
	}
	e.Lines++
}
