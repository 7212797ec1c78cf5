package output

import (
	"strings"

	"github.com/llnl/llogcolor/pkg/color"
	"github.com/llnl/llogcolor/pkg/parser"
)

// Renderer turns a log line into the exact text to emit.
type Renderer struct {
	mode Mode
}

// NewRenderer creates a Renderer for the given mode.
func NewRenderer(mode Mode) *Renderer {
	return &Renderer{mode: mode}
}

// Mode returns the render mode.
func (r *Renderer) Mode() Mode {
	return r.mode
}

// Colors reports whether lines may be wrapped in color at all.
func (r *Renderer) Colors() bool {
	return r.mode == ModeColor
}

// Render returns the output text for line. A nil c means the line has no
// identifier and is emitted unchanged. In a colored line the reset comes
// before the terminator, so color never carries over to the next line.
func (r *Renderer) Render(line *parser.LogLine, c *color.Color) string {
	if !r.Colors() || c == nil {
		return line.Raw()
	}

	var sb strings.Builder
	sb.Grow(len(line.Content) + len(line.Terminator) + len(c.SGR) + len(color.Reset) + 3)
	sb.WriteString(c.Start())
	sb.WriteString(line.Content)
	sb.WriteString(color.Reset)
	sb.WriteString(line.Terminator)
	return sb.String()
}
