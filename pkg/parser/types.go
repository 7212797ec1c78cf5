// Package parser provides log input reading and identifier extraction.
package parser

// LogLine is a single raw line read from an input.
type LogLine struct {
	// Content is the line text without its terminator.
	Content string

	// Terminator is the line ending exactly as read: "\n", "\r\n", or ""
	// for a final line with no newline.
	Terminator string

	// Source is the input this line came from ("-" for stdin).
	Source string

	// LineNum is the 1-based line number in the source.
	LineNum int
}

// Raw returns the line exactly as it appeared in the input.
func (l *LogLine) Raw() string {
	return l.Content + l.Terminator
}

// Identifier is the thread or process token embedded in a log line.
type Identifier string
