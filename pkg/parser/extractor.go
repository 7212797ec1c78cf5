package parser

import (
	"regexp"
)

// IdentifierExtractor locates the thread/process identifier in a log line.
// It holds no per-line state and may be reused for every line of a run.
type IdentifierExtractor struct {
	pattern *regexp.Regexp
	group   int
}

// NewIdentifierExtractor creates an extractor that returns capture group
// number group (1-based) of pattern as the identifier.
func NewIdentifierExtractor(pattern *regexp.Regexp, group int) *IdentifierExtractor {
	if group < 1 {
		group = 1
	}
	return &IdentifierExtractor{
		pattern: pattern,
		group:   group,
	}
}

// Extract returns the identifier found in content.
// The second result is false when the line does not have the expected
// record structure or the capture group is empty.
func (e *IdentifierExtractor) Extract(content string) (Identifier, bool) {
	matches := e.pattern.FindStringSubmatch(content)
	if len(matches) <= e.group {
		return "", false
	}

	id := matches[e.group]
	if id == "" {
		return "", false
	}
	return Identifier(id), true
}
