// Package detector finds which known log layout a file uses and where the
// thread identifier sits in it.
package detector

import (
	"bufio"
	"context"
	"io"
	"os"
	"sort"
	"strings"
)

// DetectionResult holds the result of analyzing a log file.
type DetectionResult struct {
	Matches      []FormatMatch // Formats that matched, sorted by confidence descending
	SampledLines int           // Number of lines sampled
	MatchedLines int           // Number of lines the best format identified
}

// FormatMatch represents a format that matched with its confidence score.
type FormatMatch struct {
	Format           *IdentifierFormat
	Confidence       float64 // 0.0 to 1.0 (fraction of lines matched)
	MatchCount       int     // Number of lines that matched
	Identifiers      int     // Distinct identifiers seen
	SampleLine       string  // Example line that matched
	SampleIdentifier string  // Identifier extracted from SampleLine
}

// Detector samples log files to identify their identifier format.
type Detector struct {
	formats    []*IdentifierFormat
	sampleSize int
}

// Option configures the Detector.
type Option func(*Detector)

// WithSampleSize sets the number of lines to sample (default 100).
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithFormats replaces the built-in formats.
func WithFormats(formats []*IdentifierFormat) Option {
	return func(d *Detector) {
		if len(formats) > 0 {
			d.formats = formats
		}
	}
}

// New creates a new Detector with default formats.
func New(opts ...Option) *Detector {
	d := &Detector{
		formats:    DefaultFormats(),
		sampleSize: 100,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// DetectFromFile samples a log file and returns detected formats.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	// #nosec G304 - path is provided by user via CLI
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	return d.DetectFromReader(ctx, file)
}

// DetectFromReader samples lines from r and returns detected formats.
func (d *Detector) DetectFromReader(ctx context.Context, r io.Reader) (*DetectionResult, error) {
	lines, err := d.sample(ctx, r)
	if err != nil {
		return nil, err
	}
	return d.DetectFromLines(lines), nil
}

// DetectFromLines analyzes a slice of log lines.
func (d *Detector) DetectFromLines(lines []string) *DetectionResult {
	result := &DetectionResult{
		SampledLines: len(lines),
	}

	if len(lines) == 0 {
		return result
	}

	// Track matches per format
	type formatStats struct {
		format     *IdentifierFormat
		matchCount int
		ids        map[string]struct{}
		sampleLine string
		sampleID   string
	}

	stats := make(map[string]*formatStats)

	for _, format := range d.formats {
		extractor := format.Extractor()
		for _, line := range lines {
			id, ok := extractor.Extract(line)
			if !ok {
				continue
			}

			key := format.Name
			if stats[key] == nil {
				stats[key] = &formatStats{
					format:     format,
					ids:        make(map[string]struct{}),
					sampleLine: line,
					sampleID:   string(id),
				}
			}
			stats[key].matchCount++
			stats[key].ids[string(id)] = struct{}{}
		}
	}

	for _, s := range stats {
		result.Matches = append(result.Matches, FormatMatch{
			Format:           s.format,
			Confidence:       float64(s.matchCount) / float64(len(lines)),
			MatchCount:       s.matchCount,
			Identifiers:      len(s.ids),
			SampleLine:       s.sampleLine,
			SampleIdentifier: s.sampleID,
		})
	}

	// Sort by confidence descending, then by pattern length (more specific first)
	sort.Slice(result.Matches, func(i, j int) bool {
		if result.Matches[i].Confidence != result.Matches[j].Confidence {
			return result.Matches[i].Confidence > result.Matches[j].Confidence
		}
		return len(result.Matches[i].Format.PatternStr) > len(result.Matches[j].Format.PatternStr)
	})

	if len(result.Matches) > 0 {
		result.MatchedLines = result.Matches[0].MatchCount
	}

	return result
}

// sample reads up to sampleSize non-empty lines.
// Uses simple head sampling for efficiency.
func (d *Detector) sample(ctx context.Context, r io.Reader) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() && len(lines) < d.sampleSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) != "" {
			lines = append(lines, line)
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return lines, nil
}

// BestMatch returns the highest confidence match, or nil if none found.
func (r *DetectionResult) BestMatch() *FormatMatch {
	if len(r.Matches) == 0 {
		return nil
	}
	return &r.Matches[0]
}

// HasMatch returns true if at least one format matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}
