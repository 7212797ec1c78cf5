package parser

import (
	"fmt"
	"path/filepath"
	"sort"
)

// ExpandInputs expands a list of file paths and glob patterns into input
// paths, keeping the order in which the patterns were given. Matches of a
// single pattern are sorted. Patterns that don't match any files are returned
// as-is so that opening them reports the real error. "-" is kept as stdin.
func ExpandInputs(patterns []string) ([]string, error) {
	var result []string

	for _, pattern := range patterns {
		if pattern == StdinName {
			result = append(result, pattern)
			continue
		}

		matches, err := filepath.Glob(pattern)
		if err != nil {
			return nil, fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
		}

		if len(matches) == 0 {
			result = append(result, pattern)
			continue
		}

		sort.Strings(matches)
		result = append(result, matches...)
	}

	return result, nil
}
