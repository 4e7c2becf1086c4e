// Package analyze holds the per-file heuristics: comment line counting and
// the five machine-generation pattern detectors. Everything here is a pure
// function of one file's content so callers can fan work out across files.
package analyze

import (
	"strings"

	"vibescan/internal/engine/language"
)

// CountLines returns the newline-split segment count, so a trailing newline
// contributes one extra line.
func CountLines(content []byte) int {
	return strings.Count(string(content), "\n") + 1
}

// CountCommentLines counts lines whose first non-whitespace characters match
// one of the family's comment markers. Each line is tested independently, so
// block-comment bodies without a per-line marker are undercounted. That is an
// approximation, not a parser.
func CountCommentLines(content []byte, fam language.Family) int {
	markers := language.CommentMarkers(fam)
	if len(markers) == 0 {
		return 0
	}

	count := 0
	for _, line := range strings.Split(string(content), "\n") {
		stripped := strings.TrimSpace(line)
		if stripped == "" {
			continue
		}
		for _, marker := range markers {
			if strings.HasPrefix(stripped, marker) {
				count++
				break
			}
		}
	}
	return count
}
