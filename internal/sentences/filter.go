// Package sentences provides sentence filtering helpers.
package sentences

import (
	"strings"

	"github.com/verte-zerg/dictee/internal/dictation"
)

// FilterFunc returns true when a sentence should be kept.
type FilterFunc func(string) bool

// Scorable keeps sentences that normalize to at least one word.
func Scorable(text string) bool {
	return len(dictation.Normalize(text)) > 0
}

// Filter returns the sentences accepted by keep, trimmed of surrounding space.
func Filter(lines []string, keep FilterFunc) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if keep(line) {
			out = append(out, line)
		}
	}
	return out
}
