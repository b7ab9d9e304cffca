package tui

import "strings"

type wordRange struct {
	start int
	end   int
}

func findWords(runes []rune) []wordRange {
	words := []wordRange{}
	start := -1
	for i, r := range runes {
		if r == ' ' {
			if start != -1 {
				words = append(words, wordRange{start: start, end: i})
				start = -1
			}
			continue
		}
		if start == -1 {
			start = i
		}
	}
	if start != -1 {
		words = append(words, wordRange{start: start, end: len(runes)})
	}
	return words
}

// maskHint shows the first revealed words of reference and replaces every
// other non-space character with an underscore.
func maskHint(reference string, revealed int) string {
	runes := []rune(strings.Join(strings.Fields(reference), " "))
	words := findWords(runes)
	for i, w := range words {
		if i < revealed {
			continue
		}
		for j := w.start; j < w.end; j++ {
			runes[j] = '_'
		}
	}
	return string(runes)
}

func hintWordCount(reference string) int {
	return len(strings.Fields(reference))
}
