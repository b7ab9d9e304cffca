package dictation

import (
	"strings"
	"unicode/utf8"

	"github.com/antzucaro/matchr"
)

// MatchWords pairs every user word with an unused reference word and aligns
// the pair. Matching is greedy in user-word order and each reference word is
// consumed at most once, so an early user word can take a reference word a
// later one fits better.
func MatchWords(userWords, referenceWords []string, opts ...Option) []WordDiagnostic {
	words, _ := matchWords(userWords, referenceWords, buildOptions(opts))
	return words
}

func matchWords(userWords, referenceWords []string, o options) ([]WordDiagnostic, []bool) {
	used := make([]bool, len(referenceWords))
	words := make([]WordDiagnostic, 0, len(userWords))
	for _, word := range userWords {
		idx, tier := selectReference(word, referenceWords, used, o.tieBreak)
		correct := ""
		if idx >= 0 {
			correct = referenceWords[idx]
			used[idx] = true
		}
		diag := WordDiagnostic{
			UserWord:    word,
			CorrectWord: correct,
			Status:      WordPartial,
			Tier:        tier,
			Characters:  Align(word, correct),
		}
		if word == correct {
			diag.Status = WordCorrect
		} else if correct != "" {
			diag.SoundsAlike = soundsAlike(word, correct)
		}
		words = append(words, diag)
	}
	return words, used
}

// selectReference returns the index of the reference word chosen for word, or
// -1 with TierNone when every reference word is already used.
func selectReference(word string, refs []string, used []bool, tie TieBreak) (int, MatchTier) {
	var substring []int
	var unused []int
	for idx, ref := range refs {
		if used[idx] {
			continue
		}
		if strings.HasPrefix(ref, word) {
			return idx, TierPrefix
		}
		if strings.Contains(ref, word) {
			substring = append(substring, idx)
		}
		unused = append(unused, idx)
	}
	if len(substring) > 0 {
		return longest(refs, substring, tie), TierSubstring
	}
	if len(unused) == 0 {
		return -1, TierNone
	}

	distances := make([]int, len(unused))
	best := -1
	for k, idx := range unused {
		distances[k] = matchr.Levenshtein(word, refs[idx])
		if best < 0 || distances[k] < best {
			best = distances[k]
		}
	}
	closest := make([]int, 0, len(unused))
	for k, idx := range unused {
		if distances[k] == best {
			closest = append(closest, idx)
		}
	}
	return longest(refs, closest, tie), TierDistance
}

// longest picks the longest candidate. With TieLast a later candidate of equal
// length replaces the current one; with TieFirst it does not.
func longest(refs []string, candidates []int, tie TieBreak) int {
	best := candidates[0]
	for _, idx := range candidates[1:] {
		n, cur := utf8.RuneCountInString(refs[idx]), utf8.RuneCountInString(refs[best])
		if n > cur || (n == cur && tie == TieLast) {
			best = idx
		}
	}
	return best
}
