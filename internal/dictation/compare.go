package dictation

// Compare normalizes both texts, matches user words against reference words
// and scores the attempt. It never fails and keeps no state between calls.
func Compare(userText, referenceText string, opts ...Option) AttemptResult {
	userWords := Normalize(userText)
	refWords := Normalize(referenceText)
	words, used := matchWords(userWords, refWords, buildOptions(opts))

	unmatched := make([]string, 0)
	for idx, ok := range used {
		if !ok {
			unmatched = append(unmatched, refWords[idx])
		}
	}

	return AttemptResult{
		AllCorrect:         AllCorrect(words, len(refWords)),
		Words:              words,
		Unmatched:          unmatched,
		ReferenceWordCount: len(refWords),
		UserText:           userText,
		CorrectText:        referenceText,
	}
}

// AllCorrect reports whether every word is correct and the transcript has
// exactly referenceWordCount words. A transcript shorter than the reference is
// never all correct.
func AllCorrect(words []WordDiagnostic, referenceWordCount int) bool {
	if len(words) != referenceWordCount {
		return false
	}
	for _, w := range words {
		if w.Status != WordCorrect {
			return false
		}
	}
	return true
}
