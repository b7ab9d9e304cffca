// Package stats contains attempt metrics and reporting.
package stats

import (
	"math"

	"github.com/verte-zerg/dictee/internal/dictation"
)

// Metrics summarizes one scored attempt.
type Metrics struct {
	CorrectWords   int     `json:"correctWords"`
	PartialWords   int     `json:"partialWords"`
	UnmatchedWords int     `json:"unmatchedWords"`
	CorrectChars   int     `json:"correctChars"`
	IncorrectChars int     `json:"incorrectChars"`
	ExtraChars     int     `json:"extraChars"`
	MissingChars   int     `json:"missingChars"`
	Accuracy       float64 `json:"accuracy"`
	Score          int     `json:"score"`
}

// AttemptMetrics counts word and character outcomes for res.
// Accuracy is the share of aligned positions that are correct. Score is the
// percentage of correct words over the larger of the reference and
// transcript word counts.
func AttemptMetrics(res dictation.AttemptResult) Metrics {
	m := Metrics{UnmatchedWords: len(res.Unmatched)}
	for _, w := range res.Words {
		if w.Status == dictation.WordCorrect {
			m.CorrectWords++
		} else {
			m.PartialWords++
		}
		for _, c := range w.Characters {
			switch c.Status {
			case dictation.CharCorrect:
				m.CorrectChars++
			case dictation.CharIncorrect:
				m.IncorrectChars++
			case dictation.CharExtra:
				m.ExtraChars++
			case dictation.CharMissing:
				m.MissingChars++
			}
		}
	}

	den := m.CorrectChars + m.IncorrectChars + m.ExtraChars + m.MissingChars
	switch {
	case den > 0:
		m.Accuracy = float64(m.CorrectChars) / float64(den)
	case res.AllCorrect:
		m.Accuracy = 1
	}

	words := max(res.ReferenceWordCount, len(res.Words))
	if words == 0 {
		m.Score = 100
	} else {
		m.Score = int(math.Round(100 * float64(m.CorrectWords) / float64(words)))
	}
	return m
}

// WordEdits returns the number of non-correct positions in w's alignment.
func WordEdits(w dictation.WordDiagnostic) int {
	edits := 0
	for _, c := range w.Characters {
		if c.Status != dictation.CharCorrect {
			edits++
		}
	}
	return edits
}
