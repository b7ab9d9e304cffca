// Package stats contains attempt metrics and reporting.
package stats

import (
	"fmt"
	"io"
	"strings"

	"github.com/verte-zerg/dictee/internal/dictation"
)

// RenderWordTable prints one row per user word.
func RenderWordTable(w io.Writer, res dictation.AttemptResult) error {
	if len(res.Words) == 0 {
		_, err := fmt.Fprintln(w, "No words to compare.")
		return err
	}
	headers := []string{"User", "Reference", "Status", "Tier", "Edits"}
	rows := make([][]string, 0, len(res.Words))
	for _, word := range res.Words {
		ref := word.CorrectWord
		if ref == "" {
			ref = "-"
		}
		status := word.Status.String()
		if word.SoundsAlike {
			status += " (sounds alike)"
		}
		rows = append(rows, []string{
			word.UserWord,
			ref,
			status,
			word.Tier.String(),
			fmt.Sprintf("%d", WordEdits(word)),
		})
	}
	for _, line := range formatTable(headers, rows, map[int]bool{4: true}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// RenderSummary prints the metrics of an attempt.
func RenderSummary(w io.Writer, res dictation.AttemptResult, m Metrics) error {
	if len(res.Unmatched) > 0 {
		if _, err := fmt.Fprintf(w, "Unmatched: %s\n", strings.Join(res.Unmatched, " ")); err != nil {
			return err
		}
	}
	if _, err := fmt.Fprintf(w, "Words: %d/%d correct\n", m.CorrectWords, res.ReferenceWordCount); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Accuracy: %.2f%%\n", m.Accuracy*100); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "Score: %d\n", m.Score); err != nil {
		return err
	}
	verdict := "no"
	if res.AllCorrect {
		verdict = "yes"
	}
	if _, err := fmt.Fprintf(w, "All correct: %s\n", verdict); err != nil {
		return err
	}
	return nil
}
