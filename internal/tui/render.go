// Package tui provides the Bubble Tea dictation interface and diagnostic rendering.
package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/verte-zerg/dictee/internal/dictation"
)

const placeholder = "_"

var (
	correctStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	extraStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Strikethrough(true)
	missingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C")).Underline(true)
	pendingStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	successStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A")).Bold(true)
	footerStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
)

// RenderAttempt renders the per-character diagnostics of res with colours,
// wrapped at width columns (no wrapping when width <= 0). Missing characters
// show the omitted reference character.
func RenderAttempt(res dictation.AttemptResult, width int) string {
	return wrapStyledRunes(buildStyledRunes(res), width)
}

// RenderAttemptPlain renders res without colours as up to three rows: the typed
// characters, a marker row (^ incorrect, + extra, - missing) and the expected
// characters. The marker row is omitted when nothing is wrong and the expected
// row when no substituted or missing character exists.
func RenderAttemptPlain(res dictation.AttemptResult) string {
	var typed, marks, expected strings.Builder
	wrong := false
	for wi, word := range res.Words {
		if wi > 0 {
			typed.WriteByte(' ')
			marks.WriteByte(' ')
			expected.WriteByte(' ')
		}
		for _, c := range word.Characters {
			shown := c.Char
			if c.Status == dictation.CharMissing {
				shown = placeholder
			}
			width := max(runewidth.StringWidth(shown), runewidth.StringWidth(c.CorrectChar))
			typed.WriteString(runewidth.FillRight(shown, width))
			marks.WriteString(runewidth.FillRight(marker(c.Status), width))
			expected.WriteString(runewidth.FillRight(c.CorrectChar, width))
			if c.Status != dictation.CharCorrect {
				wrong = true
			}
		}
	}
	rows := []string{strings.TrimRight(typed.String(), " ")}
	if !wrong {
		return rows[0]
	}
	rows = append(rows, strings.TrimRight(marks.String(), " "))
	if exp := strings.TrimRight(expected.String(), " "); exp != "" {
		rows = append(rows, exp)
	}
	return strings.Join(rows, "\n")
}

func marker(status dictation.CharStatus) string {
	switch status {
	case dictation.CharIncorrect:
		return "^"
	case dictation.CharExtra:
		return "+"
	case dictation.CharMissing:
		return "-"
	default:
		return " "
	}
}

func styleFor(c dictation.CharacterDiagnostic) (string, lipgloss.Style) {
	switch c.Status {
	case dictation.CharIncorrect:
		return c.Char, incorrectStyle
	case dictation.CharExtra:
		return c.Char, extraStyle
	case dictation.CharMissing:
		return c.CorrectChar, missingStyle
	default:
		return c.Char, correctStyle
	}
}
