// Package dictation scores a typed transcript against a reference sentence.
package dictation

import "fmt"

// CharStatus tags one aligned character position.
type CharStatus int

// Character statuses produced by Align.
const (
	CharCorrect CharStatus = iota
	CharIncorrect
	CharExtra
	CharMissing
)

var charStatusNames = [...]string{"correct", "incorrect", "extra", "missing"}

func (s CharStatus) String() string {
	if s < 0 || int(s) >= len(charStatusNames) {
		return fmt.Sprintf("CharStatus(%d)", int(s))
	}
	return charStatusNames[s]
}

// MarshalText implements encoding.TextMarshaler.
func (s CharStatus) MarshalText() ([]byte, error) {
	if s < 0 || int(s) >= len(charStatusNames) {
		return nil, fmt.Errorf("invalid char status %d", int(s))
	}
	return []byte(charStatusNames[s]), nil
}

// WordStatus tags one aligned word.
type WordStatus int

// Word statuses produced by MatchWords.
const (
	WordCorrect WordStatus = iota
	WordPartial
)

func (s WordStatus) String() string {
	switch s {
	case WordCorrect:
		return "correct"
	case WordPartial:
		return "partial"
	default:
		return fmt.Sprintf("WordStatus(%d)", int(s))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (s WordStatus) MarshalText() ([]byte, error) {
	switch s {
	case WordCorrect, WordPartial:
		return []byte(s.String()), nil
	default:
		return nil, fmt.Errorf("invalid word status %d", int(s))
	}
}

// MatchTier records which fallback picked the reference word.
type MatchTier int

// Match tiers in the order they are tried.
const (
	TierPrefix MatchTier = iota
	TierSubstring
	TierDistance
	TierNone
)

func (t MatchTier) String() string {
	switch t {
	case TierPrefix:
		return "prefix"
	case TierSubstring:
		return "substring"
	case TierDistance:
		return "distance"
	case TierNone:
		return "none"
	default:
		return fmt.Sprintf("MatchTier(%d)", int(t))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (t MatchTier) MarshalText() ([]byte, error) {
	if t < TierPrefix || t > TierNone {
		return nil, fmt.Errorf("invalid match tier %d", int(t))
	}
	return []byte(t.String()), nil
}

// Placeholder is the Char value of a CharMissing entry.
const Placeholder = ""

// CharacterDiagnostic is one position of a character alignment.
// CorrectChar is set only for CharIncorrect and CharMissing.
type CharacterDiagnostic struct {
	Char        string     `json:"char"`
	Status      CharStatus `json:"status"`
	CorrectChar string     `json:"correctChar,omitempty"`
}

// WordDiagnostic is the alignment of one user word with its matched reference word.
type WordDiagnostic struct {
	UserWord    string                `json:"userWord"`
	CorrectWord string                `json:"correctWord"`
	Status      WordStatus            `json:"status"`
	Tier        MatchTier             `json:"tier"`
	SoundsAlike bool                  `json:"soundsAlike,omitempty"`
	Characters  []CharacterDiagnostic `json:"characters"`
}

// AttemptResult is the outcome of comparing one transcript with its reference.
type AttemptResult struct {
	AllCorrect         bool             `json:"allCorrect"`
	Words              []WordDiagnostic `json:"words"`
	Unmatched          []string         `json:"unmatched"`
	ReferenceWordCount int              `json:"referenceWordCount"`
	UserText           string           `json:"userText"`
	CorrectText        string           `json:"correctText"`
}
