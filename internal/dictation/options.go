package dictation

import (
	"fmt"
	"strings"
)

// TieBreak decides which of several equally long candidates wins in the
// substring and distance tiers.
type TieBreak int

// Tie-break policies. TieLast is the default.
const (
	TieLast TieBreak = iota
	TieFirst
)

func (t TieBreak) String() string {
	if t == TieFirst {
		return "first"
	}
	return "last"
}

// ParseTieBreak parses "first" or "last".
func ParseTieBreak(s string) (TieBreak, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "last":
		return TieLast, nil
	case "first":
		return TieFirst, nil
	default:
		return TieLast, fmt.Errorf("unknown tie-break %q (want first or last)", s)
	}
}

// Option configures Compare and MatchWords.
type Option func(*options)

type options struct {
	tieBreak TieBreak
}

// WithTieBreak sets the tie-break policy for equally long candidates.
func WithTieBreak(t TieBreak) Option {
	return func(o *options) {
		o.tieBreak = t
	}
}

func buildOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
