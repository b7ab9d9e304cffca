// Package model defines shared data structures.
package model

import "time"

// Config defines practice settings.
type Config struct {
	Set      string
	Shuffle  bool
	HintStep int
	TieBreak string
	LogLevel string
}

// SentenceSet is a named, ordered list of reference sentences.
type SentenceSet struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Sentences []string
}

// SetSummary describes a stored set without its sentences.
type SetSummary struct {
	ID        int64
	Name      string
	CreatedAt time.Time
	Count     int
}
