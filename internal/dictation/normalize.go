package dictation

import "strings"

// PunctSet lists the characters removed by Normalize.
const PunctSet = ".,!?;:'\"()[]{}"

// Normalize lowercases s, deletes PunctSet characters and splits on whitespace.
// Punctuation is removed without inserting a space, so "don't" becomes "dont".
func Normalize(s string) []string {
	s = strings.ToLower(s)
	s = strings.Map(func(r rune) rune {
		if strings.ContainsRune(PunctSet, r) {
			return -1
		}
		return r
	}, s)
	return strings.Fields(s)
}
