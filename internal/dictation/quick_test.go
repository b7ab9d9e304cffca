package dictation

import (
	"math/rand"
	"reflect"
	"strings"
)

const testAlphabet = "abcde"

// shortWord generates short strings over a small alphabet so random pairs share characters.
type shortWord string

func (shortWord) Generate(r *rand.Rand, _ int) reflect.Value {
	b := make([]byte, r.Intn(8))
	for i := range b {
		b[i] = testAlphabet[r.Intn(len(testAlphabet))]
	}
	return reflect.ValueOf(shortWord(b))
}

var testVocabulary = []string{"the", "cat", "sat", "on", "a", "mat", "The", "Cat,", "mat.", "don't", "(on)", "catalog", "at"}

// sentence generates up to eight words drawn from testVocabulary.
type sentence string

func (sentence) Generate(r *rand.Rand, _ int) reflect.Value {
	words := make([]string, r.Intn(9))
	for i := range words {
		words[i] = testVocabulary[r.Intn(len(testVocabulary))]
	}
	return reflect.ValueOf(sentence(strings.Join(words, " ")))
}
