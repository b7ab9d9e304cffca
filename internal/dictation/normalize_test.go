package dictation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want []string
	}{
		{"lowercases and strips", "The Cat, sat.", []string{"the", "cat", "sat"}},
		{"apostrophe deleted not spaced", "don't", []string{"dont"}},
		{"brackets and quotes", `"Hello" [big] {wide} (world)!`, []string{"hello", "big", "wide", "world"}},
		{"whitespace runs", "  a \t b\n\nc  ", []string{"a", "b", "c"}},
		{"hyphen kept", "well-known", []string{"well-known"}},
		{"punctuation only token vanishes", "wait ... what?!", []string{"wait", "what"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalizeEmpty(t *testing.T) {
	assert.Empty(t, Normalize(""))
	assert.Empty(t, Normalize("   \t"))
	assert.Empty(t, Normalize("?!."))
}
