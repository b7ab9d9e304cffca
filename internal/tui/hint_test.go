package tui

import "testing"

func TestMaskHint(t *testing.T) {
	tests := []struct {
		revealed int
		want     string
	}{
		{0, "___ ____ ___"},
		{1, "The ____ ___"},
		{2, "The cat, ___"},
		{5, "The cat, sat"},
	}
	for _, tt := range tests {
		if got := maskHint("The  cat, sat", tt.revealed); got != tt.want {
			t.Fatalf("maskHint(%d) = %q, want %q", tt.revealed, got, tt.want)
		}
	}
}

func TestHintWordCount(t *testing.T) {
	if got := hintWordCount("  one two  three "); got != 3 {
		t.Fatalf("expected 3 words, got %d", got)
	}
}
