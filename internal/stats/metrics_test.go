package stats

import (
	"testing"

	"github.com/verte-zerg/dictee/internal/dictation"
)

func TestAttemptMetrics(t *testing.T) {
	tests := []struct {
		name string
		user string
		ref  string
		want Metrics
	}{
		{
			name: "exact",
			user: "the cat sat",
			ref:  "the cat sat",
			want: Metrics{CorrectWords: 3, CorrectChars: 9, Accuracy: 1, Score: 100},
		},
		{
			name: "missing letter and word",
			user: "the ct",
			ref:  "the cat sat",
			want: Metrics{CorrectWords: 1, PartialWords: 1, UnmatchedWords: 1, CorrectChars: 5, MissingChars: 1, Accuracy: 5.0 / 6.0, Score: 33},
		},
		{
			name: "both empty",
			want: Metrics{Accuracy: 1, Score: 100},
		},
		{
			name: "empty transcript",
			ref:  "a b",
			want: Metrics{UnmatchedWords: 2},
		},
		{
			name: "extra words",
			user: "a b c d",
			ref:  "a b",
			want: Metrics{CorrectWords: 2, PartialWords: 2, CorrectChars: 2, ExtraChars: 2, Accuracy: 0.5, Score: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := AttemptMetrics(dictation.Compare(tt.user, tt.ref))
			if got != tt.want {
				t.Fatalf("unexpected metrics:\n got %+v\nwant %+v", got, tt.want)
			}
		})
	}
}

func TestWordEdits(t *testing.T) {
	res := dictation.Compare("recieve", "receive")
	if len(res.Words) != 1 {
		t.Fatalf("expected 1 word, got %d", len(res.Words))
	}
	if got := WordEdits(res.Words[0]); got != 2 {
		t.Fatalf("expected 2 edits, got %d", got)
	}
}
