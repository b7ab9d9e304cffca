package stats

import "testing"

func TestFormatTableAlignsColumns(t *testing.T) {
	headers := []string{"User", "Reference", "Edits"}
	rows := [][]string{
		{"bat", "cat", "1"},
		{"receive", "recieve", "12"},
	}
	rightAlign := map[int]bool{2: true}

	lines := formatTable(headers, rows, rightAlign)
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	if lines[0] != "User    Reference Edits" {
		t.Fatalf("unexpected header line: %q", lines[0])
	}
	if lines[1] != "bat     cat           1" {
		t.Fatalf("unexpected row line: %q", lines[1])
	}
	if lines[2] != "receive recieve      12" {
		t.Fatalf("unexpected row line: %q", lines[2])
	}
}

func TestDisplayWidthWide(t *testing.T) {
	if got := displayWidth("日本"); got != 4 {
		t.Fatalf("expected width 4, got %d", got)
	}
}
