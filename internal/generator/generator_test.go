package generator

import (
	"sort"
	"testing"
)

func TestOrderSequential(t *testing.T) {
	order := New().Order(4, false)
	for i, idx := range order {
		if idx != i {
			t.Fatalf("expected sequential order, got %v", order)
		}
	}
}

func TestOrderShuffleIsPermutation(t *testing.T) {
	order := NewWithSeed(42).Order(10, true)
	if len(order) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(order))
	}
	sorted := append([]int(nil), order...)
	sort.Ints(sorted)
	for i, idx := range sorted {
		if idx != i {
			t.Fatalf("expected permutation of 0..9, got %v", order)
		}
	}
}

func TestOrderShuffleSeeded(t *testing.T) {
	a := NewWithSeed(7).Order(8, true)
	b := NewWithSeed(7).Order(8, true)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("expected same order for same seed: %v vs %v", a, b)
		}
	}
}

func TestOrderEmpty(t *testing.T) {
	if got := New().Order(0, true); got != nil {
		t.Fatalf("expected nil order, got %v", got)
	}
}
