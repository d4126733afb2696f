package generator

import (
	"reflect"
	"sort"
	"testing"
)

func TestPickDistinctSubset(t *testing.T) {
	words := []string{"THE", "OF", "AND", "TO", "IN", "IS"}
	g := NewSeeded(7)
	for i := 0; i < 50; i++ {
		got := g.Pick(words, 4)
		if len(got) != 4 {
			t.Fatalf("expected 4 words, got %d", len(got))
		}
		seen := make(map[string]bool)
		for _, w := range got {
			if seen[w] {
				t.Fatalf("duplicate word %q in %q", w, got)
			}
			seen[w] = true
		}
	}
}

func TestPickCapsAtCorpusSize(t *testing.T) {
	words := []string{"A", "B", "C"}
	got := NewSeeded(1).Pick(words, 10)
	sorted := append([]string(nil), got...)
	sort.Strings(sorted)
	if !reflect.DeepEqual(sorted, words) {
		t.Fatalf("expected every word once, got %q", got)
	}
	if !reflect.DeepEqual(words, []string{"A", "B", "C"}) {
		t.Fatalf("input must not be modified")
	}
}

func TestPickEmpty(t *testing.T) {
	g := NewSeeded(1)
	if got := g.Pick(nil, 3); got != nil {
		t.Fatalf("expected nil for empty corpus, got %q", got)
	}
	if got := g.Pick([]string{"A"}, 0); got != nil {
		t.Fatalf("expected nil for zero count, got %q", got)
	}
}

func TestPickSameSeedSameOrder(t *testing.T) {
	words := []string{"THE", "OF", "AND", "TO", "IN", "IS", "IT", "BE"}
	a := NewSeeded(42).Pick(words, 5)
	b := NewSeeded(42).Pick(words, 5)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same seed should give same picks: %q vs %q", a, b)
	}
}
