// Package generator picks the target words for a session.
package generator

import (
	"math/rand"
	"time"
)

// Generator produces randomized word selections.
type Generator struct {
	rnd *rand.Rand
}

// New returns a Generator seeded with the current time.
func New() *Generator {
	return NewSeeded(time.Now().UnixNano())
}

// NewSeeded returns a Generator with a fixed seed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rnd: rand.New(rand.NewSource(seed))}
}

// Pick returns up to count distinct entries of words in random order. The
// input slice is not modified.
func (g *Generator) Pick(words []string, count int) []string {
	if count <= 0 || len(words) == 0 {
		return nil
	}
	if count > len(words) {
		count = len(words)
	}
	result := make([]string, 0, count)
	for _, idx := range g.rnd.Perm(len(words))[:count] {
		result = append(result, words[idx])
	}
	return result
}
