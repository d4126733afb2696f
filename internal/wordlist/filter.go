package wordlist

import (
	"strings"

	"github.com/samber/lo"

	"github.com/verte-zerg/tuimorse/internal/morse"
)

// FilterFunc returns true when a word should be kept.
type FilterFunc func(string) bool

// Keyable keeps words made only of characters in the Morse table.
func Keyable(word string) bool {
	return morse.Encodable(word)
}

// Normalize uppercases and trims words, then drops duplicates and words that
// cannot be keyed. Order of first appearance is kept.
func Normalize(words []string) []string {
	return Apply(lo.Map(words, func(w string, _ int) string {
		return strings.ToUpper(strings.TrimSpace(w))
	}), Keyable)
}

// Apply keeps the unique words accepted by filter.
func Apply(words []string, filter FilterFunc) []string {
	return lo.Uniq(lo.Filter(words, func(w string, _ int) bool {
		return filter(w)
	}))
}
