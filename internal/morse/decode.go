package morse

import "strings"

// Decode turns a raw buffer into text. Words are split on WordSep and letters
// on LetterSep; empty groups are dropped. Groups without a table entry decode
// to Placeholder.
func Decode(buffer string) string {
	words := splitNonEmpty(buffer, WordSep)
	decoded := make([]string, 0, len(words))
	for _, word := range words {
		var b strings.Builder
		for _, letter := range splitNonEmpty(word, LetterSep) {
			if r, ok := Lookup(letter); ok {
				b.WriteRune(r)
			} else {
				b.WriteRune(Placeholder)
			}
		}
		if b.Len() > 0 {
			decoded = append(decoded, b.String())
		}
	}
	return strings.TrimSpace(strings.Join(decoded, " "))
}

func splitNonEmpty(s string, sep rune) []string {
	return strings.FieldsFunc(s, func(r rune) bool { return r == sep })
}
