// Package morse holds the Morse symbol table, the input buffer and the decoder.
package morse

import (
	"strings"
	"unicode"
)

const (
	// Dot is a short element.
	Dot = '.'
	// Dash is a long element.
	Dash = '-'
	// LetterSep separates letters within a word.
	LetterSep = '/'
	// WordSep separates words.
	WordSep = ' '
)

// Placeholder is emitted for an element group that has no table entry.
const Placeholder = '�'

const (
	letterOrder = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digitOrder  = "1234567890"
)

var codeToRune = map[string]rune{
	".-":    'A',
	"-...":  'B',
	"-.-.":  'C',
	"-..":   'D',
	".":     'E',
	"..-.":  'F',
	"--.":   'G',
	"....":  'H',
	"..":    'I',
	".---":  'J',
	"-.-":   'K',
	".-..":  'L',
	"--":    'M',
	"-.":    'N',
	"---":   'O',
	".--.":  'P',
	"--.-":  'Q',
	".-.":   'R',
	"...":   'S',
	"-":     'T',
	"..-":   'U',
	"...-":  'V',
	".--":   'W',
	"-..-":  'X',
	"-.--":  'Y',
	"--..":  'Z',
	".----": '1',
	"..---": '2',
	"...--": '3',
	"....-": '4',
	".....": '5',
	"-....": '6',
	"--...": '7',
	"---..": '8',
	"----.": '9',
	"-----": '0',
}

var runeToCode = invert(codeToRune)

func invert(m map[string]rune) map[rune]string {
	out := make(map[rune]string, len(m))
	for code, r := range m {
		out[r] = code
	}
	return out
}

// Entry is one row of the symbol table.
type Entry struct {
	Char rune
	Code string
}

// Lookup returns the character for a dot/dash group.
func Lookup(code string) (rune, bool) {
	r, ok := codeToRune[code]
	return r, ok
}

// Encode returns the dot/dash group for a character. Letters match in either case.
func Encode(r rune) (string, bool) {
	code, ok := runeToCode[unicode.ToUpper(r)]
	return code, ok
}

// Encodable reports whether every character of word has a table entry.
func Encodable(word string) bool {
	if word == "" {
		return false
	}
	for _, r := range word {
		if _, ok := Encode(r); !ok {
			return false
		}
	}
	return true
}

// EncodeWord returns the buffer that keys word, letters joined by LetterSep.
// Characters without a table entry are skipped.
func EncodeWord(word string) string {
	codes := make([]string, 0, len(word))
	for _, r := range word {
		if code, ok := Encode(r); ok {
			codes = append(codes, code)
		}
	}
	return strings.Join(codes, string(LetterSep))
}

// Letters returns the letter entries in alphabetical order.
func Letters() []Entry {
	return entries(letterOrder)
}

// Digits returns the digit entries, 1 through 9 then 0.
func Digits() []Entry {
	return entries(digitOrder)
}

func entries(order string) []Entry {
	out := make([]Entry, 0, len(order))
	for _, r := range order {
		out = append(out, Entry{Char: r, Code: runeToCode[r]})
	}
	return out
}
