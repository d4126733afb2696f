package morse

import (
	"strings"
	"testing"
)

func TestDecodeSingleLetters(t *testing.T) {
	for code, want := range codeToRune {
		if got := Decode(code); got != string(want) {
			t.Fatalf("Decode(%q) = %q, want %q", code, got, string(want))
		}
	}
}

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		buffer string
		want   string
	}{
		{"empty", "", ""},
		{"letters in one word", ".-/-...", "AB"},
		{"two words", ".- -...", "A B"},
		{"cat", "-.-./.-/-", "CAT"},
		{"standard table reading", ".-./-.-./-", "RCT"},
		{"repeated separators", "//.-//-...  -.-.", "AB C"},
		{"trailing separators", ".-/ ", "A"},
		{"leading separators", "  /.-", "A"},
		{"only separators", "/ / ", ""},
		{"digits", ".----/-----", "10"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Decode(tt.buffer); got != tt.want {
				t.Fatalf("Decode(%q) = %q, want %q", tt.buffer, got, tt.want)
			}
		})
	}
}

func TestDecodeUnknownGroup(t *testing.T) {
	got := Decode("......")
	if got == "" {
		t.Fatalf("expected placeholder output, got empty string")
	}
	if !strings.ContainsRune(got, Placeholder) {
		t.Fatalf("expected placeholder in %q", got)
	}

	got = Decode(".-/....../-")
	if got != "A"+string(Placeholder)+"T" {
		t.Fatalf("unexpected decode of mixed buffer: %q", got)
	}
}

func TestDecodeIsIdempotent(t *testing.T) {
	for _, buffer := range []string{"", ".-/-... -.-.", "......", "-/ /-"} {
		first := Decode(buffer)
		second := Decode(buffer)
		if first != second {
			t.Fatalf("Decode(%q) not stable: %q vs %q", buffer, first, second)
		}
	}
}

func TestTableIsBijection(t *testing.T) {
	if len(codeToRune) != 36 {
		t.Fatalf("expected 36 entries, got %d", len(codeToRune))
	}
	if len(runeToCode) != len(codeToRune) {
		t.Fatalf("duplicate characters in table")
	}
	for code, r := range codeToRune {
		back, ok := Encode(r)
		if !ok || back != code {
			t.Fatalf("Encode(%q) = %q, %v; want %q", r, back, ok, code)
		}
	}
}

func TestEncodeIsCaseInsensitive(t *testing.T) {
	lower, ok := Encode('c')
	if !ok || lower != "-.-." {
		t.Fatalf("Encode('c') = %q, %v", lower, ok)
	}
	if _, ok := Encode('é'); ok {
		t.Fatalf("expected no entry for é")
	}
}

func TestEncodableAndEncodeWord(t *testing.T) {
	if !Encodable("SOS") || !Encodable("r2d2") {
		t.Fatalf("expected plain words to be encodable")
	}
	for _, word := range []string{"", "DON'T", "ÉTÉ", "TWO WORDS"} {
		if Encodable(word) {
			t.Fatalf("expected %q to be rejected", word)
		}
	}
	if got := EncodeWord("CAT"); got != "-.-./.-/-" {
		t.Fatalf("EncodeWord(CAT) = %q", got)
	}
	if got := Decode(EncodeWord("HELLO")); got != "HELLO" {
		t.Fatalf("round trip through buffer gave %q", got)
	}
}

func TestLettersAndDigitsOrder(t *testing.T) {
	letters := Letters()
	if len(letters) != 26 || letters[0].Char != 'A' || letters[25].Char != 'Z' {
		t.Fatalf("unexpected letters: %v", letters)
	}
	digits := Digits()
	if len(digits) != 10 || digits[0].Char != '1' || digits[9].Char != '0' {
		t.Fatalf("unexpected digits: %v", digits)
	}
	if digits[9].Code != "-----" {
		t.Fatalf("unexpected code for 0: %q", digits[9].Code)
	}
}

func TestBuffer(t *testing.T) {
	var b Buffer
	if b.Backspace() {
		t.Fatalf("backspace on empty buffer reported a change")
	}
	if b.Len() != 0 || b.String() != "" {
		t.Fatalf("empty buffer changed: %q", b.String())
	}
	for _, r := range ".-/ " {
		if !b.Append(r) {
			t.Fatalf("Append(%q) rejected", r)
		}
	}
	if b.Append('x') {
		t.Fatalf("Append accepted an invalid element")
	}
	if b.String() != ".-/ " {
		t.Fatalf("unexpected buffer %q", b.String())
	}
	if !b.Backspace() || b.String() != ".-/" {
		t.Fatalf("backspace failed: %q", b.String())
	}
	if b.Decode() != "A" {
		t.Fatalf("unexpected decode %q", b.Decode())
	}
	b.Reset()
	if b.Len() != 0 {
		t.Fatalf("reset left %q", b.String())
	}
}
