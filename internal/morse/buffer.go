package morse

// Buffer accumulates keyed elements and separators for the current word.
// It only ever holds Dot, Dash, LetterSep and WordSep.
type Buffer struct {
	elems []byte
}

// Valid reports whether r may be stored in a Buffer.
func Valid(r rune) bool {
	switch r {
	case Dot, Dash, LetterSep, WordSep:
		return true
	default:
		return false
	}
}

// Append adds r and reports whether the buffer changed.
func (b *Buffer) Append(r rune) bool {
	if !Valid(r) {
		return false
	}
	b.elems = append(b.elems, byte(r))
	return true
}

// Backspace drops the last element. It is a no-op on an empty buffer.
func (b *Buffer) Backspace() bool {
	if len(b.elems) == 0 {
		return false
	}
	b.elems = b.elems[:len(b.elems)-1]
	return true
}

// Reset empties the buffer.
func (b *Buffer) Reset() {
	b.elems = b.elems[:0]
}

// Len returns the number of stored elements.
func (b *Buffer) Len() int {
	return len(b.elems)
}

// String returns the raw buffer.
func (b *Buffer) String() string {
	return string(b.elems)
}

// Decode returns the decoded text of the buffer.
func (b *Buffer) Decode() string {
	return Decode(b.String())
}
