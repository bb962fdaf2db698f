package textview

import (
	"bytes"
	"slices"
	"strconv"
)

// Equality, ordering, and rendering are defined purely on the visible
// bytes. Which handle backs a text, and at which offsets, is never
// observable through these methods.

// Equal reports whether two texts have identical visible content. Texts
// over unrelated buffers compare equal when their content matches.
func (t Text) Equal(other Text) bool {
	return bytes.Equal(t.viewBytes(), other.viewBytes())
}

// EqualString reports whether the visible content equals s.
func (t Text) EqualString(s string) bool {
	return t.String() == s
}

// Compare lexicographically compares the visible bytes of two texts,
// returning -1, 0, or +1 in the manner of bytes.Compare.
func (t Text) Compare(other Text) int {
	return bytes.Compare(t.viewBytes(), other.viewBytes())
}

// GoString returns a quoted form of the visible text for %#v.
func (t Text) GoString() string {
	return strconv.Quote(t.String())
}

// MarshalText implements encoding.TextMarshaler by copying the visible
// text.
func (t Text) MarshalText() ([]byte, error) {
	return slices.Clone(t.viewBytes()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It always succeeds by
// copying; invalid UTF-8 sequences are replaced with the Unicode
// replacement character. The previous content and handle are discarded.
func (t *Text) UnmarshalText(b []byte) error {
	*t = FromBytesLossy(slices.Clone(b))
	return nil
}
