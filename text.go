package textview

import (
	"bytes"
	"unicode/utf8"

	"github.com/dshills/textview/storage"
)

// Text is a cheaply cloneable, cheaply sliceable UTF-8 text value.
//
// It pairs a storage handle with a byte-offset window into the handle's
// buffer. The window always starts and ends on UTF-8 code-point boundaries.
// The zero value is an empty text, ready to use.
type Text struct {
	h     storage.Handle // nil means empty
	start int
	end   int
}

// Option configures construction of a Text.
type Option func(*config)

type config struct {
	backend storage.Backend
}

// WithStorage selects the ownership backend for the new text's buffer and
// for any buffer the text later materializes during copy-on-write. The
// default is storage.NewShared.
func WithStorage(b storage.Backend) Option {
	return func(c *config) { c.backend = b }
}

func backendOf(opts []Option) storage.Backend {
	c := config{backend: storage.NewShared}
	for _, opt := range opts {
		opt(&c)
	}
	return c.backend
}

// adopt wraps buf without copying; the whole buffer is visible.
func adopt(buf []byte, opts []Option) Text {
	return Text{h: backendOf(opts)(buf), start: 0, end: len(buf)}
}

// New creates a text by copying s into a fresh buffer.
func New(s string, opts ...Option) Text {
	return adopt([]byte(s), opts)
}

// WithCapacity creates an empty text whose buffer has room for n bytes.
func WithCapacity(n int, opts ...Option) Text {
	return adopt(make([]byte, 0, n), opts)
}

// FromBytes adopts buf as a text without copying, after validating that it
// is well-formed UTF-8. On failure it returns an *InvalidUTF8Error carrying
// the byte offset of the first invalid sequence. The buffer is adopted on
// success; the caller must not reuse it.
func FromBytes(buf []byte, opts ...Option) (Text, error) {
	if i := invalidByteOffset(buf); i >= 0 {
		return Text{}, &InvalidUTF8Error{Offset: i}
	}
	return adopt(buf, opts), nil
}

// FromBytesLossy creates a text from buf, replacing any invalid UTF-8
// sequences with the Unicode replacement character. It never fails. Valid
// input is adopted without copying.
func FromBytesLossy(buf []byte, opts ...Option) Text {
	if !utf8.Valid(buf) {
		buf = bytes.ToValidUTF8(buf, []byte("�"))
	}
	return adopt(buf, opts)
}

// FromBytesUnchecked adopts buf without validating it. The caller asserts
// that buf is well-formed UTF-8; if it is not, reads return garbled text but
// memory safety is preserved.
func FromBytesUnchecked(buf []byte, opts ...Option) Text {
	return adopt(buf, opts)
}

// invalidByteOffset returns the byte offset of the first invalid UTF-8
// sequence in b, or -1 if b is well-formed.
func invalidByteOffset(b []byte) int {
	for i := 0; i < len(b); {
		r, size := utf8.DecodeRune(b[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

// viewBytes returns the visible window of the backing buffer, aliased.
func (t Text) viewBytes() []byte {
	if t.h == nil {
		return nil
	}
	return t.h.Bytes()[t.start:t.end]
}

// Len returns the length of the visible text in bytes.
func (t Text) Len() int {
	return t.end - t.start
}

// IsEmpty reports whether the visible text has length zero.
func (t Text) IsEmpty() bool {
	return t.start == t.end
}

// Bytes returns the visible text as a byte slice. The slice aliases the
// shared buffer and must not be modified.
func (t Text) Bytes() []byte {
	return t.viewBytes()
}

// String returns the visible text. The conversion is zero-copy; the result
// is valid for as long as the text (or any clone sharing its buffer) is
// reachable.
func (t Text) String() string {
	return bytesToString(t.viewBytes())
}

// Capacity returns the capacity of the backing buffer. It is informative
// only: after slicing or sharing, the capacity no longer relates to how
// much this view can grow without reallocating.
func (t Text) Capacity() int {
	if t.h == nil {
		return 0
	}
	return cap(t.h.Bytes())
}

// Clone returns a text with the same visible content, sharing the backing
// buffer. O(1) for sharing backends.
func (t Text) Clone() Text {
	if t.h == nil {
		return Text{}
	}
	return Text{h: t.h.Clone(), start: t.start, end: t.end}
}

// Handle returns a clone of the underlying storage handle. The handle's
// buffer may contain more text than this view; use String or Bytes for the
// visible content.
func (t Text) Handle() storage.Handle {
	if t.h == nil {
		return nil
	}
	return t.h.Clone()
}

// Offsets returns the view's start and end byte offsets within the backing
// buffer.
func (t Text) Offsets() (start, end int) {
	return t.start, t.end
}

// boundaryAt reports whether i is a UTF-8 code-point boundary in b.
// i must be within [0, len(b)].
func boundaryAt(b []byte, i int) bool {
	if i == 0 || i == len(b) {
		return true
	}
	return utf8.RuneStart(b[i])
}
