package textview

import (
	"strings"
	"unicode/utf8"
)

// Builder accumulates text fragments into a Text. Every write funnels
// through the same copy-on-write append as PushStr, so the builder's buffer
// is grown in place while it remains unshared. The zero value is ready to
// use.
type Builder struct {
	text Text
}

// NewBuilder creates a builder. Options select the storage backend of the
// built text.
func NewBuilder(opts ...Option) *Builder {
	return &Builder{text: WithCapacity(0, opts...)}
}

// WriteString appends s. It implements io.StringWriter and never returns an
// error.
func (b *Builder) WriteString(s string) (int, error) {
	b.text.PushStr(s)
	return len(s), nil
}

// WriteRune appends a single rune.
func (b *Builder) WriteRune(r rune) (int, error) {
	b.text.Push(r)
	return utf8.RuneLen(r), nil
}

// Write appends p, which must be well-formed UTF-8 on its own: a rune split
// across Write calls is rejected. It implements io.Writer.
func (b *Builder) Write(p []byte) (int, error) {
	if i := invalidByteOffset(p); i >= 0 {
		return 0, &InvalidUTF8Error{Offset: i}
	}
	b.text.PushStr(bytesToString(p))
	return len(p), nil
}

// Len returns the number of bytes accumulated so far.
func (b *Builder) Len() int {
	return b.text.Len()
}

// Reset clears the builder for reuse, discarding the accumulated text.
func (b *Builder) Reset() {
	b.text = Text{}
}

// Build returns the accumulated text and resets the builder. Ownership of
// the buffer transfers to the returned text, so building is zero-copy.
func (b *Builder) Build() Text {
	out := b.text
	b.text = Text{}
	return out
}

// Collect builds a text from a sequence of fragments.
func Collect(parts ...string) Text {
	var b Builder
	for _, p := range parts {
		b.text.PushStr(p)
	}
	return b.Build()
}

// Join concatenates the visible content of parts with sep between them.
// The result is a fresh text; the parts are unchanged.
func Join(parts []Text, sep string) Text {
	if len(parts) == 0 {
		return Text{}
	}
	if len(parts) == 1 {
		return parts[0].Clone()
	}

	size := len(sep) * (len(parts) - 1)
	for _, p := range parts {
		size += p.Len()
	}

	out := WithCapacity(size)
	for i, p := range parts {
		if i > 0 {
			out.PushStr(sep)
		}
		out.PushStr(p.String())
	}
	return out
}

// Repeat builds a text of s repeated n times.
func Repeat(s string, n int) Text {
	if n <= 0 || len(s) == 0 {
		return Text{}
	}
	return New(strings.Repeat(s, n))
}
