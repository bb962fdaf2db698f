package textview

import "github.com/dshills/textview/internal/span"

// reattach wraps sub as a view sharing t's handle, if sub's address range
// lies within t's whole backing buffer. Containment is tested against the
// full buffer, not just the visible window, so sub-slices of sibling views
// over the same buffer reattach as well.
func (t Text) reattach(sub []byte) (Text, bool) {
	if t.h == nil {
		return Text{}, false
	}
	start, end, ok := span.Offset(t.h.Bytes(), sub)
	if !ok {
		return Text{}, false
	}
	return Text{h: t.h.Clone(), start: start, end: end}, true
}

// TrySliceRef re-wraps b as a zero-copy view sharing this text's buffer.
// b must have been obtained from this text's backing buffer, for example a
// sub-slice of Bytes; the containment test is pure address arithmetic and
// never compares content. When b does not originate from the buffer the
// result is a clean miss (false), not an error.
//
// Unrelated memory that happens to sit adjacent to the buffer can
// theoretically pass the address test; only pass slices derived from this
// text.
func (t Text) TrySliceRef(b []byte) (Text, bool) {
	return t.reattach(b)
}

// SliceRef is like TrySliceRef but panics when b does not originate from
// this text's buffer.
func (t Text) SliceRef(b []byte) Text {
	sub, ok := t.TrySliceRef(b)
	if !ok {
		panic("textview: SliceRef of slice not derived from this text's buffer")
	}
	return sub
}

// TryStrRef is TrySliceRef for a string obtained from this text, for
// example a substring of String.
func (t Text) TryStrRef(s string) (Text, bool) {
	return t.reattach(stringToBytes(s))
}

// StrRef is like TryStrRef but panics when s does not originate from this
// text's buffer.
func (t Text) StrRef(s string) Text {
	sub, ok := t.TryStrRef(s)
	if !ok {
		panic("textview: StrRef of string not derived from this text's buffer")
	}
	return sub
}
