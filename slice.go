package textview

import "fmt"

// TrySlice returns a view of the byte range [start, end) of the visible
// text. The new view shares the backing buffer; no text is copied.
//
// Validation order is fixed: start within bounds, end not before start, end
// within bounds, start on a code-point boundary, end on a code-point
// boundary. The first failing check determines the returned error.
func (t Text) TrySlice(start, end int) (Text, error) {
	n := t.Len()
	switch {
	case start < 0 || start > n:
		return Text{}, ErrStartOutOfBounds
	case end < start:
		return Text{}, ErrEndBeforeStart
	case end > n:
		return Text{}, ErrEndOutOfBounds
	}
	b := t.viewBytes()
	if !boundaryAt(b, start) {
		return Text{}, ErrStartNotAligned
	}
	if !boundaryAt(b, end) {
		return Text{}, ErrEndNotAligned
	}
	if t.h == nil {
		return Text{}, nil
	}
	return Text{h: t.h.Clone(), start: t.start + start, end: t.start + end}, nil
}

// Slice is like TrySlice but panics on an invalid range. Use it only with
// ranges validated beforehand; an invalid range is a programmer error.
func (t Text) Slice(start, end int) Text {
	s, err := t.TrySlice(start, end)
	if err != nil {
		panic(fmt.Sprintf("textview: Slice(%d, %d) of text with length %d: %v", start, end, t.Len(), err))
	}
	return s
}

// TrySplitOff truncates the text to [0, position) and returns a new view of
// [position, len). Both views share the original buffer; the ranges are
// disjoint and no bytes move. Position must be within bounds and on a
// code-point boundary; it is validated as the start of the returned suffix.
// On error the receiver is unmodified.
func (t *Text) TrySplitOff(position int) (Text, error) {
	if position < 0 || position > t.Len() {
		return Text{}, ErrStartOutOfBounds
	}
	if !boundaryAt(t.viewBytes(), position) {
		return Text{}, ErrStartNotAligned
	}
	if t.h == nil {
		return Text{}, nil
	}
	abs := t.start + position
	rest := Text{h: t.h.Clone(), start: abs, end: t.end}
	t.end = abs
	return rest, nil
}

// SplitOff is like TrySplitOff but panics on an invalid position.
func (t *Text) SplitOff(position int) Text {
	rest, err := t.TrySplitOff(position)
	if err != nil {
		panic(fmt.Sprintf("textview: SplitOff(%d) of text with length %d: %v", position, t.Len(), err))
	}
	return rest
}
