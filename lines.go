package textview

import "bytes"

// LineIterator is a lazy, single-pass iterator over the lines of a text.
// Each line is a sub-view sharing the source's buffer; no text is copied.
type LineIterator struct {
	src  Text
	rest []byte // unscanned tail of the visible window
	line Text
	done bool
}

// Lines returns an iterator over the lines of the text.
//
// Lines are terminated by either a newline (`\n`) or a carriage return
// followed by a newline (`\r\n`); terminators are not included in the
// yielded lines. The final terminator is optional: a text ending with one
// yields the same lines as the same text without it.
func (t Text) Lines() *LineIterator {
	return &LineIterator{src: t, rest: t.viewBytes()}
}

// Next advances to the next line. It returns false when iteration is
// complete.
func (it *LineIterator) Next() bool {
	if it.done {
		return false
	}

	var raw []byte
	if i := bytes.IndexByte(it.rest, '\n'); i >= 0 {
		raw = it.rest[:i]
		it.rest = it.rest[i+1:]
		if len(it.rest) == 0 {
			// Trailing terminator: no empty final line.
			it.done = true
		}
		if n := len(raw); n > 0 && raw[n-1] == '\r' {
			raw = raw[:n-1]
		}
	} else {
		if len(it.rest) == 0 {
			it.done = true
			return false
		}
		raw = it.rest
		it.rest = nil
		it.done = true
	}

	// raw is derived from the visible window, so reattachment against the
	// whole buffer cannot miss.
	line, ok := it.src.reattach(raw)
	if !ok {
		it.done = true
		return false
	}
	it.line = line
	return true
}

// Text returns the current line.
func (it *LineIterator) Text() Text {
	return it.line
}

// CollectLines drains the iterator into a slice. Convenient for short
// texts; prefer Next for streaming over large ones.
func (it *LineIterator) CollectLines() []Text {
	var out []Text
	for it.Next() {
		out = append(out, it.Text())
	}
	return out
}
