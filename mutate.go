package textview

import (
	"slices"
	"unicode/utf8"

	"github.com/dshills/textview/storage"
)

// edit is the single copy-on-write decision point. Every mutating operation
// funnels through it.
//
// When the handle grants exclusive access and the view starts at the
// buffer's beginning, f edits the buffer in place and the window is widened
// or narrowed to the result. Otherwise the visible window is copied into a
// fresh buffer of the same backend, f edits the copy, and the copy becomes
// the new handle. Views sharing the old handle never observe the edit.
func (t *Text) edit(f func([]byte) []byte) {
	if t.h != nil && t.start == 0 {
		if buf := t.h.Acquire(); buf != nil {
			*buf = f((*buf)[:t.end])
			t.end = len(*buf)
			return
		}
	}
	fresh := f(slices.Clone(t.viewBytes()))
	t.h = t.newHandle(fresh)
	t.start = 0
	t.end = len(fresh)
}

// newHandle materializes a fresh buffer under the same ownership policy as
// the current handle. A zero-value text falls back to the shared backend.
func (t *Text) newHandle(buf []byte) storage.Handle {
	if t.h != nil {
		return t.h.New(buf)
	}
	return storage.NewShared(buf)
}

// Push appends a single rune.
func (t *Text) Push(r rune) {
	t.edit(func(b []byte) []byte {
		return utf8.AppendRune(b, r)
	})
}

// PushStr appends s.
func (t *Text) PushStr(s string) {
	if len(s) == 0 {
		return
	}
	t.edit(func(b []byte) []byte {
		return append(b, s...)
	})
}

// Insert inserts r at the given byte index. The index must be within
// bounds and on a code-point boundary; on error the text is unmodified.
// O(n): bytes after the index shift.
func (t *Text) Insert(index int, r rune) error {
	return t.InsertStr(index, string(r))
}

// InsertStr inserts s at the given byte index. The index must be within
// bounds and on a code-point boundary; on error the text is unmodified.
// O(n): bytes after the index shift.
func (t *Text) InsertStr(index int, s string) error {
	if index < 0 || index > t.Len() {
		return ErrStartOutOfBounds
	}
	if !boundaryAt(t.viewBytes(), index) {
		return ErrStartNotAligned
	}
	if len(s) == 0 {
		return nil
	}
	t.edit(func(b []byte) []byte {
		return slices.Insert(b, index, stringToBytes(s)...)
	})
	return nil
}

// Truncate shortens the text to length bytes. Longer lengths are a no-op.
// The length must land on a code-point boundary; on error the text is
// unmodified. Shared views only narrow their window; an exclusively owned
// whole-buffer view truncates the backing buffer too. Never copies.
func (t *Text) Truncate(length int) error {
	if length < 0 {
		return ErrEndBeforeStart
	}
	if length >= t.Len() {
		return nil
	}
	if !boundaryAt(t.viewBytes(), length) {
		return ErrEndNotAligned
	}
	abs := t.start + length
	if t.h != nil {
		if buf := t.h.Acquire(); buf != nil {
			*buf = (*buf)[:abs]
		}
	}
	t.end = abs
	return nil
}

// Clear removes all visible text. Exclusively owned buffers are emptied in
// place so their capacity is kept; shared views just narrow their window.
func (t *Text) Clear() {
	if t.h != nil {
		if buf := t.h.Acquire(); buf != nil {
			*buf = (*buf)[:0]
		}
	}
	t.start, t.end = 0, 0
}

// IntoBytes releases the visible text as an owned byte buffer. When the
// handle is exclusively owned and the view starts at the buffer's
// beginning, the backing buffer is truncated and handed over without
// copying; otherwise the visible window is copied. The text must not be
// used after calling IntoBytes.
func (t Text) IntoBytes() []byte {
	if t.h == nil {
		return nil
	}
	if t.start == 0 {
		if buf := t.h.Acquire(); buf != nil {
			return (*buf)[:t.end]
		}
	}
	return slices.Clone(t.viewBytes())
}

// IntoString releases the visible text as a string, zero-copy under the
// same conditions as IntoBytes. The text must not be used afterwards.
func (t Text) IntoString() string {
	return bytesToString(t.IntoBytes())
}
