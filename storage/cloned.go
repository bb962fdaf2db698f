package storage

import "slices"

// cloned is the always-duplicate backend: strict value semantics with no
// sharing machinery at all. Clone deep-copies, and Acquire swaps in a fresh
// copy of the buffer before handing it out. That last point is a documented
// relaxation of the "no copy on exclusive access" expectation the other
// backends meet.
type cloned struct {
	buf *[]byte
}

// NewCloned wraps buf as an always-duplicate handle.
func NewCloned(buf []byte) Handle {
	return cloned{buf: &buf}
}

func (h cloned) Bytes() []byte {
	return *h.buf
}

func (h cloned) Acquire() *[]byte {
	*h.buf = slices.Clone(*h.buf)
	return h.buf
}

func (h cloned) Clone() Handle {
	return NewCloned(slices.Clone(*h.buf))
}

func (h cloned) New(buf []byte) Handle {
	return NewCloned(buf)
}
