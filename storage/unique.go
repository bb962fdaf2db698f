package storage

import "slices"

// unique is the exclusively owned backend. Every handle owns its buffer
// outright, so exclusive access is always available and Clone must
// deep-copy to preserve value semantics.
type unique struct {
	buf *[]byte
}

// NewUnique wraps buf as an exclusively owned handle. Clone copies the
// buffer, so no sharing ever occurs.
func NewUnique(buf []byte) Handle {
	return unique{buf: &buf}
}

func (h unique) Bytes() []byte {
	return *h.buf
}

func (h unique) Acquire() *[]byte {
	return h.buf
}

func (h unique) Clone() Handle {
	return NewUnique(slices.Clone(*h.buf))
}

func (h unique) New(buf []byte) Handle {
	return NewUnique(buf)
}
