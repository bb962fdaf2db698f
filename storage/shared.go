package storage

import "sync/atomic"

// sharedBuf is the share-counted cell behind Shared handles.
type sharedBuf struct {
	refs atomic.Int64
	buf  []byte
}

// shared is the atomically share-counted backend. Handles may be cloned,
// read, and discarded concurrently from multiple goroutines. Mutation of the
// same logical text from multiple goroutines is not supported by any backend.
type shared struct {
	cell *sharedBuf
}

// NewShared wraps buf as an atomically share-counted handle. This is the
// default backend for text views.
func NewShared(buf []byte) Handle {
	cell := &sharedBuf{buf: buf}
	cell.refs.Store(1)
	return shared{cell: cell}
}

func (h shared) Bytes() []byte {
	return h.cell.buf
}

// Acquire returns the buffer only while the share count is exactly one.
// Clones are only ever created through an existing handle, so a count of
// one observed by the sole holder cannot race with a concurrent Clone.
func (h shared) Acquire() *[]byte {
	if h.cell.refs.Load() != 1 {
		return nil
	}
	return &h.cell.buf
}

func (h shared) Clone() Handle {
	h.cell.refs.Add(1)
	return shared{cell: h.cell}
}

func (h shared) New(buf []byte) Handle {
	return NewShared(buf)
}
