package storage

// localBuf is the plainly counted cell behind Local handles.
type localBuf struct {
	refs int64
	buf  []byte
}

// local is the non-atomically share-counted backend. It avoids atomic
// operations entirely, so handles must stay confined to one goroutine:
// cloning or reading concurrently is a data race the caller must prevent.
type local struct {
	cell *localBuf
}

// NewLocal wraps buf as a plainly share-counted handle for single-goroutine
// use.
func NewLocal(buf []byte) Handle {
	return local{cell: &localBuf{refs: 1, buf: buf}}
}

func (h local) Bytes() []byte {
	return h.cell.buf
}

func (h local) Acquire() *[]byte {
	if h.cell.refs != 1 {
		return nil
	}
	return &h.cell.buf
}

func (h local) Clone() Handle {
	h.cell.refs++
	return local{cell: h.cell}
}

func (h local) New(buf []byte) Handle {
	return NewLocal(buf)
}
