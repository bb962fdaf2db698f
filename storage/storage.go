// Package storage provides the ownership backends for textview buffers.
//
// A Handle wraps exactly one byte buffer and decides how that buffer is
// shared between the text views that reference it. The core text type never
// touches a buffer directly; it asks its handle for read access, and it asks
// for exclusive write access before mutating in place. The presence or
// absence of exclusive access is the single signal the copy-on-write policy
// branches on.
//
// Four backends are provided:
//
//   - Shared: atomically share-counted; handles may be cloned, read, and
//     discarded concurrently from multiple goroutines.
//   - Local: plainly counted; confined to a single goroutine.
//   - Unique: exclusively owned; Clone deep-copies the buffer.
//   - Cloned: value-semantic; every mutable access works on a fresh copy.
//
// A Backend is the type-level selection point. New ownership policies plug
// in here; no other package needs modification to add one.
//
// Go has no deterministic destruction, so share counts are never
// decremented: once a buffer has been cloned it is treated as shared for
// the rest of its life. The check is conservative; it can cost an extra
// copy, never an aliased mutation.
package storage

// Handle is the ownership wrapper around one byte buffer.
//
// Multiple handles may reference the same buffer (sharing backends) or each
// handle may own its buffer outright (value-semantic backends). Callers must
// not modify the slice returned by Bytes.
type Handle interface {
	// Bytes returns the backing buffer. Always available, read-only.
	Bytes() []byte

	// Acquire returns a pointer to the backing buffer for in-place
	// modification, or nil when this handle is not the sole reference.
	// For the Shared backend the exclusivity check is atomic with respect
	// to concurrent Clone calls on other handles.
	Acquire() *[]byte

	// Clone returns a handle referencing the same logical text. Sharing
	// backends bump a share count in O(1); value-semantic backends may
	// deep-copy, but observable text equality is preserved either way.
	Clone() Handle

	// New wraps buf as a fresh, uniquely owned handle using the same
	// ownership policy as the receiver.
	New(buf []byte) Handle
}

// Backend constructs a uniquely owned handle around buf. The buffer is
// adopted, not copied; the caller must not reuse it.
type Backend func(buf []byte) Handle
