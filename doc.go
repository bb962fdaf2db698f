// Package textview provides a cheaply cloneable, cheaply sliceable UTF-8
// text value with copy-on-write mutation.
//
// A Text is a (storage handle, byte-offset window) pair. Clones and
// substrings share one underlying buffer instead of copying it, so programs
// that repeatedly clone or slice text (parsers, tokenizers, log processors)
// pay O(1) for those operations. Mutation funnels through a single
// copy-on-write decision: a buffer is edited in place only while its handle
// is the sole reference and the view starts at the buffer's beginning;
// otherwise the visible text is copied into a fresh buffer first, leaving
// every other view untouched.
//
// Key features:
//   - O(1) Clone, Slice, and SplitOff over a shared buffer
//   - Validating, lossy, and unchecked construction from raw bytes
//   - Fixed, tested precedence for slice bounds and alignment errors
//   - Zero-copy reattachment of external sub-slices via SliceRef/StrRef
//   - Lazy line and grapheme-cluster iterators whose items share the
//     source buffer
//   - Pluggable ownership policies through the storage package
//
// Basic usage:
//
//	text := textview.New("hello world")
//	hello := text.Slice(0, 5)        // shares text's buffer
//	clone := text.Clone()            // O(1)
//	clone.PushStr("!")               // copies on write; text unchanged
//
// Every byte window of a Text starts and ends on UTF-8 code-point
// boundaries, so String and Bytes always expose valid UTF-8.
//
// Copying and sharing:
//
// Derive independent values with Clone, Slice, SplitOff, or the iterators.
// Assigning a Text to another variable creates an alias that is fine to
// read but does not register with the ownership backend; call Clone before
// mutating a copy obtained by plain assignment.
//
// Concurrency follows the chosen backend: with the default shared backend,
// independently held Text values may be read, cloned, and discarded from
// multiple goroutines, while mutation of the same value needs external
// coordination. The local backend confines all handles to one goroutine.
package textview
