// Package span locates one byte slice inside another by address arithmetic
// alone. It exists so that the results of external text algorithms (line
// splitting, trimming, segmentation) can be re-wrapped as zero-copy views
// into the buffer they came from, without re-scanning or re-validating the
// text.
//
// Precondition: the candidate slice must be derived from the container's
// allocation. Comparing addresses of unrelated allocations that happen to
// overlap is undefined behavior territory; callers that cannot guarantee
// derivation must treat a containment hit from arbitrary input as
// meaningless. The sanctioned callers are the textview iterators, which
// create the candidates themselves, and the Try*Ref entry points, which
// degrade to a clean miss.
package span

import "unsafe"

// Offset returns the start and end offsets of candidate relative to
// container, and whether candidate's entire address range lies within
// container's. Content is never compared.
func Offset(container, candidate []byte) (start, end int, ok bool) {
	cStart := uintptr(unsafe.Pointer(unsafe.SliceData(container)))
	cEnd := cStart + uintptr(len(container))
	dStart := uintptr(unsafe.Pointer(unsafe.SliceData(candidate)))
	dEnd := dStart + uintptr(len(candidate))
	if dStart < cStart || dEnd > cEnd {
		return 0, 0, false
	}
	return int(dStart - cStart), int(dEnd - cStart), true
}
