package textview

import "unsafe"

// Zero-copy conversions between string and []byte. The two types share
// memory, so the byte form must never be written through while the string
// form is reachable.

func bytesToString(b []byte) string {
	if len(b) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(b), len(b))
}

func stringToBytes(s string) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice(unsafe.StringData(s), len(s))
}
