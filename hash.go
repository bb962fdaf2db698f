package textview

import "github.com/zeebo/blake3"

// Sum256 returns the BLAKE3 digest of the visible text. Two texts with
// identical visible content produce identical digests regardless of their
// handles or offsets, so the digest can key caches and deduplication maps.
func (t Text) Sum256() [32]byte {
	return blake3.Sum256(t.viewBytes())
}
