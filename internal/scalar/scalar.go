// Package scalar implements the byte-at-a-time reference scanner (§4.5).
// It exists purely as a correctness oracle for tests and as the prefix
// pass of the "small" scan variants that trade vectorized speed for
// smaller emitted code; it is never used on the hot path.
package scalar

import "github.com/coregx/vecscan/internal/anchor"

// Find returns the first offset i in [0, len(b)-len(mask)] where
// (b[i+j] & mask[j]) == match[j] for every j, or (0, false) if no such
// offset exists. mask and match must have equal, non-zero length.
func Find(b, mask, match []byte) (int, bool) {
	n := len(mask)
	if n == 0 || n > len(b) {
		return 0, false
	}
	anchorIdx := anchor.Select(mask, match)
outer:
	for i := 0; i <= len(b)-n; i++ {
		if b[i+anchorIdx]&mask[anchorIdx] != match[anchorIdx] {
			continue
		}
		for j := 0; j < n; j++ {
			if b[i+j]&mask[j] != match[j] {
				continue outer
			}
		}
		return i, true
	}
	return 0, false
}
