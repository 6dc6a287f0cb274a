// Package anchor picks the rarest non-wildcard byte of a pattern to use as
// an early-reject check, the same rare-byte heuristic the Rust memchr
// crate uses for prefilter selection: checking the byte least likely to occur rejects far more
// candidate positions per comparison than checking the bytes in pattern
// order.
package anchor

// frequencies holds empirical byte frequency ranks across English text,
// source code, and binary samples. Lower rank means rarer, and rarer
// bytes make better anchor candidates because they are less likely to
// appear at any given buffer position by chance.
var frequencies = [256]byte{
	0, 0, 0, 0, 0, 0, 0, 0, 0, 1, 1, 0, 0, 1, 0, 0,
	0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0,
	255, 60, 140, 50, 40, 35, 30, 160, 130, 130, 80, 55, 200, 140, 210, 100,
	180, 190, 170, 150, 140, 140, 130, 120, 120, 120, 150, 100, 70, 160, 70, 50,
	25, 120, 80, 90, 85, 130, 75, 70, 80, 115, 30, 35, 90, 85, 100, 105,
	80, 15, 100, 110, 115, 70, 45, 55, 20, 50, 10, 90, 60, 90, 20, 110,
	30, 225, 140, 170, 165, 245, 135, 130, 150, 200, 25, 65, 175, 155, 195, 205,
	145, 15, 195, 200, 215, 150, 75, 95, 45, 120, 20, 85, 40, 85, 15, 0,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
	5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5, 5,
}

// Select returns the index of the rarest fully-constrained byte in a
// (mask, match) pattern, skipping wildcard positions (mask[j] == 0). It
// returns 0 if every position is a wildcard, which cannot happen for a
// Pattern built through New since position 0 is required to be
// non-wildcard there; Select makes no such assumption itself so it
// remains safe to call on raw mask/match slices in tests.
func Select(mask, match []byte) int {
	best := -1
	bestRank := byte(255)
	for j := range mask {
		if mask[j] == 0 {
			continue
		}
		rank := frequencies[match[j]]
		if best == -1 || rank < bestRank {
			best = j
			bestRank = rank
		}
	}
	if best == -1 {
		return 0
	}
	return best
}
