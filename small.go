package vecscan

import (
	"github.com/coregx/vecscan/internal/scalar"
	"github.com/coregx/vecscan/lane"
)

// ScanSmall implements the alternate small-code-size path of §4.4: a
// scalar (byte-at-a-time) prefix scan covering the unaligned lead-in,
// followed by the aligned scanner for the lane-aligned suffix. It works
// at any buffer alignment and returns the leftmost match found by either
// pass.
//
// The scalar window is widened by n-1 bytes past the naive cut so that a
// match starting in the unaligned lead-in but extending into the aligned
// region is never missed — see the straddling-match resolution in
// DESIGN.md.
func (p *Pattern) ScanSmall(b []byte) (int, bool) {
	return scanSmall(b, p)
}

// ScanAlignedSmall is ScanSmall's counterpart for callers who already
// guarantee b is lane-aligned. It behaves identically to ScanSmall (which
// self-detects alignment), and exists only to mirror the
// Scan/ScanAligned naming pair at the small-code API surface.
func (p *Pattern) ScanAlignedSmall(b []byte) (int, bool) {
	return scanSmall(b, p)
}

func scanSmall(b []byte, p *Pattern) (int, bool) {
	n := len(p.mask)
	l := len(b)
	if n > l {
		return 0, false
	}

	w := lane.NativeWidth
	d := misalignment(b)
	alignedStart := 0
	if d != 0 {
		alignedStart = w - d
	}

	prefixLen := alignedStart + n
	if prefixLen > l {
		prefixLen = l
	}
	// Widen past the naive N+alignedStart cut by N-1 extra bytes, so a
	// match starting anywhere in [0, alignedStart) and extending into the
	// aligned region is fully covered by this scalar pass even though the
	// aligned pass below starts only at alignedStart.
	widened := prefixLen + n - 1
	if widened > l {
		widened = l
	}

	best := -1
	if off, ok := scalar.Find(b[:widened], p.mask, p.match); ok {
		best = off
	}

	if alignedStart < l {
		if off, ok := scanAligned(b[alignedStart:], p, false); ok {
			abs := alignedStart + off
			if best == -1 || abs < best {
				best = abs
			}
		}
	}

	if best == -1 {
		return 0, false
	}
	return best, true
}
