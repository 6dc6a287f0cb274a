package vecscan

import "github.com/coregx/vecscan/lane"

// scanUnaligned is the unaligned adapter (§4.4): it reduces a buffer of
// any base alignment to one or two aligned-scanner invocations.
//
// Let d = misalignment(b). If d == 0, b is already lane-aligned and the
// aligned scanner runs directly. Otherwise the adapter:
//
//  1. Builds a widened pattern with d leading zero-mask bytes, then
//     probes only the first lane (onlyFirst=true) of a synthetic buffer
//     consisting of d filler bytes followed by b. The filler bytes are
//     never compared against anything (their mask is zero), so their
//     value is irrelevant — this reproduces the effect of "walking back
//     d bytes to the preceding aligned address" from the design without
//     reading memory outside b, which Go does not allow.
//  2. If that probe finds nothing, scans the remainder of b starting at
//     the next aligned offset (w-d) in normal mode, and offsets the
//     result back by w-d.
//
// The widened pattern's first d bytes are wildcard, so a match reported
// by the probe at synth offset k has its real (non-wildcard) pattern
// bytes starting at synth offset k+d. Since synth[d:] == b, that synth
// position k+d is b position (k+d)-d == k: the probe's returned offset
// is already the correct offset into b, unadjusted.
func scanUnaligned(b []byte, p *Pattern) (int, bool) {
	w := lane.NativeWidth
	l := len(b)
	n := len(p.mask)
	if n > l {
		return 0, false
	}

	d := misalignment(b)
	if d == 0 {
		return scanAligned(b, p, false)
	}

	widenedMask := make([]byte, d+n)
	widenedMatch := make([]byte, d+n)
	copy(widenedMask[d:], p.mask)
	copy(widenedMatch[d:], p.match)
	widened := newUnchecked(widenedMask, widenedMatch)

	synth := make([]byte, d+l)
	copy(synth[d:], b)
	if k, ok := scanAligned(synth, widened, true); ok {
		return k, true
	}

	next := w - d
	if next >= l {
		return 0, false
	}
	if k, ok := scanAligned(b[next:], p, false); ok {
		return next + k, true
	}
	return 0, false
}
