package vecscan

import "github.com/coregx/vecscan/lane"

// scanAligned is the vectorized inner loop (§4.3 of the design). It
// iterates the buffer one lane.NativeWidth-byte lane at a time, using a
// first-byte equality predicate as a filter and a shifted full-pattern
// verification whenever that filter signals a candidate.
//
// When onlyFirst is true, only the lane at offset 0 is inspected; this is
// the entry point the unaligned adapter uses to probe a widened,
// leading-zero-mask pattern (§4.4) without risking a false positive
// beyond the first lane.
func scanAligned(b []byte, p *Pattern, onlyFirst bool) (int, bool) {
	w := lane.NativeWidth
	l := len(b)
	n := len(p.mask)
	if n > l {
		return 0, false
	}

	firstMaskLane := lane.Load(p.extMask[:w])
	firstMatchLane := lane.Load(p.extMatch[:w])
	splatMask0 := lane.Splat(p.extMask[0])
	splatMatch0 := lane.Splat(p.extMatch[0])

	limit := l
	if onlyFirst && w < limit {
		limit = w
	}

	maxOffsExclusive := w - 1
	if n < maxOffsExclusive {
		maxOffsExclusive = n
	}

	for i := 0; i < limit; i += w {
		word := loadTail(b, i, w)
		firstPred := lane.EqMask(lane.And(word, splatMask0), splatMatch0)
		if firstPred == 0 {
			continue
		}

		lowestPossibleStart := 0
		for offs := 1; offs < maxOffsExclusive; offs++ {
			mb := p.extMask[offs]
			if mb == 0 {
				continue
			}
			predOffs := lane.EqMask(lane.And(word, lane.Splat(mb)), lane.Splat(p.extMatch[offs]))
			high := lane.HighMask(offs)
			if predOffs&high == 0 && w-offs > lowestPossibleStart {
				lowestPossibleStart = w - offs
			}
		}

		candidateMask := firstPred & lane.HighMask(lowestPossibleStart)
		for candidateMask != 0 {
			offsK := lane.TrailingZero(candidateMask)
			candidateMask &^= 1 << uint(offsK)

			m0 := lane.ShiftRight(firstMaskLane, offsK)
			x0 := lane.ShiftRight(firstMatchLane, offsK)
			if !lane.ReduceAllEq(lane.And(word, m0), x0) {
				continue
			}

			pos := i + offsK
			matched := w - offsK
			if matched >= n {
				if pos+n <= l {
					return pos, true
				}
				continue
			}

			ok := true
			for chunkIdx := 1; matched < n; chunkIdx++ {
				j := i + chunkIdx*w
				newWord := loadTail(b, j, w)
				cm, cx := patChunkAt(p, chunkIdx*w-offsK, w)
				if !lane.ReduceAllEq(lane.And(newWord, cm), cx) {
					ok = false
					break
				}
				matched += w
			}
			if ok && pos+n <= l {
				return pos, true
			}
		}
	}
	return 0, false
}

// loadTail loads a w-byte lane starting at offset i of b. If the full
// lane would read past the end of b, the missing bytes are zero-filled
// rather than read from adjacent memory: any candidate whose pattern
// bytes fall in the zero-filled region either needs a wildcard there
// (match is unaffected) or is later rejected by the i+n<=l bounds check,
// so the result is identical to reading real out-of-bounds memory while
// remaining memory-safe.
func loadTail(b []byte, i, w int) lane.Lane {
	if i < 0 || i >= len(b) {
		var zero lane.Lane
		return zero
	}
	if i+w <= len(b) {
		return lane.Load(b[i : i+w])
	}
	tmp := make([]byte, w)
	copy(tmp, b[i:])
	return lane.Load(tmp)
}

// patChunkAt builds the mask/match lanes for the w pattern bytes starting
// at extended-pattern offset start. Offsets beyond the extended pattern's
// length are treated as wildcards (mask=0, match=0), which is always
// correct since the extended pattern is already zero-padded past its
// true length N.
func patChunkAt(p *Pattern, start, w int) (lane.Lane, lane.Lane) {
	maskBuf := make([]byte, w)
	matchBuf := make([]byte, w)
	for k := 0; k < w; k++ {
		idx := start + k
		if idx >= 0 && idx < len(p.extMask) {
			maskBuf[k] = p.extMask[idx]
			matchBuf[k] = p.extMatch[idx]
		}
	}
	return lane.Load(maskBuf), lane.Load(matchBuf)
}
