package vecscan

// This file is the library-level surface described in the external
// interfaces section of the design: convenience entry points that parse
// a textual pattern and scan in one call. A malformed pattern text is
// reported as "no match" (false), matching the Option<offset>-only
// return convention of the scan_* functions — if you need to
// distinguish a construction error from a real no-match result, compile
// the Pattern yourself with ParseIDA/ParseMaskMatchText/New and call its
// Scan/ScanAligned methods directly.

// ScanIDA finds the first occurrence of an IDA-style pattern in b. b
// must be lane-aligned; use ScanIDAUnaligned otherwise.
func ScanIDA(b []byte, patternText string) (int, bool) {
	p, err := ParseIDA(patternText)
	if err != nil {
		return 0, false
	}
	return p.ScanAligned(b)
}

// ScanIDAUnaligned finds the first occurrence of an IDA-style pattern in
// b, at any alignment.
func ScanIDAUnaligned(b []byte, patternText string) (int, bool) {
	p, err := ParseIDA(patternText)
	if err != nil {
		return 0, false
	}
	return p.Scan(b)
}

// ScanMaskMatch finds the first occurrence of a mask/match hex-text
// pattern in b. b must be lane-aligned; use ScanMaskMatchUnaligned
// otherwise.
func ScanMaskMatch(b []byte, matchText, maskText string) (int, bool) {
	p, err := ParseMaskMatchText(matchText, maskText)
	if err != nil {
		return 0, false
	}
	return p.ScanAligned(b)
}

// ScanMaskMatchUnaligned finds the first occurrence of a mask/match
// hex-text pattern in b, at any alignment.
func ScanMaskMatchUnaligned(b []byte, matchText, maskText string) (int, bool) {
	p, err := ParseMaskMatchText(matchText, maskText)
	if err != nil {
		return 0, false
	}
	return p.Scan(b)
}

// ScanIDASmall is the small-code-size counterpart of ScanIDA/ScanIDAUnaligned:
// it works at any alignment, trading some throughput for less emitted
// code by leaning on the scalar reference scanner for the unaligned
// prefix instead of the full early-reject filter.
func ScanIDASmall(b []byte, patternText string) (int, bool) {
	p, err := ParseIDA(patternText)
	if err != nil {
		return 0, false
	}
	return p.ScanSmall(b)
}

// ScanMaskMatchSmall is the small-code-size counterpart of
// ScanMaskMatch/ScanMaskMatchUnaligned.
func ScanMaskMatchSmall(b []byte, matchText, maskText string) (int, bool) {
	p, err := ParseMaskMatchText(matchText, maskText)
	if err != nil {
		return 0, false
	}
	return p.ScanSmall(b)
}

// ScanIDAUnalignedSmall is an alias for ScanIDASmall: the small-code path
// already self-detects alignment, so it is both the aligned and
// unaligned small variant. The alias exists to mirror the naming of the
// full-speed API one-for-one.
func ScanIDAUnalignedSmall(b []byte, patternText string) (int, bool) {
	return ScanIDASmall(b, patternText)
}

// ScanMaskMatchUnalignedSmall is an alias for ScanMaskMatchSmall, for the
// same reason as ScanIDAUnalignedSmall.
func ScanMaskMatchUnalignedSmall(b []byte, matchText, maskText string) (int, bool) {
	return ScanMaskMatchSmall(b, matchText, maskText)
}
