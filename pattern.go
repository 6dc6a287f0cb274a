// Package vecscan locates the first occurrence of a fixed-length
// (mask, match) byte pattern inside a buffer of arbitrary length and
// alignment, using a vectorized (SWAR lane-at-a-time) inner loop with a
// first-byte filter and a shifted full-pattern verification fallback.
package vecscan

//go:generate go run ./gen

import (
	"fmt"

	"github.com/coregx/vecscan/internal/conv"
	"github.com/coregx/vecscan/lane"
)

// Pattern is an immutable (mask, match) pair of equal length N. Byte j of
// a candidate buffer position satisfies the pattern iff
// (b & mask[j]) == match[j]; mask[j] == 0 marks a wildcard position.
//
// A Pattern is safe for concurrent use by multiple goroutines: it is
// never mutated after construction.
type Pattern struct {
	mask  []byte
	match []byte

	// extMask, extMatch are mask/match zero-padded to a multiple of
	// lane.NativeWidth, simplifying lane loads in the scanner.
	extMask  []byte
	extMatch []byte
}

// New constructs a Pattern from equal-length mask and match byte slices.
//
// Construction fails with a *PatternError wrapping one of the sentinel
// errors in errors.go if:
//   - mask or match is empty (ErrEmptyPattern)
//   - mask and match have different lengths (ErrLengthMismatch)
//   - mask[j]&match[j] != match[j] for some j (ErrNonSubsetMatch)
//   - mask[0] == 0 (ErrLeadingWildcard)
//   - mask[len-1] == 0 (ErrTrailingWildcard)
func New(mask, match []byte) (*Pattern, error) {
	if len(mask) == 0 || len(match) == 0 {
		return nil, &PatternError{Reason: ErrEmptyPattern}
	}
	if len(mask) != len(match) {
		return nil, &PatternError{
			Reason: ErrLengthMismatch,
			Detail: fmt.Sprintf("mask has %d bytes, match has %d", len(mask), len(match)),
		}
	}
	for j := range mask {
		if mask[j]&match[j] != match[j] {
			return nil, &PatternError{
				Reason: ErrNonSubsetMatch,
				Detail: fmt.Sprintf("position %d: mask=%#02x match=%#02x", j, mask[j], match[j]),
			}
		}
	}
	if mask[0] == 0 {
		return nil, &PatternError{Reason: ErrLeadingWildcard}
	}
	if mask[len(mask)-1] == 0 {
		return nil, &PatternError{Reason: ErrTrailingWildcard}
	}
	return newUnchecked(mask, match), nil
}

// newUnchecked builds a Pattern without enforcing the leading/trailing
// wildcard invariants. It exists solely for the unaligned adapter's
// widened first-lane probe (§4.4 of the design), which intentionally
// prepends zero-mask bytes and is safe only because that probe is always
// driven through scanAligned with onlyFirst=true. Every other caller must
// go through New.
func newUnchecked(mask, match []byte) *Pattern {
	p := &Pattern{
		mask:  append([]byte(nil), mask...),
		match: append([]byte(nil), match...),
	}
	p.extMask, p.extMatch = extendToWidth(p.mask, p.match, lane.NativeWidth)
	return p
}

// extendToWidth zero-pads mask and match to a common length that is a
// multiple of w, per the "logically extended to length N' = ceil(N/W)*W"
// rule of the lane-width data model.
func extendToWidth(mask, match []byte, w int) (extMask, extMatch []byte) {
	n := len(mask)
	extLen := ((n + w - 1) / w) * w
	extMask = make([]byte, extLen)
	extMatch = make([]byte, extLen)
	copy(extMask, mask)
	copy(extMatch, match)
	return extMask, extMatch
}

// Len returns the pattern's true byte length N.
func (p *Pattern) Len() int {
	return len(p.mask)
}

// LenUint16 returns the pattern's byte length as a uint16, for callers
// serializing a Pattern into a length-prefixed wire format. It panics if
// the pattern is longer than 65535 bytes: any Pattern built through New
// in this package's intended use (short binary signatures) never
// approaches that length, so hitting the panic indicates a caller bug
// rather than ordinary user input.
func (p *Pattern) LenUint16() uint16 {
	return conv.IntToUint16(len(p.mask))
}

// ExtLenUint32 returns the pattern's lane-padded length (len(extMask),
// a multiple of lane.NativeWidth) as a uint32, for callers serializing
// the padded buffer size a Pattern's aligned scanner actually operates
// over. A uint16 is not wide enough here: unlike the true pattern
// length, the padded length scales with lane.NativeWidth and is not
// bounded by the same "short binary signature" assumption LenUint16
// relies on.
func (p *Pattern) ExtLenUint32() uint32 {
	return conv.IntToUint32(len(p.extMask))
}

// Mask returns the pattern's mask bytes. The returned slice must not be
// mutated.
func (p *Pattern) Mask() []byte {
	return p.mask
}

// Match returns the pattern's match bytes. The returned slice must not
// be mutated.
func (p *Pattern) Match() []byte {
	return p.match
}

// Scan finds the first occurrence of the pattern in b, regardless of b's
// base alignment. It returns (offset, true) on a match, or (0, false) if
// the pattern does not occur.
func (p *Pattern) Scan(b []byte) (int, bool) {
	return scanUnaligned(b, p)
}

// ScanAligned finds the first occurrence of the pattern in b using only
// the aligned scanner (§4.3), without the unaligned adapter's pre/post
// handling. Callers must guarantee b's base address is aligned to
// lane.NativeWidth; ScanAligned does not check this. Use Scan unless you
// control buffer allocation and can guarantee alignment yourself.
func (p *Pattern) ScanAligned(b []byte) (int, bool) {
	return scanAligned(b, p, false)
}
