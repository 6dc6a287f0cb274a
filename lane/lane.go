package lane

import (
	"encoding/binary"
	"math/bits"
)

// SWAR constants. lo8 broadcasts a byte across a word. lo7 drives an exact
// per-byte zero test: for a word x, ^(((x & lo7) + lo7) | x | lo7) has the
// high bit of byte i set iff byte i of x is exactly 0x00, and every other
// bit clear. Adding lo7 to the low seven bits of a byte never carries into
// the next byte, so no byte's result depends on its neighbours.
const (
	lo8 = 0x0101010101010101
	lo7 = 0x7F7F7F7F7F7F7F7F

	// gather8 compacts the (already isolated) high bit of each byte of a
	// word into the low 8 bits of the result. It relies on every input
	// bit being one of the 8 bit positions 7, 15, 23, ..., 63 — the
	// partial products these bits generate when multiplied by gather8
	// never overlap, so the sum (the multiplication) produces exactly the
	// compacted bits in the top byte.
	gather8 = 0x0002040810204081
)

// Lane holds NativeWidth bytes, organized as 1-4 uint64 words in
// little-endian order (word 0 holds the lowest-addressed bytes).
type Lane struct {
	w [maxWords]uint64
}

// Load reads NativeWidth bytes from the front of b into a Lane.
// b must have length >= NativeWidth.
func Load(b []byte) Lane {
	var l Lane
	n := numWords()
	for i := 0; i < n; i++ {
		l.w[i] = binary.LittleEndian.Uint64(b[i*wordBytes:])
	}
	return l
}

// Splat broadcasts a single byte across every byte of a lane.
func Splat(v byte) Lane {
	word := uint64(v) * lo8
	var l Lane
	n := numWords()
	for i := 0; i < n; i++ {
		l.w[i] = word
	}
	return l
}

// And returns the elementwise (bytewise, via whole-word AND) AND of a, b.
func And(a, b Lane) Lane {
	var out Lane
	n := numWords()
	for i := 0; i < n; i++ {
		out.w[i] = a.w[i] & b.w[i]
	}
	return out
}

// eqByteMaskWord returns an 8-bit mask (in the low byte) where bit k is
// set iff byte k of x equals byte k of y.
func eqByteMaskWord(x, y uint64) uint64 {
	d := x ^ y
	hz := ^(((d & lo7) + lo7) | d | lo7)
	return (hz * gather8) >> 56
}

// EqMask compares a and b elementwise and returns a NativeWidth-bit mask
// where bit k is set iff byte k of a equals byte k of b. Bit 0 corresponds
// to the lowest-addressed byte of the lane.
func EqMask(a, b Lane) uint64 {
	var mask uint64
	n := numWords()
	for i := 0; i < n; i++ {
		mask |= eqByteMaskWord(a.w[i], b.w[i]) << (uint(i) * wordBytes)
	}
	return mask
}

// ReduceAllEq reports whether every byte of a equals the corresponding
// byte of b.
func ReduceAllEq(a, b Lane) bool {
	n := numWords()
	for i := 0; i < n; i++ {
		if a.w[i] != b.w[i] {
			return false
		}
	}
	return true
}

// Bytes returns the NativeWidth bytes of the lane, lowest address first.
func (l Lane) Bytes() []byte {
	out := make([]byte, NativeWidth)
	n := numWords()
	for i := 0; i < n; i++ {
		binary.LittleEndian.PutUint64(out[i*wordBytes:], l.w[i])
	}
	return out
}

// ShiftRight shifts lane elements toward higher indices (higher byte
// addresses) by k positions, filling the low k bytes with zero. k must be
// in [0, NativeWidth].
func ShiftRight(a Lane, k int) Lane {
	if k <= 0 {
		return a
	}
	if k >= NativeWidth {
		return Lane{}
	}
	src := a.Bytes()
	dst := make([]byte, NativeWidth)
	copy(dst[k:], src[:NativeWidth-k])
	return Load(dst)
}

// ShiftLeft shifts lane elements toward lower indices (lower byte
// addresses) by k positions, filling the high k bytes with zero. k must
// be in [0, NativeWidth].
func ShiftLeft(a Lane, k int) Lane {
	if k <= 0 {
		return a
	}
	if k >= NativeWidth {
		return Lane{}
	}
	src := a.Bytes()
	dst := make([]byte, NativeWidth)
	copy(dst[:NativeWidth-k], src[k:])
	return Load(dst)
}

// HighMask returns a NativeWidth-bit mask with bits [offs, NativeWidth)
// set and bits below offs clear. offs must be in [0, NativeWidth].
func HighMask(offs int) uint64 {
	if offs <= 0 {
		return AllOnes()
	}
	if offs >= NativeWidth {
		return 0
	}
	return AllOnes() << uint(offs)
}

// AllOnes returns a mask with the low NativeWidth bits set.
func AllOnes() uint64 {
	if NativeWidth >= 64 {
		return ^uint64(0)
	}
	return (uint64(1) << uint(NativeWidth)) - 1
}

// TrailingZero returns the index of the lowest set bit of mask, or
// NativeWidth if mask is zero.
func TrailingZero(mask uint64) int {
	if mask == 0 {
		return NativeWidth
	}
	return bits.TrailingZeros64(mask)
}
