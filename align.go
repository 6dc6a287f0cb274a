package vecscan

import (
	"unsafe"

	"github.com/coregx/vecscan/lane"
)

// misalignment returns b's base address modulo lane.NativeWidth, i.e. the
// distance (in bytes) from the preceding aligned address. It returns 0
// for an empty buffer (there is no base address to misalign).
//
// This only inspects the address value via uintptr arithmetic; it never
// dereferences a pointer outside b, so it carries none of the risk of an
// actual out-of-bounds read.
func misalignment(b []byte) int {
	if len(b) == 0 {
		return 0
	}
	addr := uintptr(unsafe.Pointer(&b[0]))
	return int(addr % uintptr(lane.NativeWidth))
}
