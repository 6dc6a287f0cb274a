// Package lane implements the SIMD lane abstraction the scanner is built
// on: a fixed-width value holding NativeWidth bytes, with elementwise AND,
// equality-to-bitmask, and zero-filling shifts.
//
// There is no hand-written assembly here. Every operation is implemented
// with the SWAR (SIMD-within-a-register) technique of packing bytes into
// uint64 words and using integer arithmetic to emulate the vector
// instructions a real kernel would use — the same technique the byte
// search fallback in a typical amd64-optimized string library falls back
// to on platforms (or input sizes) where its assembly kernels don't apply.
// golang.org/x/sys/cpu is still used, but to choose how many words make up
// one lane rather than to dispatch into assembly.
package lane

import (
	"runtime"

	"golang.org/x/sys/cpu"
)

// wordBytes is the width of a single SWAR word.
const wordBytes = 8

// maxWords bounds the largest lane this package supports (32 bytes).
const maxWords = 4

// NativeWidth is the process-wide lane width in bytes, chosen once at
// package initialization. It is a power of two, per the lane-width
// contract: 32 on amd64 CPUs that report AVX2 (four SWAR words are
// processed together as one lane, four times the bytes inspected per
// aligned-scanner stride), 8 everywhere else (a single SWAR word, the
// portable baseline).
var NativeWidth = detectNativeWidth()

func detectNativeWidth() int {
	if runtime.GOARCH == "amd64" && cpu.X86.HasAVX2 {
		return 4 * wordBytes
	}
	return wordBytes
}

func numWords() int {
	return NativeWidth / wordBytes
}
