package chash

import (
	"unsafe"

	"golang.org/x/sys/cpu"
)

// CacheLineSize is the padding unit used throughout this package to keep
// neighboring locks/counters from sharing a cache line. It is derived from
// golang.org/x/sys/cpu rather than hard-coded, since the actual line size
// varies across architectures (e.g. 128 bytes on some ARM64 parts).
const CacheLineSize = unsafe.Sizeof(cpu.CacheLinePad{})

// hashPrime64 is a 64-bit prime close to the golden-ratio constant
// floor(2^64 / φ) = 0x9E3779B97F4A7C15 (it is xxHash's PRIME64_1), used by
// splitmix64 in hash.go to spread the low bits of sequential integer keys
// before they are folded into a bucket or segment index.
const hashPrime64 = 0x9E3779B185EBCA87

// padLen reports the number of trailing padding bytes needed so that
// `used` live bytes round up to a whole multiple of CacheLineSize. Padded
// struct definitions inline this arithmetic directly in their array-length
// const expression (Go requires array lengths to be constant), so nothing
// in this module calls this function.
func padLen(used uintptr) uintptr {
	return (CacheLineSize - used%CacheLineSize) % CacheLineSize
}
