package chash

import (
	"fmt"

	"github.com/cespare/xxhash/v2"
)

// Hasher produces a 64-bit digest for a key. Every table variant in this
// package takes one at construction; DefaultHasher below builds a
// reasonable one for common key kinds so callers don't have to.
type Hasher[K comparable] func(key K) uint64

// DefaultHasher selects a Hasher for K by type-switching on its zero
// value, following the same shape as the teacher library's
// defaultHasher[K,V](): integer kinds get a cheap bit-mixing hash (no
// allocation, no dependency), strings and byte slices get xxhash (the
// fastest non-cryptographic hash in the retrieved corpus's dependency
// graph), and anything else falls back to hashing a formatted
// representation — slow, but total over any comparable K.
func DefaultHasher[K comparable]() Hasher[K] {
	var zero K
	switch any(zero).(type) {
	case int:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(int))) }
	case int8:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(int8))) }
	case int16:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(int16))) }
	case int32:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(int32))) }
	case int64:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(int64))) }
	case uint:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(uint))) }
	case uint8:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(uint8))) }
	case uint16:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(uint16))) }
	case uint32:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(uint32))) }
	case uint64:
		return func(k K) uint64 { return splitmix64(any(k).(uint64)) }
	case uintptr:
		return func(k K) uint64 { return splitmix64(uint64(any(k).(uintptr))) }
	case string:
		return func(k K) uint64 { return xxhash.Sum64String(any(k).(string)) }
	case []byte:
		return func(k K) uint64 { return xxhash.Sum64(any(k).([]byte)) }
	default:
		return func(k K) uint64 { return xxhash.Sum64String(fmt.Sprint(k)) }
	}
}

// splitmix64 mixes a raw integer key into a well-distributed 64-bit
// digest. Sequential keys (as produced by the benchmark harness's build
// phase, 0..initial) hash to poorly distributed buckets if used directly.
// The two xor-shift-multiply rounds are splitmix64's standard finalizer;
// the additive step uses hashPrime64 (padding.go), a prime near the
// golden-ratio constant, in place of splitmix64's usual 0x9E3779B97F4A7C15.
func splitmix64(x uint64) uint64 {
	x += hashPrime64
	x = (x ^ (x >> 30)) * 0xBF58476D1CE4E5B9
	x = (x ^ (x >> 27)) * 0x94D049BB133111EB
	x ^= x >> 31
	return x
}

// bucketIndex implements the simple (non-segmented) mapping of spec §4.1:
// bucket = h(k) mod N.
func bucketIndex(h uint64, n int) int {
	return int(h % uint64(n))
}

// segmentIndex implements the low-bit half of spec §4.1's bit-split
// mapping for segmented tables: seg = h(k) mod S.
func segmentIndex(h uint64, segments int) int {
	return int(h % uint64(segments))
}

// bucketInSegment implements the high-bit half of spec §4.1's bit-split
// mapping: bucket = (h(k) / S) mod bps. Dividing by S before folding into
// bps means the bucket-in-segment index is derived from bits the segment
// index never consumed, so bucket distribution within a segment is
// independent of segment selection.
//
// Design Note #2 in spec §9 calls out a competing formula
// (bucket = (h >> 4) mod bps) used by one of the two original segmented
// variants as the likely cause of anomalous timings when S isn't a power
// of 16; this module always uses the division form below.
func bucketInSegment(h uint64, segments, bps int) int {
	return int((h / uint64(segments)) % uint64(bps))
}
