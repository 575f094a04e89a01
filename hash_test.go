package chash

import "testing"

func TestDefaultHasher_Deterministic(t *testing.T) {
	h := DefaultHasher[int]()
	a := h(42)
	b := h(42)
	if a != b {
		t.Fatalf("hash of the same int key differs across calls: %d vs %d", a, b)
	}

	hs := DefaultHasher[string]()
	if hs("x") != hs("x") {
		t.Fatalf("hash of the same string key differs across calls")
	}
	if hs("x") == hs("y") {
		t.Fatalf("distinct string keys hashed to the same digest (unlikely collision or broken hasher)")
	}
}

func TestBucketInSegment_IndependentOfSegmentIndex(t *testing.T) {
	// Per spec §4.1's normative bit-split rule, bucket-in-segment is
	// derived from bits the segment index doesn't consume: the hashes that
	// land in any one segment must still spread across that segment's
	// buckets, whichever segment it is.
	const segments = 16
	const bps = 32
	seen := make(map[int]map[int]bool)
	for h := uint64(0); h < 4096; h++ {
		bi := bucketInSegment(h, segments, bps)
		if bi < 0 || bi >= bps {
			t.Fatalf("bucketInSegment(%d, %d, %d) = %d out of range [0,%d)", h, segments, bps, bi, bps)
		}
		si := segmentIndex(h, segments)
		if seen[si] == nil {
			seen[si] = make(map[int]bool)
		}
		seen[si][bi] = true
	}
	for si, buckets := range seen {
		if len(buckets) < bps/2 {
			t.Fatalf("segment %d only hit %d distinct buckets out of %d; distribution within a segment looks broken", si, len(buckets), bps)
		}
	}
}

func TestSegmentIndex_Range(t *testing.T) {
	const segments = 37 // deliberately not a power of two
	for h := uint64(0); h < 10000; h++ {
		si := segmentIndex(h, segments)
		if si < 0 || si >= segments {
			t.Fatalf("segmentIndex(%d, %d) = %d out of range [0,%d)", h, segments, si, segments)
		}
	}
}

func TestBucketIndex_Range(t *testing.T) {
	const n = 13
	for h := uint64(0); h < 10000; h++ {
		bi := bucketIndex(h, n)
		if bi < 0 || bi >= n {
			t.Fatalf("bucketIndex(%d, %d) = %d out of range [0,%d)", h, n, bi, n)
		}
	}
}
