package chash

import (
	"fmt"
	"sync"
	"sync/atomic"
	"unsafe"
)

// segmentPadded is segment cache-line aligned (segment_based_padded.h's
// `struct alignas(64) Segment`), so that two segments' locks never share a
// line even though each segment also owns a slice header of its own.
type segmentPadded[K comparable, V Number] struct {
	mu      sync.Mutex
	buckets []*entry[K, V]
	//lint:ignore U1000 prevents false sharing between neighboring segments
	_ [(CacheLineSize - unsafe.Sizeof(struct {
		mu      sync.Mutex
		buckets []uintptr
	}{})%CacheLineSize) % CacheLineSize]byte
}

// SegmentTablePadded is SegmentTable with cache-line-aligned segment
// cells.
type SegmentTablePadded[K comparable, V Number] struct {
	segments []*segmentPadded[K, V]
	nsegs    int
	hash     Hasher[K]
	count    atomic.Uint64
}

func NewSegmentTablePadded[K comparable, V Number](bucketCount, segments int, hash Hasher[K]) *SegmentTablePadded[K, V] {
	if bucketCount < 1 {
		bucketCount = 1
	}
	sizes := segmentSizes(bucketCount, segments)
	segs := make([]*segmentPadded[K, V], len(sizes))
	for i, bps := range sizes {
		segs[i] = &segmentPadded[K, V]{buckets: make([]*entry[K, V], bps)}
	}
	return &SegmentTablePadded[K, V]{segments: segs, nsegs: len(segs), hash: hash}
}

func (t *SegmentTablePadded[K, V]) locate(key K) (s *segmentPadded[K, V], bi int) {
	h := t.hash(key)
	s = t.segments[segmentIndex(h, t.nsegs)]
	bi = bucketInSegment(h, t.nsegs, len(s.buckets))
	return s, bi
}

func (t *SegmentTablePadded[K, V]) Insert(key K, value V) Result {
	s, bi := t.locate(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	r := chainFindOrUpdate(&s.buckets[bi], key, value)
	if r == Inserted {
		t.count.Add(1)
	}
	return r
}

func (t *SegmentTablePadded[K, V]) Search(key K) (V, bool) {
	s, bi := t.locate(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	return chainFind(s.buckets[bi], key)
}

func (t *SegmentTablePadded[K, V]) Remove(key K) bool {
	s, bi := t.locate(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	ok := chainErase(&s.buckets[bi], key)
	if ok {
		t.count.Add(^uint64(0))
	}
	return ok
}

func (t *SegmentTablePadded[K, V]) Increment(key K, delta V) Result {
	s, bi := t.locate(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	r := chainFindOrCombine(&s.buckets[bi], key, delta)
	if r == Inserted {
		t.count.Add(1)
	}
	return r
}

func (t *SegmentTablePadded[K, V]) Size() uint64 { return t.count.Load() }

// Name folds the actual segment count into the returned string; see
// SegmentTable.Name.
func (t *SegmentTablePadded[K, V]) Name() string { return fmt.Sprintf("segment-padded-s%d", t.nsegs) }

var _ Table[int, int] = (*SegmentTablePadded[int, int])(nil)
