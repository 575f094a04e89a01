package chash

import (
	"sync"
	"unsafe"
)

// CoarseTable guards the entire bucket array with one mutex, per spec
// §4.4. Every operation is total: the lock is acquired before touching any
// bucket and released on every exit path via defer, so there is no
// unlocked error path to forget.
type CoarseTable[K comparable, V Number] struct {
	mu      sync.Mutex
	buckets []*entry[K, V]
	hash    Hasher[K]
	count   uint64 // serialized entirely by mu; no atomic needed
}

func NewCoarseTable[K comparable, V Number](bucketCount int, hash Hasher[K]) *CoarseTable[K, V] {
	if bucketCount < 1 {
		bucketCount = 1
	}
	return &CoarseTable[K, V]{
		buckets: make([]*entry[K, V], bucketCount),
		hash:    hash,
	}
}

func (t *CoarseTable[K, V]) Insert(key K, value V) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	r := chainFindOrUpdate(&t.buckets[idx], key, value)
	if r == Inserted {
		t.count++
	}
	return r
}

func (t *CoarseTable[K, V]) Search(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	return chainFind(t.buckets[idx], key)
}

func (t *CoarseTable[K, V]) Remove(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	ok := chainErase(&t.buckets[idx], key)
	if ok {
		t.count--
	}
	return ok
}

func (t *CoarseTable[K, V]) Increment(key K, delta V) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	r := chainFindOrCombine(&t.buckets[idx], key, delta)
	if r == Inserted {
		t.count++
	}
	return r
}

func (t *CoarseTable[K, V]) Size() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *CoarseTable[K, V]) Name() string { return "coarse" }

var _ Table[int, int] = (*CoarseTable[int, int])(nil)

// CoarseTablePadded is CoarseTable with its mutex placed in its own cache
// line (coarse_grained_padded.h's alignas(64) global_lock), so that a
// thread spinning on the lock doesn't also invalidate the cache line
// holding the start of the buckets slice header.
type CoarseTablePadded[K comparable, V Number] struct {
	mu sync.Mutex
	//lint:ignore U1000 prevents false sharing between mu and buckets
	_       [(CacheLineSize - unsafe.Sizeof(sync.Mutex{})%CacheLineSize) % CacheLineSize]byte
	buckets []*entry[K, V]
	hash    Hasher[K]
	count   uint64
}

func NewCoarseTablePadded[K comparable, V Number](bucketCount int, hash Hasher[K]) *CoarseTablePadded[K, V] {
	if bucketCount < 1 {
		bucketCount = 1
	}
	return &CoarseTablePadded[K, V]{
		buckets: make([]*entry[K, V], bucketCount),
		hash:    hash,
	}
}

func (t *CoarseTablePadded[K, V]) Insert(key K, value V) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	r := chainFindOrUpdate(&t.buckets[idx], key, value)
	if r == Inserted {
		t.count++
	}
	return r
}

func (t *CoarseTablePadded[K, V]) Search(key K) (V, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	return chainFind(t.buckets[idx], key)
}

func (t *CoarseTablePadded[K, V]) Remove(key K) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	ok := chainErase(&t.buckets[idx], key)
	if ok {
		t.count--
	}
	return ok
}

func (t *CoarseTablePadded[K, V]) Increment(key K, delta V) Result {
	t.mu.Lock()
	defer t.mu.Unlock()
	idx := bucketIndex(t.hash(key), len(t.buckets))
	r := chainFindOrCombine(&t.buckets[idx], key, delta)
	if r == Inserted {
		t.count++
	}
	return r
}

func (t *CoarseTablePadded[K, V]) Size() uint64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.count
}

func (t *CoarseTablePadded[K, V]) Name() string { return "coarse-padded" }

var _ Table[int, int] = (*CoarseTablePadded[int, int])(nil)
