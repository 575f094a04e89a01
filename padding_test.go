package chash

import (
	"sync/atomic"
	"testing"
	"unsafe"
)

// TestPaddedCells_FillAWholeCacheLine mirrors the teacher's
// TestMap_BucketOfStructSize: every padded cell type must occupy exactly
// one cache line, or the padding arithmetic is wrong.
func TestPaddedCells_FillAWholeCacheLine(t *testing.T) {
	t.Logf("CacheLineSize: %d", CacheLineSize)

	if size := unsafe.Sizeof(paddedMutex{}); size != CacheLineSize {
		t.Fatalf("paddedMutex size = %d, want %d", size, CacheLineSize)
	}
	if size := unsafe.Sizeof(fineCellPadded[int, int]{}); size%CacheLineSize != 0 {
		t.Fatalf("fineCellPadded size = %d, not a multiple of %d", size, CacheLineSize)
	}
	if size := unsafe.Sizeof(segmentPadded[int, int]{}); size%CacheLineSize != 0 {
		t.Fatalf("segmentPadded size = %d, not a multiple of %d", size, CacheLineSize)
	}

	if size := unsafe.Sizeof(CoarseTablePadded[int, int]{}); size < CacheLineSize {
		t.Fatalf("CoarseTablePadded size = %d, smaller than one cache line %d", size, CacheLineSize)
	}
}

func BenchmarkFine_Unpadded(b *testing.B) {
	table := NewFineTable[int, int](1024, DefaultHasher[int]())
	benchmarkConcurrentIncrements(b, table)
}

func BenchmarkFine_Padded(b *testing.B) {
	table := NewFineTablePadded[int, int](1024, DefaultHasher[int]())
	benchmarkConcurrentIncrements(b, table)
}

// benchmarkConcurrentIncrements has every parallel goroutine hammer its own
// key (one per goroutine, via a shared counter so each gets a distinct
// value), so the only difference between the padded and unpadded variants
// is false sharing between neighboring bucket cells, not lock contention on
// a shared bucket.
func benchmarkConcurrentIncrements(b *testing.B, table Table[int, int]) {
	var nextKey atomic.Int64
	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		key := int(nextKey.Add(1))
		for pb.Next() {
			table.Increment(key, 1)
		}
	})
}
