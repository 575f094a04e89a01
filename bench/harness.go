package bench

import (
	"math"
	"sync"
	"time"

	"github.com/chtbench/conchash"
	"github.com/chtbench/conchash/workload"
)

// partition splits [0,total) into n contiguous, roughly equal ranges, the
// same work-partitioning discipline spec §5 describes ("data-parallel work
// partitioning over an index range").
func partition(total, n int) [][2]int {
	if n < 1 {
		n = 1
	}
	ranges := make([][2]int, n)
	base, rem := total/n, total%n
	start := 0
	for i := 0; i < n; i++ {
		size := base
		if i < rem {
			size++
		}
		ranges[i] = [2]int{start, start + size}
		start += size
	}
	return ranges
}

// runWorkload executes spec §4.9's two-phase build/mixed workload against
// table and returns the wall-clock seconds spent in the mixed phase only
// (the build phase is warm-up, timed separately for nothing — spec is
// explicit that only the mixed phase is timed).
//
//   - initial = ops/2 keys are pre-inserted in the build phase with value
//     2*key, by all `threads` workers in parallel.
//   - the remaining ops-initial form the mixed phase: each worker flips a
//     Bernoulli(readRatio) coin per op; reads draw a key from the
//     configured distribution (uniform over [0,initial) or skewed
//     hot/cold), writes insert a fresh key disjoint from the build range
//     (initial + global mixed-phase index) with that index as its value.
func runWorkload(table chash.Table[int, int], threads, totalOps int, readRatio float64, dist Dist, pHot, hotFrac float64) float64 {
	initial := totalOps / 2
	mixed := totalOps - initial

	var buildWG sync.WaitGroup
	for _, r := range partition(initial, threads) {
		r := r
		buildWG.Add(1)
		go func() {
			defer buildWG.Done()
			for i := r[0]; i < r[1]; i++ {
				table.Insert(i, i*2)
			}
		}()
	}
	buildWG.Wait()

	hotN := workload.HotCount(initial, hotFrac)

	start := time.Now()
	var mixWG sync.WaitGroup
	for tid, r := range partition(mixed, threads) {
		tid, r := tid, r
		mixWG.Add(1)
		go func() {
			defer mixWG.Done()
			mix := workload.NewMix(readRatio, int64(0xC0FFEE+tid))

			var gen workload.Generator
			if dist == DistSkew {
				gen = workload.NewSkewed(initial, hotN, pHot, int64(0xD15EA5E+tid))
			} else {
				gen = workload.NewUniform(maxInt(initial, 1), int64(0xD15EA5E+tid))
			}

			for i := r[0]; i < r[1]; i++ {
				if mix.IsRead() {
					key := gen.Draw()
					table.Search(key)
				} else {
					table.Insert(initial+i, i)
				}
			}
		}()
	}
	mixWG.Wait()
	return time.Since(start).Seconds()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// RunConfig runs one Config end to end and produces its CSV row, filling
// in seqBaselineS from cache (computing and memoizing it if absent).
// Non-finite timings or a post-run size mismatch abort the row per spec
// §7 ("a failed run... aborts the row; the harness continues with the
// next configuration") by returning ok=false.
func RunConfig(c Config, cache *BaselineCache) (row Row, ok bool) {
	table := newTable(c)
	elapsed := runWorkload(table, c.Threads, c.Ops, c.ReadRatio, c.Dist, c.PHot, c.HotFrac)

	baseline := cache.Get(BaselineKey{
		Mode:      c.Mode,
		ReadRatio: c.ReadRatio,
		Dist:      c.Dist,
		Buckets:   c.BucketCount,
		PHot:      c.PHot,
		Ops:       c.Ops,
	}, c.HotFrac)

	if !isFinitePositive(elapsed) || !isFinitePositive(baseline) {
		return Row{}, false
	}

	expectedSize := uint64(c.Ops / 2)
	if table.Size() < expectedSize {
		// Fewer distinct keys than the build phase alone should have
		// produced: something in the table's bookkeeping is broken.
		return Row{}, false
	}

	throughput := float64(c.Ops) / elapsed / 1e6
	speedup := baseline / elapsed

	const sanityFactor = 10.0
	if elapsed > sanityFactor*baseline {
		// Per spec §7: mark the row rather than drop it, so downstream
		// plotting still sees a complete CSV.
		throughput = 0
		speedup = 0
	}

	return Row{
		Impl:         table.Name(),
		Mode:         c.Mode,
		Mix:          MixLabel(c.ReadRatio),
		Dist:         c.Dist,
		Threads:      c.Threads,
		Ops:          c.Ops,
		BucketCount:  c.BucketCount,
		ReadRatio:    c.ReadRatio,
		PHot:         pHotForRow(c),
		TimeS:        elapsed,
		ThroughputM:  throughput,
		Speedup:      speedup,
		SeqBaselineS: baseline,
	}, true
}

func pHotForRow(c Config) float64 {
	if c.Dist == DistUniform {
		return 0.0
	}
	return c.PHot
}

// isFinitePositive implements spec §7's "non-finite time... aborts the
// row" failure check.
func isFinitePositive(f float64) bool {
	return f >= 0 && !math.IsNaN(f) && !math.IsInf(f, 0)
}
