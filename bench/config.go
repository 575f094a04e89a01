// Package bench is the benchmark harness of spec §4.9 (C10): it drives
// any chash.Table[int,int] variant through a build phase followed by a
// timed mixed read/write phase, under uniform or skewed key distributions,
// memoizing a per-configuration sequential baseline for speedup, and
// emitting a delimited CSV block per spec §6.
//
// The harness is concretized to K=int, V=int throughout, matching
// original_source/bench_matrix_simple.cpp's HT<int,int> instantiations and
// every literal scenario in spec §8 (all of which use integer keys and
// values).
package bench

import "github.com/pkg/errors"

// Mode is spec §4.9's strong/weak scaling selector.
type Mode string

const (
	ModeStrong Mode = "strong"
	ModeWeak   Mode = "weak"
)

// Dist is spec §4.9's key-distribution selector.
type Dist string

const (
	DistUniform Dist = "uniform"
	DistSkew    Dist = "skew"
)

// Config is one point in the sweep: everything spec §4.9's configuration
// table lists.
type Config struct {
	Impl        string
	Mode        Mode
	Threads     int
	Ops         int
	BucketCount int
	ReadRatio   float64
	Dist        Dist
	PHot        float64
	HotFrac     float64

	// Segments/Stripes/Factor/ExpectedThreads only matter for the
	// segment (C6) and striped (C7) variants; other variants ignore
	// them.
	Segments        int
	Stripes         int
	Factor          int
	ExpectedThreads int
}

// Validate applies spec §7's "invalid configuration is fatal at startup"
// rule: an unknown impl or non-positive ops/threads/bucket count is
// reported here rather than discovered mid-run.
func (c Config) Validate() error {
	if c.Threads < 1 {
		return errors.Errorf("threads must be >= 1, got %d", c.Threads)
	}
	if c.Ops < 1 {
		return errors.Errorf("ops must be >= 1, got %d", c.Ops)
	}
	if c.BucketCount < 1 {
		return errors.Errorf("bucket_count must be >= 1, got %d", c.BucketCount)
	}
	if c.ReadRatio < 0 || c.ReadRatio > 1 {
		return errors.Errorf("read_ratio must be in [0,1], got %v", c.ReadRatio)
	}
	if c.Dist == DistSkew && (c.PHot < 0 || c.PHot > 1) {
		return errors.Errorf("p_hot must be in [0,1], got %v", c.PHot)
	}
	if _, ok := factories[c.Impl]; !ok {
		return errors.Errorf("unknown impl %q (want one of %v)", c.Impl, implNames())
	}
	if c.Impl == "sequential" && c.Threads > 1 {
		return errors.Errorf("impl \"sequential\" has no synchronization (spec's correctness oracle and speedup baseline only) and cannot be driven with threads > 1, got %d", c.Threads)
	}
	return nil
}

// Matrix is the sweep of configurations run per variant, matching
// original_source/bench_matrix_simple.cpp's literal default arrays
// exactly.
type Matrix struct {
	ThreadsVec       []int
	StrongOps        int
	WeakOpsPerThread int
	Mixes            []float64
	BucketsVec       []int
	PHots            []float64
	HotFrac          float64
	Segments         int
	Stripes          int
	Factor           int
}

// DefaultMatrix reproduces bench_matrix_simple.cpp's main(): threads
// {1,2,4,8,16}, strong_ops=2,000,000, weak_ops_per_thread=250,000,
// mixes {0.8,0.5}, buckets {16384,65536,262144,1048576},
// p_hots {0.7,0.9,0.99}, hot_frac=0.10.
func DefaultMatrix() Matrix {
	return Matrix{
		ThreadsVec:       []int{1, 2, 4, 8, 16},
		StrongOps:        2_000_000,
		WeakOpsPerThread: 250_000,
		Mixes:            []float64{0.8, 0.5},
		BucketsVec:       []int{16384, 65536, 262144, 1048576},
		PHots:            []float64{0.7, 0.9, 0.99},
		HotFrac:          0.10,
		Segments:         128,
		Stripes:          32,
		Factor:           2,
	}
}
