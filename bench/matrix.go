package bench

import (
	"context"

	"github.com/chtbench/conchash/internal/logging"
)

// RunMatrix sweeps impl across every (mode, mix, bucket_count, dist,
// p_hot, threads) combination in m, in the same nested order as
// original_source/bench_matrix_simple.cpp's run_matrix_for_impl: for each
// mode, for each mix, for each bucket count, run the full uniform sweep
// over threads, then the full skew sweep over (p_hot, threads). Rows for
// failed configurations (see RunConfig) are logged and dropped rather
// than aborting the sweep, per spec §7.
func RunMatrix(ctx context.Context, impl string, m Matrix) []Row {
	log := logging.From(ctx)
	cache := NewBaselineCache()
	var rows []Row

	runOne := func(mode Mode, mix float64, buckets int, dist Dist, pHot float64, threads int, ops int) {
		c := Config{
			Impl:        impl,
			Mode:        mode,
			Threads:     threads,
			Ops:         ops,
			BucketCount: buckets,
			ReadRatio:   mix,
			Dist:        dist,
			PHot:        pHot,
			HotFrac:     m.HotFrac,
			Segments:    m.Segments,
			Stripes:     m.Stripes,
			Factor:      m.Factor,
		}
		if err := c.Validate(); err != nil {
			log.Warn().Err(err).Str("impl", impl).Msg("skipping invalid configuration")
			return
		}
		row, ok := RunConfig(c, cache)
		if !ok {
			log.Warn().
				Str("impl", impl).Str("mode", string(mode)).Str("dist", string(dist)).
				Int("threads", threads).Int("ops", ops).
				Msg("aborting row: non-finite time or size mismatch")
			return
		}
		log.Info().
			Str("impl", row.Impl).Str("mode", string(row.Mode)).Str("mix", row.Mix).
			Str("dist", string(row.Dist)).Int("threads", row.Threads).Int("ops", row.Ops).
			Float64("time_s", row.TimeS).Float64("throughput_mops", row.ThroughputM).
			Float64("speedup", row.Speedup).Msg("row")
		rows = append(rows, row)
	}

	sweepMode := func(mode Mode) {
		for _, mix := range m.Mixes {
			for _, buckets := range m.BucketsVec {
				for _, threads := range m.ThreadsVec {
					ops := opsFor(mode, m, threads)
					runOne(mode, mix, buckets, DistUniform, 0.0, threads, ops)
				}
				for _, pHot := range m.PHots {
					for _, threads := range m.ThreadsVec {
						ops := opsFor(mode, m, threads)
						runOne(mode, mix, buckets, DistSkew, pHot, threads, ops)
					}
				}
			}
		}
	}

	sweepMode(ModeStrong)
	sweepMode(ModeWeak)

	return rows
}

// opsFor implements spec §4.9: strong mode holds total ops fixed; weak
// mode scales ops with thread count (ops-per-thread * T).
func opsFor(mode Mode, m Matrix, threads int) int {
	if mode == ModeStrong {
		return m.StrongOps
	}
	return m.WeakOpsPerThread * threads
}
