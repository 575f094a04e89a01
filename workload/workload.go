// Package workload implements the per-thread key generators described in
// spec §4.9 (C9): a uniform generator over the build range, and a skewed
// hot-set generator where a small fraction of the key space receives a
// configurable majority of accesses. Both are grounded on
// original_source/hotset.h.
//
// Every generator here carries only private, per-goroutine state (an
// *rand.Rand seeded at construction). Spec §4.9 is explicit that no shared
// random state is permitted, since that would introduce contention outside
// the subject under test; NewUniform/NewSkewed are meant to be called once
// per worker goroutine, each with a distinct seed.
package workload

import "math/rand"

// Generator draws a key index for the read side of the mixed phase (spec
// §4.9's "on read, query a key drawn from the workload generator").
type Generator interface {
	// Draw returns a key in [0, universe).
	Draw() int
}

// Uniform draws independent uniform values over [0, universe). It backs
// the "dist=uniform" mixed-phase reads; Skewed does its own hot and cold
// draws and does not use Uniform.
type Uniform struct {
	rng      *rand.Rand
	universe int
}

// NewUniform constructs a Uniform generator over [0, universe) seeded
// independently from seed. universe must be >= 1.
func NewUniform(universe int, seed int64) *Uniform {
	if universe < 1 {
		universe = 1
	}
	return &Uniform{rng: rand.New(rand.NewSource(seed)), universe: universe}
}

func (u *Uniform) Draw() int { return u.rng.Intn(u.universe) }

// Skewed implements the hot/cold generator of spec §4.9 and
// original_source/hotset.h's HotsetGen: with probability pHot, draw
// uniformly from the hot set [0, hotN); otherwise draw uniformly from the
// cold set [hotN, universe).
type Skewed struct {
	rng      *rand.Rand
	universe int
	hotN     int
	pHot     float64
}

// NewSkewed constructs a hot/cold generator. hotN is clamped to
// [1, universe] so the hot range is never empty, matching hotset.h's
// std::max(1, ...) guards. When hotN equals universe the cold range is
// empty and Draw always draws from the hot set.
func NewSkewed(universe, hotN int, pHot float64, seed int64) *Skewed {
	if universe < 1 {
		universe = 1
	}
	if hotN < 1 {
		hotN = 1
	}
	if hotN > universe {
		hotN = universe
	}
	return &Skewed{
		rng:      rand.New(rand.NewSource(seed)),
		universe: universe,
		hotN:     hotN,
		pHot:     pHot,
	}
}

func (s *Skewed) Draw() int {
	if s.rng.Float64() < s.pHot {
		return s.rng.Intn(s.hotN)
	}
	cold := s.universe - s.hotN
	if cold <= 0 {
		return s.rng.Intn(s.hotN)
	}
	return s.hotN + s.rng.Intn(cold)
}

// HotCount computes the hot-set size from hotFrac (spec §4.9's H,
// defaulting to 10%) applied to the build-phase key count, with a floor
// of 1 so "hot_frac so small that only one key is hot" (spec §8 boundary
// behavior) is representable rather than degenerating to an empty hot
// set.
func HotCount(universe int, hotFrac float64) int {
	n := int(float64(universe) * hotFrac)
	if n < 1 {
		n = 1
	}
	return n
}

// Mix draws the read/write coin for the mixed phase (spec §4.9: "flip a
// biased coin against read_ratio"). It carries its own private RNG,
// independent of whichever Generator supplies the key on a read.
type Mix struct {
	rng       *rand.Rand
	readRatio float64
}

func NewMix(readRatio float64, seed int64) *Mix {
	return &Mix{rng: rand.New(rand.NewSource(seed)), readRatio: readRatio}
}

// IsRead reports whether this op should be a read, per Bernoulli(read_ratio).
func (m *Mix) IsRead() bool { return m.rng.Float64() < m.readRatio }
