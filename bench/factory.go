package bench

import (
	"sort"

	"github.com/chtbench/conchash"
)

// factories maps each --impl name (spec §6's process surface) to a
// constructor closing over a Config. Registered in a map rather than a
// switch so implNames() (used in Validate's error message) and the
// matrix runner can both enumerate it.
var factories = map[string]func(c Config) chash.Table[int, int]{
	"sequential": func(c Config) chash.Table[int, int] {
		return chash.NewSequentialTable[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
	"coarse": func(c Config) chash.Table[int, int] {
		return chash.NewCoarseTable[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
	"coarse-padded": func(c Config) chash.Table[int, int] {
		return chash.NewCoarseTablePadded[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
	"fine": func(c Config) chash.Table[int, int] {
		return chash.NewFineTable[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
	"fine-padded": func(c Config) chash.Table[int, int] {
		return chash.NewFineTablePadded[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
	"segment": func(c Config) chash.Table[int, int] {
		segments := c.Segments
		if segments < 1 {
			segments = 128
		}
		return chash.NewSegmentTable[int, int](c.BucketCount, segments, chash.DefaultHasher[int]())
	},
	"segment-padded": func(c Config) chash.Table[int, int] {
		segments := c.Segments
		if segments < 1 {
			segments = 128
		}
		return chash.NewSegmentTablePadded[int, int](c.BucketCount, segments, chash.DefaultHasher[int]())
	},
	"striped": func(c Config) chash.Table[int, int] {
		cfg := chash.DefaultStripedConfig()
		if c.Segments > 0 {
			cfg.Segments = c.Segments
		}
		if c.Stripes > 0 {
			cfg.MaxStripes = c.Stripes
		}
		if c.Factor > 0 {
			cfg.Factor = c.Factor
		}
		cfg.ExpectedThreads = c.ExpectedThreads
		if cfg.ExpectedThreads < 1 {
			cfg.ExpectedThreads = c.Threads
		}
		return chash.NewStripedTable[int, int](c.BucketCount, cfg, chash.DefaultHasher[int]())
	},
	"lockfree": func(c Config) chash.Table[int, int] {
		return chash.NewLockFreeTable[int, int](c.BucketCount, chash.DefaultHasher[int]())
	},
}

func implNames() []string {
	names := make([]string, 0, len(factories))
	for n := range factories {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// ImplNames is the exported, sorted list of valid --impl values.
func ImplNames() []string { return implNames() }

// newTable constructs the table variant named by c.Impl. Callers must call
// c.Validate() first; newTable panics on an unknown impl rather than
// re-deriving the error, since Validate is the single source of truth for
// "invalid configuration."
func newTable(c Config) chash.Table[int, int] {
	return factories[c.Impl](c)
}
