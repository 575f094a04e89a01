package bench

import "testing"

func TestConfig_Validate(t *testing.T) {
	base := Config{
		Impl:        "coarse",
		Threads:     4,
		Ops:         1000,
		BucketCount: 16,
		ReadRatio:   0.8,
		Dist:        DistUniform,
	}

	if err := base.Validate(); err != nil {
		t.Fatalf("valid config rejected: %v", err)
	}

	seq := base
	seq.Impl = "sequential"
	seq.Threads = 1
	if err := seq.Validate(); err != nil {
		t.Fatalf("single-threaded sequential config rejected: %v", err)
	}

	cases := []struct {
		name string
		mut  func(c Config) Config
	}{
		{"zero threads", func(c Config) Config { c.Threads = 0; return c }},
		{"zero ops", func(c Config) Config { c.Ops = 0; return c }},
		{"zero bucket count", func(c Config) Config { c.BucketCount = 0; return c }},
		{"read ratio above 1", func(c Config) Config { c.ReadRatio = 1.5; return c }},
		{"read ratio below 0", func(c Config) Config { c.ReadRatio = -0.1; return c }},
		{"unknown impl", func(c Config) Config { c.Impl = "nonexistent"; return c }},
		{"skew p_hot out of range", func(c Config) Config {
			c.Dist = DistSkew
			c.PHot = 1.5
			return c
		}},
		{"sequential with threads > 1", func(c Config) Config {
			c.Impl = "sequential"
			c.Threads = 2
			return c
		}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.mut(base).Validate(); err == nil {
				t.Fatalf("expected Validate to reject this configuration")
			}
		})
	}
}

func TestDefaultMatrix_MatchesLiteralDefaults(t *testing.T) {
	m := DefaultMatrix()
	if len(m.ThreadsVec) != 5 {
		t.Errorf("ThreadsVec has %d entries, want 5", len(m.ThreadsVec))
	}
	if m.StrongOps != 2_000_000 {
		t.Errorf("StrongOps = %d, want 2000000", m.StrongOps)
	}
	if m.WeakOpsPerThread != 250_000 {
		t.Errorf("WeakOpsPerThread = %d, want 250000", m.WeakOpsPerThread)
	}
	if len(m.Mixes) != 2 || len(m.BucketsVec) != 4 || len(m.PHots) != 3 {
		t.Errorf("sweep dimensions = mixes:%d buckets:%d p_hots:%d, want 2,4,3",
			len(m.Mixes), len(m.BucketsVec), len(m.PHots))
	}
	if m.HotFrac != 0.10 {
		t.Errorf("HotFrac = %v, want 0.10", m.HotFrac)
	}
}
