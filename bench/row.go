package bench

import (
	"fmt"
	"math"
)

// Row is one CSV row, exactly spec §6's column set.
type Row struct {
	Impl         string
	Mode         Mode
	Mix          string
	Dist         Dist
	Threads      int
	Ops          int
	BucketCount  int
	ReadRatio    float64
	PHot         float64
	TimeS        float64
	ThroughputM  float64
	Speedup      float64
	SeqBaselineS float64
}

// MixLabel renders a read_ratio as the human-readable label spec §6 shows
// in examples ("80/20", "50/50", "95/5"): round to whole percent and join
// the read/write split.
func MixLabel(readRatio float64) string {
	readPct := int(math.Round(readRatio * 100))
	writePct := 100 - readPct
	return fmt.Sprintf("%d/%d", readPct, writePct)
}
