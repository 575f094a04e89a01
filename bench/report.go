package bench

import (
	"fmt"
	"io"
	"text/tabwriter"
)

// WriteReport writes a human-readable table of rows to w, ahead of the
// CSV block — spec §4.9 calls for "a text report and a delimited CSV
// block." text/tabwriter (standard library) is used rather than a
// third-party table-rendering package: none appears in the retrieved
// corpus, and tabwriter already solves the one thing this report needs
// (column alignment).
func WriteReport(w io.Writer, rows []Row) {
	tw := tabwriter.NewWriter(w, 2, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "impl\tmode\tmix\tdist\tthreads\tops\tbuckets\ttime_s\tthr_mops\tspeedup")
	for _, r := range rows {
		fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%d\t%d\t%d\t%.4f\t%.2f\t%.2f\n",
			r.Impl, r.Mode, r.Mix, r.Dist, r.Threads, r.Ops, r.BucketCount,
			r.TimeS, r.ThroughputM, r.Speedup)
	}
	tw.Flush()
}
