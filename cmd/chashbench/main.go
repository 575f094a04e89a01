// Command chashbench is the benchmark process of spec §6: it selects one
// table variant via --impl (always required) and runs either one
// configuration or, with --matrix, the full configuration sweep for that
// variant, then prints a text report followed by a
// CSV_RESULTS_BEGIN/CSV_RESULTS_END block on stdout.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/chtbench/conchash/bench"
	"github.com/chtbench/conchash/internal/logging"
)

func main() {
	app := &cli.Command{
		Name:  "chashbench",
		Usage: "drive concurrent hash table variants through build/mixed workloads and emit CSV metrics",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "impl",
				Usage: fmt.Sprintf("table variant to benchmark, one of: %v", bench.ImplNames()),
			},
			&cli.BoolFlag{
				Name:  "matrix",
				Usage: "run the full sweep (every thread/bucket/mix/dist/p_hot combination) instead of a single configuration",
			},
			&cli.IntFlag{
				Name:  "threads",
				Value: 4,
				Usage: "worker count for single-configuration mode",
			},
			&cli.IntFlag{
				Name:  "ops",
				Value: 2_000_000,
				Usage: "total operations (strong mode) for single-configuration mode",
			},
			&cli.IntFlag{
				Name:  "bucket-count",
				Value: 16384,
				Usage: "initial bucket count",
			},
			&cli.Float64Flag{
				Name:  "read-ratio",
				Value: 0.8,
				Usage: "fraction of reads in the mixed phase",
			},
			&cli.StringFlag{
				Name:  "dist",
				Value: "uniform",
				Usage: "uniform or skew",
			},
			&cli.Float64Flag{
				Name:  "p-hot",
				Value: 0.9,
				Usage: "skew concentration when dist=skew",
			},
			&cli.Float64Flag{
				Name:  "hot-frac",
				Value: 0.10,
				Usage: "hot-set size as a fraction of the build-phase key count",
			},
			&cli.IntFlag{
				Name:  "segments",
				Value: 128,
				Usage: "segment count for the segment/striped variants",
			},
			&cli.IntFlag{
				Name:  "stripes",
				Value: 32,
				Usage: "max stripes per segment for the striped variant",
			},
			&cli.IntFlag{
				Name:  "factor",
				Value: 2,
				Usage: "stripe factor F for the striped variant (K ~ next_pow2(expected_threads/F))",
			},
			&cli.IntFlag{
				Name:  "expected-threads",
				Usage: "expected thread count used to size the striped variant's stripes (defaults to --threads)",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Value: "info",
				Usage: "trace, debug, info, warn, error",
			},
			&cli.StringFlag{
				Name:  "log-format",
				Value: "console",
				Usage: "console or json",
			},
		},
		Action: run,
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cmd *cli.Command) error {
	if err := logging.Configure(cmd.String("log-level"), cmd.String("log-format")); err != nil {
		return cli.Exit(err, 1)
	}
	ctx = logging.With(ctx, *logging.Default())

	impl := cmd.String("impl")
	if impl == "" {
		return cli.Exit(fmt.Sprintf("--impl is required, one of: %v", bench.ImplNames()), 1)
	}

	var rows []bench.Row
	if cmd.Bool("matrix") {
		m := bench.DefaultMatrix()
		if cmd.IsSet("segments") {
			m.Segments = int(cmd.Int("segments"))
		}
		if cmd.IsSet("stripes") {
			m.Stripes = int(cmd.Int("stripes"))
		}
		if cmd.IsSet("factor") {
			m.Factor = int(cmd.Int("factor"))
		}
		if cmd.IsSet("hot-frac") {
			m.HotFrac = cmd.Float64("hot-frac")
		}
		rows = bench.RunMatrix(ctx, impl, m)
	} else {
		expectedThreads := int(cmd.Int("expected-threads"))
		if expectedThreads == 0 {
			expectedThreads = int(cmd.Int("threads"))
		}
		c := bench.Config{
			Impl:            impl,
			Mode:            bench.ModeStrong,
			Threads:         int(cmd.Int("threads")),
			Ops:             int(cmd.Int("ops")),
			BucketCount:     int(cmd.Int("bucket-count")),
			ReadRatio:       cmd.Float64("read-ratio"),
			Dist:            bench.Dist(cmd.String("dist")),
			PHot:            cmd.Float64("p-hot"),
			HotFrac:         cmd.Float64("hot-frac"),
			Segments:        int(cmd.Int("segments")),
			Stripes:         int(cmd.Int("stripes")),
			Factor:          int(cmd.Int("factor")),
			ExpectedThreads: expectedThreads,
		}
		if err := c.Validate(); err != nil {
			return cli.Exit(err, 1)
		}
		row, ok := bench.RunConfig(c, bench.NewBaselineCache())
		if !ok {
			return cli.Exit("run failed: non-finite time or table-size mismatch", 1)
		}
		rows = []bench.Row{row}
	}

	bench.WriteReport(os.Stdout, rows)
	fmt.Println()
	return bench.WriteCSV(os.Stdout, rows)
}
