package bench

import (
	"bytes"
	"strings"
	"testing"
)

func TestWriteCSV_Shape(t *testing.T) {
	rows := []Row{
		{
			Impl: "coarse", Mode: ModeStrong, Mix: "80/20", Dist: DistUniform,
			Threads: 4, Ops: 1000, BucketCount: 16384, ReadRatio: 0.8, PHot: 0,
			TimeS: 0.5, ThroughputM: 2.0, Speedup: 1.5, SeqBaselineS: 0.75,
		},
	}

	var buf bytes.Buffer
	if err := WriteCSV(&buf, rows); err != nil {
		t.Fatalf("WriteCSV returned an error: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines (begin, header, one row, end), got %d:\n%s", len(lines), buf.String())
	}
	if lines[0] != "CSV_RESULTS_BEGIN" {
		t.Errorf("first line = %q, want CSV_RESULTS_BEGIN", lines[0])
	}
	if lines[len(lines)-1] != "CSV_RESULTS_END" {
		t.Errorf("last line = %q, want CSV_RESULTS_END", lines[len(lines)-1])
	}

	header := strings.Split(lines[1], ",")
	if len(header) != len(csvHeader) {
		t.Fatalf("header has %d columns, want %d", len(header), len(csvHeader))
	}
	for i, want := range csvHeader {
		if header[i] != want {
			t.Errorf("header[%d] = %q, want %q", i, header[i], want)
		}
	}

	fields := strings.Split(lines[2], ",")
	if len(fields) != len(csvHeader) {
		t.Fatalf("row has %d fields, want %d", len(fields), len(csvHeader))
	}
	if fields[0] != "coarse" {
		t.Errorf("impl column = %q, want coarse", fields[0])
	}
}

func TestMixLabel(t *testing.T) {
	cases := []struct {
		ratio float64
		want  string
	}{
		{0.8, "80/20"},
		{0.5, "50/50"},
		{0.95, "95/5"},
		{1.0, "100/0"},
		{0.0, "0/100"},
	}
	for _, c := range cases {
		if got := MixLabel(c.ratio); got != c.want {
			t.Errorf("MixLabel(%v) = %q, want %q", c.ratio, got, c.want)
		}
	}
}
