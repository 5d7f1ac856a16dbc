package tui

import (
	"strings"
	"testing"

	"github.com/seqwell/seqscope/internal/histogram"
)

func TestRenderHistogramShowsLabelsAndCounts(t *testing.T) {
	bins := histogram.ComputeBins([]int{5, 150, 300, 999, 1000})
	out := renderHistogram(bins, 80, 20)

	lines := strings.Split(out, "\n")
	if len(lines) != 11 {
		t.Fatalf("expected 11 lines, got %d", len(lines))
	}
	if !strings.Contains(lines[0], "0-99") {
		t.Errorf("first line missing label 0-99: %q", lines[0])
	}
	if !strings.Contains(lines[10], "1000-1099") {
		t.Errorf("last line missing label 1000-1099: %q", lines[10])
	}
	for _, idx := range []int{0, 1, 3, 9, 10} {
		if !strings.Contains(lines[idx], "█") {
			t.Errorf("line %d should have a bar: %q", idx, lines[idx])
		}
	}
	// Empty bins get no bar.
	if strings.Contains(lines[2], "█") {
		t.Errorf("line 2 should be empty: %q", lines[2])
	}
}

func TestRenderHistogramEmpty(t *testing.T) {
	out := renderHistogram(nil, 80, 20)
	if strings.Contains(out, "█") {
		t.Fatalf("empty histogram should have no bars: %q", out)
	}
	if out == "" {
		t.Fatal("empty histogram should render a placeholder")
	}
}

func TestRenderHistogramClampsToHeight(t *testing.T) {
	bins := histogram.ComputeBins([]int{5, 150, 300, 999, 1000})
	out := renderHistogram(bins, 80, 4)
	if got := len(strings.Split(out, "\n")); got != 4 {
		t.Fatalf("expected 4 lines, got %d", got)
	}
}

func TestRenderHistogramNonZeroCountGetsVisibleBar(t *testing.T) {
	// One record among many: the scaled bar must not round to nothing.
	lengths := make([]int, 1000)
	for i := range lengths {
		lengths[i] = 5
	}
	lengths = append(lengths, 990)

	out := renderHistogram(histogram.ComputeBins(lengths), 40, 20)
	lines := strings.Split(out, "\n")
	last := lines[len(lines)-1] // the clamped top bin holds the single 990
	if !strings.Contains(last, "█") {
		t.Fatalf("small count should still render one bar cell: %q", last)
	}
}
