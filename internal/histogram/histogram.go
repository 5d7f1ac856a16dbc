// Package histogram computes length-distribution summaries for sequence
// records. All functions are pure: a snapshot is always derived from the
// raw lengths of the selected file, never from a previous snapshot, which
// is what keeps filter changes reversible without re-reading files.
package histogram

import "fmt"

// Unbounded is the sentinel for a filter range with no upper bound.
const Unbounded = int(^uint(0) >> 1)

// targetBins is the nominal number of buckets ComputeBins aims for.
// The actual count can exceed it; see ComputeBins.
const targetBins = 10

// Range is an inclusive [Min, Max] bound on record lengths.
// Max == Unbounded means no upper bound. An inverted range (Min > Max)
// is not an error; it simply matches nothing.
type Range struct {
	Min int
	Max int
}

// All returns the identity range that every length satisfies.
func All() Range {
	return Range{Min: 0, Max: Unbounded}
}

// Contains reports whether a length falls inside the range.
func (r Range) Contains(length int) bool {
	return length >= r.Min && length <= r.Max
}

// String renders the range the way the TUI displays it, with an
// infinity sign for an unbounded max.
func (r Range) String() string {
	if r.Max == Unbounded {
		return fmt.Sprintf("%d-∞", r.Min)
	}
	return fmt.Sprintf("%d-%d", r.Min, r.Max)
}

// Bin is one histogram bucket: a contiguous length interval and the
// number of records whose length falls in it.
type Bin struct {
	Label string
	Count int
}

// Snapshot is the full recomputed analytics state for one file under one
// filter range. It is the sole input to rendering.
type Snapshot struct {
	// Lengths is the order-preserving subsequence of the raw lengths
	// that satisfy the filter range.
	Lengths []int
	// Bins is the histogram computed from Lengths.
	Bins []Bin
}

// ApplyFilter returns the lengths within r, preserving input order.
// It always starts from raw; callers must not feed a previously
// filtered slice back in.
func ApplyFilter(raw []int, r Range) []int {
	var kept []int
	for _, length := range raw {
		if r.Contains(length) {
			kept = append(kept, length)
		}
	}
	return kept
}

// ComputeBins buckets lengths into roughly ten equal-width bins.
//
// The width is ceil(maxLen/10), floored at 1 so degenerate inputs still
// get a non-zero-width bin. One extra bucket is allocated beyond
// ceil(maxLen/width) so the maximum value cannot be lost when integer
// rounding of the width puts it on a boundary; any residual overflow is
// clamped into the last bucket. The bucket count is therefore nominal,
// not exact, and downstream output depends on keeping it that way.
func ComputeBins(lengths []int) []Bin {
	if len(lengths) == 0 {
		return nil
	}

	maxLen := lengths[0]
	for _, length := range lengths[1:] {
		if length > maxLen {
			maxLen = length
		}
	}

	binWidth := (maxLen + targetBins - 1) / targetBins
	if binWidth < 1 {
		binWidth = 1
	}
	binCount := (maxLen+binWidth-1)/binWidth + 1

	counts := make([]int, binCount)
	for _, length := range lengths {
		idx := length / binWidth
		if idx > binCount-1 {
			idx = binCount - 1
		}
		counts[idx]++
	}

	bins := make([]Bin, binCount)
	for i, count := range counts {
		bins[i] = Bin{
			Label: fmt.Sprintf("%d-%d", i*binWidth, (i+1)*binWidth-1),
			Count: count,
		}
	}
	return bins
}

// Compute is the single recompute step: filter raw under r, then bin the
// result. It is total and idempotent, so re-running it with unchanged
// inputs reproduces the identical snapshot.
func Compute(raw []int, r Range) Snapshot {
	filtered := ApplyFilter(raw, r)
	return Snapshot{
		Lengths: filtered,
		Bins:    ComputeBins(filtered),
	}
}
