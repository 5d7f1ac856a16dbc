package histogram

import (
	"reflect"
	"testing"
)

func TestApplyFilterIdentity(t *testing.T) {
	raw := []int{5, 150, 300, 999, 1000}
	got := ApplyFilter(raw, All())
	if !reflect.DeepEqual(got, raw) {
		t.Fatalf("identity filter changed input: got %v, want %v", got, raw)
	}
}

func TestApplyFilterOrderPreservingSubsequence(t *testing.T) {
	raw := []int{900, 5, 150, 5, 300, 999, 1000}
	got := ApplyFilter(raw, Range{Min: 100, Max: 950})
	want := []int{900, 150, 300}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("ApplyFilter = %v, want %v", got, want)
	}
}

func TestApplyFilterInvertedRange(t *testing.T) {
	got := ApplyFilter([]int{1, 2, 3}, Range{Min: 10, Max: 5})
	if len(got) != 0 {
		t.Fatalf("inverted range should match nothing, got %v", got)
	}
}

func TestApplyFilterDoesNotMutateRaw(t *testing.T) {
	raw := []int{1, 2, 3, 4}
	ApplyFilter(raw, Range{Min: 2, Max: 3})
	if !reflect.DeepEqual(raw, []int{1, 2, 3, 4}) {
		t.Fatalf("raw lengths mutated: %v", raw)
	}
}

func TestComputeBinsEmpty(t *testing.T) {
	if bins := ComputeBins(nil); bins != nil {
		t.Fatalf("expected nil bins for empty input, got %v", bins)
	}
	if bins := ComputeBins([]int{}); bins != nil {
		t.Fatalf("expected nil bins for empty slice, got %v", bins)
	}
}

func TestComputeBinsWorkedExample(t *testing.T) {
	// maxLen=1000 -> binWidth=100, binCount=11; 1000 clamps into bin 10.
	bins := ComputeBins([]int{5, 150, 300, 999, 1000})

	if len(bins) != 11 {
		t.Fatalf("expected 11 bins, got %d", len(bins))
	}
	if bins[0].Label != "0-99" || bins[0].Count != 1 {
		t.Errorf("bin 0 = %+v, want {0-99 1}", bins[0])
	}
	if bins[1].Label != "100-199" || bins[1].Count != 1 {
		t.Errorf("bin 1 = %+v, want {100-199 1}", bins[1])
	}
	if bins[3].Label != "300-399" || bins[3].Count != 1 {
		t.Errorf("bin 3 = %+v, want {300-399 1}", bins[3])
	}
	if bins[9].Label != "900-999" || bins[9].Count != 1 {
		t.Errorf("bin 9 = %+v, want {900-999 1}", bins[9])
	}
	if bins[10].Label != "1000-1099" || bins[10].Count != 1 {
		t.Errorf("bin 10 = %+v, want {1000-1099 1}", bins[10])
	}
}

func TestComputeBinsSingleLength(t *testing.T) {
	// A single value must still yield a valid non-degenerate bin.
	bins := ComputeBins([]int{7})
	if len(bins) == 0 {
		t.Fatal("expected bins for single-length input")
	}
	if bins[0].Label != "0-0" {
		t.Errorf("first bin label = %q, want 0-0", bins[0].Label)
	}
	total := 0
	for _, b := range bins {
		total += b.Count
	}
	if total != 1 {
		t.Fatalf("bin counts sum to %d, want 1", total)
	}
}

func TestComputeBinsZeroLengthRecords(t *testing.T) {
	// maxLen=0 exercises the width floor of 1.
	bins := ComputeBins([]int{0, 0, 0})
	if len(bins) != 1 {
		t.Fatalf("expected 1 bin, got %d", len(bins))
	}
	if bins[0].Label != "0-0" || bins[0].Count != 3 {
		t.Fatalf("bin = %+v, want {0-0 3}", bins[0])
	}
}

func TestComputeBinsNoDataLoss(t *testing.T) {
	inputs := [][]int{
		{5, 150, 300, 999, 1000},
		{1},
		{10, 10, 10, 10},
		{3, 1999, 250, 777, 42, 42},
	}
	for _, lengths := range inputs {
		total := 0
		for _, b := range ComputeBins(lengths) {
			total += b.Count
		}
		if total != len(lengths) {
			t.Errorf("ComputeBins(%v): counts sum to %d, want %d", lengths, total, len(lengths))
		}
	}
}

func TestComputeBinsIdempotent(t *testing.T) {
	lengths := []int{5, 150, 300, 999, 1000}
	first := ComputeBins(lengths)
	second := ComputeBins(lengths)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("ComputeBins not idempotent: %v vs %v", first, second)
	}
}

func TestComputeRecomputesFromRaw(t *testing.T) {
	raw := []int{5, 150, 300, 999, 1000}

	narrow := Compute(raw, Range{Min: 100, Max: 500})
	if want := []int{150, 300}; !reflect.DeepEqual(narrow.Lengths, want) {
		t.Fatalf("narrow snapshot lengths = %v, want %v", narrow.Lengths, want)
	}

	// Widening the range again must restore everything: filtering is
	// non-destructive.
	wide := Compute(raw, All())
	if !reflect.DeepEqual(wide.Lengths, raw) {
		t.Fatalf("wide snapshot lengths = %v, want %v", wide.Lengths, raw)
	}
	if len(wide.Bins) != 11 {
		t.Fatalf("wide snapshot has %d bins, want 11", len(wide.Bins))
	}
}

func TestRangeString(t *testing.T) {
	if got := All().String(); got != "0-∞" {
		t.Errorf("All().String() = %q", got)
	}
	if got := (Range{Min: 100, Max: 500}).String(); got != "100-500" {
		t.Errorf("bounded String() = %q", got)
	}
}
