package lottery

import (
	"math"
	"testing"
)

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestBuildOddsTableDefaults(t *testing.T) {
	want := []float64{60.0, 24.0, 9.6, 3.84, 1.536, 0.6144}

	got := BuildOddsTable(DefaultSlots)
	if len(got) != len(want) {
		t.Fatalf("BuildOddsTable(%d) returned %d slots, want %d", DefaultSlots, len(got), len(want))
	}
	for i := range want {
		if !almostEqual(got[i], want[i]) {
			t.Errorf("slot %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestBuildOddsTableDecay(t *testing.T) {
	table := BuildOddsTable(12)

	if !almostEqual(table[0], DefaultBaseOdds) {
		t.Fatalf("slot 0 = %v, want %v", table[0], DefaultBaseOdds)
	}
	for i := 1; i < len(table); i++ {
		if table[i] <= 0 {
			t.Errorf("slot %d = %v, want positive", i, table[i])
		}
		if table[i] >= table[i-1] {
			t.Errorf("slot %d = %v, not below slot %d = %v", i, table[i], i-1, table[i-1])
		}
		if ratio := table[i-1] / table[i]; !almostEqual(ratio, DefaultDropFactor) {
			t.Errorf("slot %d/%d ratio = %v, want %v", i-1, i, ratio, DefaultDropFactor)
		}
	}
}

func TestBuildOddsTableEmpty(t *testing.T) {
	for _, n := range []int{0, -1, -6} {
		if got := BuildOddsTable(n); len(got) != 0 {
			t.Errorf("BuildOddsTable(%d) = %v, want empty", n, got)
		}
	}
}

func TestDisplayOdds(t *testing.T) {
	tests := []struct {
		weight float64
		want   float64
	}{
		{60.0, 60.0},
		{9.6, 9.6},
		{1.536, 1.54},
		{0.6144, 0.61},
		{0.246, 0.25},
	}

	for _, tt := range tests {
		if got := DisplayOdds(tt.weight); !almostEqual(got, tt.want) {
			t.Errorf("DisplayOdds(%v) = %v, want %v", tt.weight, got, tt.want)
		}
	}
}

func TestDisplayPercent(t *testing.T) {
	table := BuildOddsTable(DefaultSlots)
	total := TotalWeight(table)

	if got := DisplayPercent(table[0], total); !almostEqual(got, 60.25) {
		t.Errorf("DisplayPercent(%v, %v) = %v, want 60.25", table[0], total, got)
	}
	if got := DisplayPercent(10, 0); got != 0 {
		t.Errorf("DisplayPercent with zero total = %v, want 0", got)
	}
}

func TestTotalWeight(t *testing.T) {
	if got := TotalWeight(nil); got != 0 {
		t.Errorf("TotalWeight(nil) = %v, want 0", got)
	}
	if got := TotalWeight([]float64{1.5, 2.5, 6}); !almostEqual(got, 10) {
		t.Errorf("TotalWeight = %v, want 10", got)
	}
}
