package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestDistribute(t *testing.T) {
	tests := []struct {
		name      string
		available int
		gaps      int
		items     []DistItem
		want      []int
	}{
		{
			name:      "weights 1 and 3 split exactly",
			available: 100,
			items:     []DistItem{{Weight: 1}, {Weight: 3}},
			want:      []int{25, 75},
		},
		{
			name:      "remainder pixel goes to first weighted item",
			available: 100,
			items:     []DistItem{{Weight: 1}, {Weight: 1}, {Weight: 1}},
			want:      []int{34, 33, 33},
		},
		{
			name:      "two remainder pixels",
			available: 101,
			items:     []DistItem{{Weight: 1}, {Weight: 1}, {Weight: 1}},
			want:      []int{34, 34, 33},
		},
		{
			name:      "remainder skips zero weight items",
			available: 100,
			items:     []DistItem{{Base: 0}, {Weight: 1}, {Weight: 1}, {Weight: 1}},
			want:      []int{0, 34, 33, 33},
		},
		{
			name:      "bases and gaps are subtracted first",
			available: 300,
			gaps:      20,
			items:     []DistItem{{Base: 50}, {Base: 50}, {Weight: 1}},
			want:      []int{0, 0, 180},
		},
		{
			name:      "zero weight never grows",
			available: 500,
			items:     []DistItem{{Base: 10}},
			want:      []int{0},
		},
		{
			name:      "negative space gives nothing",
			available: 50,
			gaps:      10,
			items:     []DistItem{{Base: 60, Weight: 2}, {Weight: 1}},
			want:      []int{0, 0},
		},
		{
			name:      "negative available is treated as zero",
			available: -40,
			items:     []DistItem{{Weight: 1}},
			want:      []int{0},
		},
		{
			name: "empty",
			want: []int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Distribute(tt.available, tt.gaps, tt.items)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Distribute() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestDistributeConservesSpace(t *testing.T) {
	weights := [][]int{
		{1},
		{1, 2},
		{3, 0, 5},
		{1, 1, 1, 1, 1, 1, 1},
		{7, 11, 13},
		{0, 0},
	}
	for _, ws := range weights {
		for available := 0; available <= 257; available += 7 {
			items := make([]DistItem, len(ws))
			for i, w := range ws {
				items[i] = DistItem{Base: 3, Weight: w}
			}
			extra := Distribute(available, 0, items)

			space := max(available-3*len(ws), 0)
			sum := 0
			for i, e := range extra {
				if e < 0 {
					t.Fatalf("weights %v available %d: negative extra %d", ws, available, e)
				}
				if ws[i] == 0 && e != 0 {
					t.Errorf("weights %v available %d: zero-weight item got %d", ws, available, e)
				}
				sum += e
			}
			if sum > space {
				t.Errorf("weights %v available %d: sum %d exceeds space %d", ws, available, sum, space)
			}
		}
	}
}

func TestDistributeProportional(t *testing.T) {
	for space := 10; space <= 1000; space += 37 {
		for wa := 1; wa <= 5; wa++ {
			for wb := 1; wb <= 5; wb++ {
				extra := Distribute(space, 0, []DistItem{{Weight: wa}, {Weight: wb}})
				// extra(A)*wB should match extra(B)*wA within one pixel of weight.
				lhs := extra[0] * wb
				rhs := extra[1] * wa
				if diff := lhs - rhs; diff > wa+wb || diff < -(wa+wb) {
					t.Errorf("space=%d weights %d:%d got %v", space, wa, wb, extra)
				}
			}
		}
	}
}
