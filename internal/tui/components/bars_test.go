package components

import "testing"

func TestLayoutRow(t *testing.T) {
	tests := []struct {
		total, n int
		want     []int
	}{
		{10, 2, []int{5, 5}},
		{10, 3, []int{4, 3, 3}},
		{7, 3, []int{3, 2, 2}},
		{0, 0, nil},
	}
	for _, tt := range tests {
		got := LayoutRow(tt.total, tt.n)
		if len(got) != len(tt.want) {
			t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
			continue
		}
		sum := 0
		for i := range got {
			if got[i] != tt.want[i] {
				t.Errorf("LayoutRow(%d, %d) = %v, want %v", tt.total, tt.n, got, tt.want)
				break
			}
			sum += got[i]
		}
		if len(got) > 0 && sum != tt.total {
			t.Errorf("LayoutRow(%d, %d) sums to %d", tt.total, tt.n, sum)
		}
	}
}

func TestStackedBarEmpty(t *testing.T) {
	if got := StackedBar(nil, 20); got != "" {
		t.Errorf("StackedBar(nil) = %q, want empty", got)
	}
	if got := StackedBar([]float64{0, 0}, 20); got != "" {
		t.Errorf("StackedBar(zeros) = %q, want empty", got)
	}
}
