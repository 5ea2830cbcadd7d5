package core

import "testing"

func TestTickRate(t *testing.T) {
	tests := []struct {
		rate, expected int
	}{
		{0, DefaultTickRate},
		{-30, DefaultTickRate},
		{1, 1},
		{60, 60},
		{MaxTickRate, MaxTickRate},
		{2_000_000_000, MaxTickRate},
	}

	for _, tc := range tests {
		if got := TickRate(tc.rate); got != tc.expected {
			t.Errorf("TickRate(%d) = %d, expected %d", tc.rate, got, tc.expected)
		}
	}
}
