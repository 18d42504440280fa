package numeric

import (
	"math"
	"testing"
)

func TestAmplitudeDB(t *testing.T) {
	tests := []struct {
		in   float64
		want float64
	}{
		{1, 0},
		{10, 20},
		{0.1, -20},
		{-1, 0}, // magnitude only
		{0, -300},
		{1e-20, -300},
	}

	for _, tt := range tests {
		if got := AmplitudeDB(tt.in); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("AmplitudeDB(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestNearlyEqual(t *testing.T) {
	tests := []struct {
		a, b, eps float64
		want      bool
	}{
		{1, 1, 1e-12, true},
		{1, 1 + 1e-13, 1e-12, true},
		{1, 1.1, 1e-12, false},
		{0, 0, 0, true},
		{1e6, 1e6 * (1 + 1e-10), 1e-9, true},
		{1e6, 2e6, 1e-9, false},
	}

	for _, tt := range tests {
		if got := NearlyEqual(tt.a, tt.b, tt.eps); got != tt.want {
			t.Errorf("NearlyEqual(%v, %v, %v) = %v, want %v", tt.a, tt.b, tt.eps, got, tt.want)
		}
	}
}
