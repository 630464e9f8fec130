package core

import (
	"math"
	"testing"
)

func TestClampIndex(t *testing.T) {
	tests := []struct {
		name string
		i, n int
		want int
	}{
		{name: "inside", i: 2, n: 5, want: 2},
		{name: "below", i: -3, n: 5, want: 0},
		{name: "above", i: 9, n: 5, want: 4},
		{name: "last", i: 4, n: 5, want: 4},
		{name: "single", i: -1, n: 1, want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ClampIndex(tt.i, tt.n); got != tt.want {
				t.Fatalf("ClampIndex(%d, %d) = %d, want %d", tt.i, tt.n, got, tt.want)
			}
		})
	}
}

func TestNearlyEqual(t *testing.T) {
	if !NearlyEqual(1.0, 1.0+1e-13, 1e-12) {
		t.Fatal("expected values to be nearly equal")
	}
	if NearlyEqual(1.0, 1.1, 1e-3) {
		t.Fatal("expected values to differ")
	}
}

func TestToPixel(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want uint8
	}{
		{name: "integer", in: 100, want: 100},
		{name: "truncates", in: 57.9, want: 57},
		{name: "snaps below", in: 99.99999999999997, want: 100},
		{name: "snaps above", in: 12.000000000001, want: 12},
		{name: "negative zero", in: -1e-15, want: 0},
		{name: "negative", in: -12.7, want: 0},
		{name: "saturates", in: 300.2, want: 255},
		{name: "nan", in: math.NaN(), want: 0},
		{name: "inf", in: math.Inf(1), want: 255},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ToPixel(tt.in); got != tt.want {
				t.Fatalf("ToPixel(%v) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}
}

func TestTruncateTowardZero(t *testing.T) {
	if got := Truncate(-2.5); got != -2 {
		t.Fatalf("Truncate(-2.5) = %v, want -2", got)
	}
	if got := Truncate(2.5); got != 2 {
		t.Fatalf("Truncate(2.5) = %v, want 2", got)
	}
}
