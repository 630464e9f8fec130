package core

import "math"

const (
	defaultEpsilon = 1e-12

	// SnapEpsilon is the distance to the nearest integer below which an
	// accumulated filter response is treated as that integer before
	// truncation. Sums of normalized float weights rarely land exactly on
	// integers, so a flat field would otherwise drift down by one level.
	SnapEpsilon = 1e-9
)

// ClampIndex limits i to the inclusive range [0, n-1].
// n must be positive.
func ClampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// NearlyEqual reports whether a and b are equal within eps.
func NearlyEqual(a, b, eps float64) bool {
	if eps <= 0 {
		eps = defaultEpsilon
	}

	diff := math.Abs(a - b)
	if diff <= eps {
		return true
	}

	largest := math.Max(math.Abs(a), math.Abs(b))
	if largest == 0 {
		return diff <= eps
	}

	return diff/largest <= eps
}

// Truncate drops the fractional part of v (toward zero). Values within
// SnapEpsilon of an integer are snapped to it first.
func Truncate(v float64) float64 {
	if r := math.Round(v); math.Abs(v-r) < SnapEpsilon {
		return r
	}
	return math.Trunc(v)
}

// ToPixel converts a filter response to an 8-bit sample: truncation toward
// zero, then saturation to [0, 255]. NaN maps to 0.
func ToPixel(v float64) uint8 {
	if math.IsNaN(v) {
		return 0
	}
	t := Truncate(v)
	if t <= 0 {
		return 0
	}
	if t >= 255 {
		return 255
	}
	return uint8(t)
}
