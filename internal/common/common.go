package common

import "math"

// MaxElems is the largest element count a magnitude may truncate to.
const MaxElems = math.MaxInt32

// TruncateMagnitude discards the fractional part of d to obtain an
// element count. NaN and non-positive magnitudes yield 0. Magnitudes
// at or beyond MaxElems clamp to MaxElems rather than hitting the
// platform-defined float-to-int overflow conversion.
func TruncateMagnitude(d float64) int {
	if math.IsNaN(d) || d <= 0 {
		return 0
	}
	if d >= MaxElems {
		return MaxElems
	}
	return int(d)
}

// SameBacking reports whether a and b share a backing array, by
// first-element address identity. Empty slices never share.
func SameBacking(a, b []int32) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}
	return &a[0] == &b[0]
}
