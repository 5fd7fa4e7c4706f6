package floatkey

import "math"

// CanonicalV1 folds the values that have more than one bit pattern onto a
// single representative: -0.0 becomes +0.0 and every NaN becomes the quiet NaN
// CanonicalNaNBits. All other values are returned unchanged.
func CanonicalV1(v float64) float64 {
	if v != v {
		return math.Float64frombits(CanonicalNaNBits)
	}
	if v == 0 {
		return 0
	}
	return v
}
