package floatkey

import (
	"bytes"
	"fmt"
	"math"
	"math/rand/v2"
	"slices"
)

type keyed struct {
	value float64
	key   [KeyBytesV1]byte
}

// SortByKeyV1 sorts values, in place, by their encoded V1 keys.
//
// The sort looks only at the key bytes, never at the floats, so the result is
// the order a byte-keyed store would return.
func SortByKeyV1(values []float64) {
	items := make([]keyed, len(values))
	for i, v := range values {
		items[i] = keyed{value: v, key: EncodeV1(v)}
	}
	slices.SortStableFunc(items, func(a, b keyed) int {
		return bytes.Compare(a.key[:], b.key[:])
	})
	for i := range items {
		values[i] = items[i].value
	}
}

// CheckOrderV1 sorts one copy of values numerically and another by key, and
// returns ErrOrderViolation if the two orders differ. values is not modified.
//
// NaN is unordered and is rejected with ErrNaN.
func CheckOrderV1(values []float64) error {
	for i, v := range values {
		if math.IsNaN(v) {
			return fmt.Errorf("%w: position %d", ErrNaN, i)
		}
	}

	byValue := slices.Clone(values)
	slices.Sort(byValue)

	byKey := slices.Clone(values)
	SortByKeyV1(byKey)

	for i := range byValue {
		// -0.0 == +0.0 here, as it is for the keys.
		if byValue[i] != byKey[i] {
			return fmt.Errorf(
				"%w: position %d: numeric=%v, key=%v",
				ErrOrderViolation, i, byValue[i], byKey[i])
		}
	}
	return nil
}

// UniformSample returns n values drawn uniformly from [0,1).
func UniformSample(r *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = r.Float64()
	}
	return out
}

// FiniteSample returns n finite values drawn from uniformly random bit
// patterns, so every sign and exponent is represented.
func FiniteSample(r *rand.Rand, n int) []float64 {
	out := make([]float64, 0, n)
	for len(out) < n {
		f := math.Float64frombits(r.Uint64())
		if math.IsNaN(f) || math.IsInf(f, 0) {
			continue
		}
		out = append(out, f)
	}
	return out
}

// TrialV1 draws one sample of n values and checks it with CheckOrderV1.
//
// fullRange selects FiniteSample, otherwise UniformSample is used.
func TrialV1(r *rand.Rand, n int, fullRange bool) error {
	if n <= 0 {
		return ErrBadSampleCount
	}
	var values []float64
	if fullRange {
		values = FiniteSample(r, n)
	} else {
		values = UniformSample(r, n)
	}
	return CheckOrderV1(values)
}
