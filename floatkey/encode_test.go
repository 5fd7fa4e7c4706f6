package floatkey

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var negZero = math.Copysign(0, -1)

func TestKeyV1KnownValues(t *testing.T) {
	tests := []struct {
		name string
		v    float64
		want uint64
	}{
		{"zero", 0, 0x8000000000000000},
		{"negative zero folds to zero", negZero, 0x8000000000000000},
		{"one", 1, 0xBFF0000000000000},
		{"minus one", -1, 0x400FFFFFFFFFFFFF},
		{"smallest subnormal", math.SmallestNonzeroFloat64, 0x8000000000000001},
		{"negative smallest subnormal", -math.SmallestNonzeroFloat64, 0x7FFFFFFFFFFFFFFE},
		{"max", math.MaxFloat64, 0xFFEFFFFFFFFFFFFF},
		{"lowest", -math.MaxFloat64, 0x0010000000000000},
		{"+inf", math.Inf(1), 0xFFF0000000000000},
		{"-inf", math.Inf(-1), 0x000FFFFFFFFFFFFF},
		{"nan", math.NaN(), 0xFFF8000000000000},
		{"negative nan", math.Float64frombits(0xFFF8000000000001), 0xFFF8000000000000},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equalf(t, tt.want, KeyV1(tt.v), "KeyV1(%v) = %x", tt.v, KeyV1(tt.v))
		})
	}
}

func TestEncodeV1IsBigEndianKey(t *testing.T) {
	k := EncodeV1(1)
	require.Equal(t, [KeyBytesV1]byte{0xBF, 0xF0, 0, 0, 0, 0, 0, 0}, k)

	k = EncodeV1(-1)
	require.Equal(t, [KeyBytesV1]byte{0x40, 0x0F, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, k)
}

func TestEncodeV1Deterministic(t *testing.T) {
	for _, v := range []float64{-5.12, -3.14, 0, 3.14, 5.12, math.Pi, -math.MaxFloat64} {
		a := EncodeV1(v)
		b := EncodeV1(v)
		require.Equal(t, a, b)
		require.Len(t, a[:], KeyBytesV1)
	}
}

func TestEncodeV1SmallSetSortsNumerically(t *testing.T) {
	values := []float64{3.14, -5.12, 5.12, 0.0, -3.14}
	SortByKeyV1(values)
	require.Equal(t, []float64{-5.12, -3.14, 0.0, 3.14, 5.12}, values)
}

func TestEncodeV1SignSeparation(t *testing.T) {
	negatives := []float64{math.Inf(-1), -math.MaxFloat64, -1, -math.SmallestNonzeroFloat64}
	nonNegatives := []float64{0, negZero, math.SmallestNonzeroFloat64, 1, math.MaxFloat64, math.Inf(1)}
	for _, a := range negatives {
		ka := EncodeV1(a)
		require.Equal(t, byte(0), ka[0]&0x80, "negative keys have the top bit clear")
		for _, b := range nonNegatives {
			kb := EncodeV1(b)
			require.Equalf(t, -1, CompareV1(ka[:], kb[:]), "%v should sort below %v", a, b)
		}
	}
}

func TestSignedZero(t *testing.T) {
	// The canonical key treats the zeros as the same number.
	pos := EncodeV1(0)
	neg := EncodeV1(negZero)
	require.Equal(t, pos, neg)

	// The raw transform keeps them distinct and adjacent, -0 first.
	rawPos := EncodeBitsV1(math.Float64bits(0))
	rawNeg := EncodeBitsV1(math.Float64bits(negZero))
	require.Equal(t, rawPos-1, rawNeg)

	// Decoding the canonical key gives +0.
	f, err := DecodeV1(neg[:])
	require.NoError(t, err)
	require.False(t, math.Signbit(f))
}

func TestInfinitiesAndNaNBracketFiniteRange(t *testing.T) {
	ninf := EncodeV1(math.Inf(-1))
	lowest := EncodeV1(-math.MaxFloat64)
	highest := EncodeV1(math.MaxFloat64)
	pinf := EncodeV1(math.Inf(1))
	nan := EncodeV1(math.NaN())

	require.Equal(t, -1, CompareV1(ninf[:], lowest[:]))
	require.Equal(t, -1, CompareV1(highest[:], pinf[:]))
	require.Equal(t, -1, CompareV1(pinf[:], nan[:]))
}

func TestEncodeStrictV1(t *testing.T) {
	_, err := EncodeStrictV1(math.NaN())
	require.ErrorIs(t, err, ErrNaN)

	k, err := EncodeStrictV1(2.5)
	require.NoError(t, err)
	require.Equal(t, EncodeV1(2.5), k)
}

func TestPutAndAppendV1(t *testing.T) {
	buf := make([]byte, 10)
	require.NoError(t, PutV1(buf, -2.5))
	want := EncodeV1(-2.5)
	require.Equal(t, want[:], buf[:KeyBytesV1])
	require.Equal(t, []byte{0, 0}, buf[KeyBytesV1:])

	require.ErrorIs(t, PutV1(make([]byte, 7), 1), ErrBadKeySize)

	prefix := []byte("idx/")
	out := AppendV1(prefix, -2.5)
	require.Len(t, out, len(prefix)+KeyBytesV1)
	require.Equal(t, want[:], out[len(prefix):])
}

func TestDecodeV1(t *testing.T) {
	for _, v := range []float64{-5.12, -1, 0, 1e-300, 42, math.Inf(1), math.Inf(-1)} {
		k := EncodeV1(v)
		got, err := DecodeV1(k[:])
		require.NoError(t, err)
		require.Equal(t, v, got)
	}

	k := EncodeV1(math.NaN())
	got, err := DecodeV1(k[:])
	require.NoError(t, err)
	require.True(t, math.IsNaN(got))
	require.Equal(t, CanonicalNaNBits, math.Float64bits(got))

	_, err = DecodeV1(make([]byte, 9))
	require.ErrorIs(t, err, ErrBadKeySize)
	_, err = DecodeV1(nil)
	require.ErrorIs(t, err, ErrBadKeySize)
}

func TestCanonicalV1(t *testing.T) {
	require.False(t, math.Signbit(CanonicalV1(negZero)))
	require.Equal(t, CanonicalNaNBits, math.Float64bits(CanonicalV1(math.Float64frombits(0x7FF0000000000001))))
	require.Equal(t, -3.5, CanonicalV1(-3.5))
	require.Equal(t, math.Inf(-1), CanonicalV1(math.Inf(-1)))
}
