package floatkey

import "math"

// EncodeBitsV1 maps a raw IEEE-754 bit pattern to its order preserving key.
//
// The transform is bit exact and a bijection over all 2^64 patterns. It does
// not canonicalize, so -0.0 and +0.0 (and distinct NaN payloads) produce
// distinct keys. Use KeyV1 for the canonical V1 key.
func EncodeBitsV1(bits uint64) uint64 {
	if bits&SignMask != 0 {
		return ^bits
	}
	return bits ^ SignMask
}

// DecodeBitsV1 is the inverse of EncodeBitsV1.
func DecodeBitsV1(key uint64) uint64 {
	if key&SignMask != 0 {
		return key ^ SignMask
	}
	return ^key
}

// KeyV1 returns the V1 key for v as an unsigned integer.
//
// v is canonicalized first, see CanonicalV1.
func KeyV1(v float64) uint64 {
	return EncodeBitsV1(math.Float64bits(CanonicalV1(v)))
}

// FloatV1 returns the float encoded by a V1 key.
//
// For keys produced by KeyV1 this returns the canonical form of the original
// value: -0.0 comes back as +0.0 and NaN as the canonical NaN.
func FloatV1(key uint64) float64 {
	return math.Float64frombits(DecodeBitsV1(key))
}

// EncodeV1 returns the 8 byte, big-endian V1 key for v.
func EncodeV1(v float64) [KeyBytesV1]byte {
	var out [KeyBytesV1]byte
	writeU64BE(out[:], KeyV1(v))
	return out
}

// PutV1 writes the V1 key for v into dst[0:8].
func PutV1(dst []byte, v float64) error {
	if len(dst) < KeyBytesV1 {
		return ErrBadKeySize
	}
	writeU64BE(dst[:KeyBytesV1], KeyV1(v))
	return nil
}

// AppendV1 appends the V1 key for v to dst and returns the extended slice.
func AppendV1(dst []byte, v float64) []byte {
	k := EncodeV1(v)
	return append(dst, k[:]...)
}

// EncodeStrictV1 is EncodeV1 but returns ErrNaN rather than a canonical NaN key.
func EncodeStrictV1(v float64) ([KeyBytesV1]byte, error) {
	if math.IsNaN(v) {
		return [KeyBytesV1]byte{}, ErrNaN
	}
	return EncodeV1(v), nil
}

// DecodeV1 returns the float encoded by an 8 byte V1 key.
func DecodeV1(key []byte) (float64, error) {
	if len(key) != KeyBytesV1 {
		return 0, ErrBadKeySize
	}
	return FloatV1(readU64BE(key)), nil
}
