package floatkey

import "errors"

const (
	// KeyBytesV1 is the fixed width of a V1 float key.
	KeyBytesV1 = 8

	// SplitKeyBytesV0 is the width of the deprecated split field key.
	SplitKeyBytesV0 = 9

	// SignMask selects the IEEE-754 sign bit.
	SignMask uint64 = 1 << 63

	exponentShift        = 52
	exponentMask  uint64 = 0x7FF
	fractionMask  uint64 = (1 << exponentShift) - 1

	// CanonicalNaNBits is the bit pattern every NaN is folded to before
	// encoding a V1 key.
	CanonicalNaNBits uint64 = 0x7FF8000000000000
)

var (
	ErrBadKeySize     = errors.New("floatkey: key must be 8 bytes")
	ErrNaN            = errors.New("floatkey: NaN has no ordered key")
	ErrOrderViolation = errors.New("floatkey: key order differs from numeric order")
	ErrBadSampleCount = errors.New("floatkey: sample count must be > 0")
)
