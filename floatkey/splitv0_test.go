package floatkey

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeSplitV0Layout(t *testing.T) {
	// 1.0: exponent 0x3FF, fraction 0
	require.Equal(t, [SplitKeyBytesV0]byte{0x03, 0xFF, 0, 0, 0, 0, 0, 0, 0}, EncodeSplitV0(1))

	// 1.5: fraction has only the top bit set, which lands in key[2] bit 3
	// because the 52 bit fraction occupies the low 52 bits of 7 bytes.
	require.Equal(t, [SplitKeyBytesV0]byte{0x03, 0xFF, 0x08, 0, 0, 0, 0, 0, 0}, EncodeSplitV0(1.5))

	// -1.0 is the bitwise complement of 1.0.
	require.Equal(t, [SplitKeyBytesV0]byte{0xFC, 0x00, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}, EncodeSplitV0(-1))
}

func TestEncodeSplitV0OrdersWithinASign(t *testing.T) {
	a, b := EncodeSplitV0(1), EncodeSplitV0(2)
	require.Equal(t, -1, bytes.Compare(a[:], b[:]))

	a, b = EncodeSplitV0(-2), EncodeSplitV0(-1)
	require.Equal(t, -1, bytes.Compare(a[:], b[:]))
}

// The split layout has no sign marker, so it sorts negatives above positives.
// This is why EncodeV1 replaced it.
func TestEncodeSplitV0MisordersAcrossSigns(t *testing.T) {
	neg, pos := EncodeSplitV0(-1), EncodeSplitV0(1)
	require.Equal(t, 1, bytes.Compare(neg[:], pos[:]))

	neg1, pos1 := EncodeV1(-1), EncodeV1(1)
	require.Equal(t, -1, CompareV1(neg1[:], pos1[:]))
}
