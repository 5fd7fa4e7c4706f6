package floatkey

import (
	"encoding/binary"
	"math"
)

// EncodeSplitV0 returns the legacy 9 byte split field key for v.
//
// Layout:
//
//	key[0:2] exponent (big-endian, 11 significant bits)
//	key[2:9] fraction (low 7 bytes of the big-endian u64, top byte always 0)
//
// When the sign bit is set every byte is inverted, otherwise the bytes are
// left as is. Nothing marks positive magnitudes above negative ones, so every
// negative key sorts above every non-negative key.
//
// Deprecated: use EncodeV1. This layout does not preserve order across signs.
func EncodeSplitV0(v float64) [SplitKeyBytesV0]byte {
	var out [SplitKeyBytesV0]byte

	bits := math.Float64bits(v)
	exponent := uint16((bits >> exponentShift) & exponentMask)
	fraction := bits & fractionMask

	binary.BigEndian.PutUint16(out[0:2], exponent)
	var f [8]byte
	writeU64BE(f[:], fraction)
	copy(out[2:], f[1:])

	if bits&SignMask != 0 {
		for i := range out {
			out[i] = ^out[i]
		}
	}
	return out
}
