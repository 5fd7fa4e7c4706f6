package keytable

import (
	"fmt"
	"math"

	"github.com/forestrie/go-floatkey/bloom"
	"github.com/forestrie/go-floatkey/floatkey"
)

// AppendV1 stores (key,value) as the next record and returns its ordinal.
//
// key must sort strictly after the last stored key. Because keys are
// canonical, -0.0 after +0.0 (or the reverse) is a duplicate.
func AppendV1(v View, key float64, value []byte) (uint32, error) {
	if math.IsNaN(key) {
		return 0, ErrNaNKey
	}
	if len(value) != ValueBytes {
		return 0, ErrBadValueSize
	}

	h, err := decodeHeaderV1(v.Table)
	if err != nil {
		return 0, err
	}
	if h.Count >= h.Capacity {
		return 0, ErrTableFull
	}

	enc := floatkey.EncodeV1(key)
	if h.Count > 0 {
		switch floatkey.CompareV1(enc[:], RecordKeyBytes(v.Table, h.Count-1)) {
		case 0:
			return 0, fmt.Errorf("%w: %v", ErrDuplicateKey, key)
		case -1:
			return 0, fmt.Errorf("%w: %v after %v", ErrOutOfOrderKey, key, RecordFloat(v.Table, h.Count-1))
		}
	}

	ordinal := h.Count
	RecordSet(v.Table, ordinal, readU64BE(enc[:]), value)

	if v.Filter != nil {
		if err := bloom.InsertV1(v.Filter, enc[:]); err != nil {
			return 0, err
		}
	}

	h.Count++
	encodeHeaderV1(v.Table, h)
	return ordinal, nil
}
