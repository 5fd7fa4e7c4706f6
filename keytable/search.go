package keytable

import (
	"bytes"
	"math"
	"sort"

	"github.com/forestrie/go-floatkey/bloom"
	"github.com/forestrie/go-floatkey/floatkey"
)

// LowerBoundV1 returns the ordinal of the first record whose key is >= key,
// or the record count if there is none.
func LowerBoundV1(v View, key float64) (uint32, error) {
	if math.IsNaN(key) {
		return 0, ErrNaNKey
	}
	count, err := v.Count()
	if err != nil {
		return 0, err
	}
	enc := floatkey.EncodeV1(key)
	return lowerBound(KeyFields(v, count), enc[:]), nil
}

// LookupV1 returns the value stored for key.
//
// If v has a filter it is consulted first, and a "definitely not present"
// answer returns without searching the records.
func LookupV1(v View, key float64) ([ValueBytes]byte, bool, error) {
	if math.IsNaN(key) {
		return [ValueBytes]byte{}, false, ErrNaNKey
	}
	enc := floatkey.EncodeV1(key)

	if v.Filter != nil {
		maybe, err := bloom.MaybeContainsV1(v.Filter, enc[:])
		if err != nil {
			return [ValueBytes]byte{}, false, err
		}
		if !maybe {
			return [ValueBytes]byte{}, false, nil
		}
	}

	count, err := v.Count()
	if err != nil {
		return [ValueBytes]byte{}, false, err
	}
	keys := KeyFields(v, count)
	i := lowerBound(keys, enc[:])
	if i == keys.Count || !bytes.Equal(keys.Key(i), enc[:]) {
		return [ValueBytes]byte{}, false, nil
	}
	return RecordValue(v.Table, i), true, nil
}

// RangeV1 returns the ordinals [first, end) of the records whose keys lie in
// the half open interval [lo, hi). An empty or inverted interval returns
// first == end.
func RangeV1(v View, lo, hi float64) (first uint32, end uint32, err error) {
	if math.IsNaN(lo) || math.IsNaN(hi) {
		return 0, 0, ErrNaNKey
	}
	count, err := v.Count()
	if err != nil {
		return 0, 0, err
	}
	encLo := floatkey.EncodeV1(lo)
	encHi := floatkey.EncodeV1(hi)

	keys := KeyFields(v, count)
	first = lowerBound(keys, encLo[:])
	end = lowerBound(keys, encHi[:])
	if end < first {
		end = first
	}
	return first, end, nil
}

func lowerBound(keys KeyFieldView, enc []byte) uint32 {
	i := sort.Search(int(keys.Count), func(i int) bool {
		return bytes.Compare(keys.Key(uint32(i)), enc) >= 0
	})
	return uint32(i)
}
