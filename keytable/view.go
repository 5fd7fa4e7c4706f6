package keytable

import (
	"fmt"

	"github.com/forestrie/go-floatkey/bloom"
)

// View is a zero-allocation view over an initialized table region and an
// optional bloom region.
//
// Filter may be nil. When set it must be an initialized bloom region with at
// least MinFilterBitsPerKey bits per record of capacity. AppendV1 keeps it in
// step with the records.
type View struct {
	Capacity uint32
	Table    []byte
	Filter   []byte
}

// NewView checks the table header (and the filter header, if any) and returns
// a View over them.
func NewView(table []byte, filter []byte) (View, error) {
	h, err := decodeHeaderV1(table)
	if err != nil {
		return View{}, err
	}
	if filter != nil {
		fh, ok, err := bloom.DecodeHeaderV1(filter)
		if err != nil {
			return View{}, fmt.Errorf("keytable: filter: %w", err)
		}
		if !ok {
			return View{}, fmt.Errorf("keytable: filter: %w", bloom.ErrNotInitialized)
		}
		if uint64(len(filter)) < bloom.RegionBytesV1(fh.MBits) {
			return View{}, fmt.Errorf("keytable: filter: %w", bloom.ErrBadRegionSize)
		}
		if uint64(fh.MBits) < uint64(h.Capacity)*MinFilterBitsPerKey {
			return View{}, fmt.Errorf("%w: %d bits for capacity %d", ErrFilterTooSmall, fh.MBits, h.Capacity)
		}
	}
	return View{
		Capacity: h.Capacity,
		Table:    table[:TableBytesV1(h.Capacity)],
		Filter:   filter,
	}, nil
}

// Count returns the number of filled records.
func (v View) Count() (uint32, error) {
	h, err := decodeHeaderV1(v.Table)
	if err != nil {
		return 0, err
	}
	return h.Count, nil
}
