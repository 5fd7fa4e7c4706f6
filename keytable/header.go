package keytable

import "bytes"

type headerV1 struct {
	Capacity uint32
	Count    uint32
}

// InitV1 zero-fills table and writes an empty header for capacity records.
func InitV1(table []byte, capacity uint32) error {
	if capacity == 0 {
		return ErrBadCapacity
	}
	need := TableBytesV1(capacity)
	if uint64(len(table)) < need {
		return ErrBadRegionSize
	}
	clear(table[:need])
	encodeHeaderV1(table, headerV1{Capacity: capacity})
	return nil
}

func decodeHeaderV1(table []byte) (headerV1, error) {
	if len(table) < HeaderBytesV1 {
		return headerV1{}, ErrBadRegionSize
	}
	if bytes.Equal(table[0:4], []byte{0, 0, 0, 0}) {
		return headerV1{}, ErrNotInitialized
	}
	if string(table[0:4]) != MagicV1 {
		return headerV1{}, ErrBadMagic
	}
	if table[4] != VersionV1 {
		return headerV1{}, ErrBadVersion
	}

	h := headerV1{
		Capacity: readU32BE(table[8:12]),
		Count:    readU32BE(table[12:16]),
	}
	if h.Capacity == 0 {
		return headerV1{}, ErrBadCapacity
	}
	if h.Count > h.Capacity {
		return headerV1{}, ErrBadCount
	}
	if uint64(len(table)) < TableBytesV1(h.Capacity) {
		return headerV1{}, ErrBadRegionSize
	}
	return h, nil
}

func encodeHeaderV1(table []byte, h headerV1) {
	copy(table[0:4], MagicV1)
	table[4] = VersionV1
	clear(table[5:8])
	writeU32BE(table[8:12], h.Capacity)
	writeU32BE(table[12:16], h.Count)
	clear(table[16:HeaderBytesV1])
}
