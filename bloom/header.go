package bloom

// Header field offsets, see doc.go.
const (
	hdrMagicOff     = 0
	hdrVersionOff   = 4
	hdrBitOrderOff  = 5
	hdrKOff         = 6
	hdrReservedOff  = 7
	hdrMBitsOff     = 8
	hdrNInsertedOff = 12
	hdrUsedBytes    = 16
)

// DecodeHeaderV1 decodes a V1 header from region.
//
// ok=false indicates the region is zero-filled / uninitialized.
func DecodeHeaderV1(region []byte) (h HeaderV1, ok bool, err error) {
	if len(region) < HeaderBytesV1 {
		return HeaderV1{}, false, ErrBadRegionSize
	}

	magic := region[hdrMagicOff : hdrMagicOff+len(MagicV1)]
	switch {
	case isZero(magic):
		return HeaderV1{}, false, nil
	case string(magic) != MagicV1:
		return HeaderV1{}, false, ErrBadMagic
	case region[hdrVersionOff] != VersionV1:
		return HeaderV1{}, false, ErrBadVersion
	}

	h = HeaderV1{
		BitOrder:  region[hdrBitOrderOff],
		K:         region[hdrKOff],
		MBits:     readU32BE(region[hdrMBitsOff:]),
		NInserted: readU32BE(region[hdrNInsertedOff:]),
	}
	if err := h.check(); err != nil {
		return HeaderV1{}, false, err
	}
	return h, true, nil
}

// EncodeHeaderV1 writes a V1 header into region. The reserved byte and the
// tail of the header are zeroed.
func EncodeHeaderV1(region []byte, h HeaderV1) error {
	if len(region) < HeaderBytesV1 {
		return ErrBadRegionSize
	}
	if err := h.check(); err != nil {
		return err
	}

	copy(region[hdrMagicOff:], MagicV1)
	region[hdrVersionOff] = VersionV1
	region[hdrBitOrderOff] = h.BitOrder
	region[hdrKOff] = h.K
	region[hdrReservedOff] = 0
	writeU32BE(region[hdrMBitsOff:], h.MBits)
	writeU32BE(region[hdrNInsertedOff:], h.NInserted)
	clear(region[hdrUsedBytes:HeaderBytesV1])
	return nil
}

func (h HeaderV1) check() error {
	switch {
	case h.BitOrder != BitOrderLSB0:
		return ErrBadBitOrder
	case h.K == 0:
		return ErrBadK
	case h.MBits == 0:
		return ErrBadMBits
	}
	return nil
}

func isZero(b []byte) bool {
	for _, c := range b {
		if c != 0 {
			return false
		}
	}
	return true
}
