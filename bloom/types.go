package bloom

import (
	"errors"

	"github.com/forestrie/go-floatkey/floatkey"
)

const (
	// ElemBytes is the fixed element width, one encoded float key.
	ElemBytes = floatkey.KeyBytesV1

	// HeaderBytesV1 is the fixed header size for HeaderV1.
	HeaderBytesV1 = 32

	MagicV1         = "FKB1"
	VersionV1 uint8 = 1

	// BitOrderLSB0 means bit 0 is the least-significant bit of byte 0.
	BitOrderLSB0 uint8 = 0
)

var (
	ErrBadElemSize    = errors.New("bloom: element must be 8 bytes")
	ErrBadRegionSize  = errors.New("bloom: region buffer too small")
	ErrNotInitialized = errors.New("bloom: header not initialized")

	ErrBadMagic    = errors.New("bloom: header magic invalid")
	ErrBadVersion  = errors.New("bloom: header version invalid")
	ErrBadBitOrder = errors.New("bloom: header bitOrder unsupported")
	ErrBadK        = errors.New("bloom: header k invalid")
	ErrBadMBits    = errors.New("bloom: header mBits invalid")

	ErrMBitsOverflow = errors.New("bloom: mBits overflows supported range")
)

type HeaderV1 struct {
	BitOrder  uint8
	K         uint8
	MBits     uint32
	NInserted uint32
}
