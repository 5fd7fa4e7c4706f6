package bloom

import (
	"github.com/cespare/xxhash/v2"

	"github.com/forestrie/go-floatkey/floatkey"
)

const (
	bloomDomainH1V1 = 0xB1
	bloomDomainH2V1 = 0xB2
)

// InitV1 initializes a region with a HeaderV1 and a cleared bitset sized
// for keyCount keys at bitsPerKey.
//
// The caller must allocate region with at least
// RegionBytesForKeysV1(keyCount, bitsPerKey) bytes.
func InitV1(region []byte, keyCount uint64, bitsPerKey uint64, k uint8) error {
	if k == 0 {
		return ErrBadK
	}
	need, err := RegionBytesForKeysV1(keyCount, bitsPerKey)
	if err != nil {
		return err
	}
	if uint64(len(region)) < need {
		return ErrBadRegionSize
	}

	// A reused region must not keep bits from an earlier filter.
	clear(region[:need])

	return EncodeHeaderV1(region, HeaderV1{
		BitOrder: BitOrderLSB0,
		K:        k,
		MBits:    uint32(MBitsV1(keyCount, bitsPerKey)),
	})
}

// InsertV1 inserts the encoded key elem and increments NInserted in the header.
func InsertV1(region []byte, elem []byte) error {
	h, bitset, p, err := probeV1(region, elem)
	if err != nil {
		return err
	}
	for i := uint8(0); i < h.K; i++ {
		byteIdx, mask := p.at(i)
		bitset[byteIdx] |= mask
	}

	h.NInserted++
	return EncodeHeaderV1(region, h)
}

// MaybeContainsV1 checks membership for the encoded key elem.
//
// Returns (false,nil) if the filter says "definitely not present".
// Returns (true,nil) if the filter says "maybe present".
func MaybeContainsV1(region []byte, elem []byte) (bool, error) {
	h, bitset, p, err := probeV1(region, elem)
	if err != nil {
		return false, err
	}
	for i := uint8(0); i < h.K; i++ {
		byteIdx, mask := p.at(i)
		if bitset[byteIdx]&mask == 0 {
			return false, nil
		}
	}
	return true, nil
}

// InsertFloatV1 inserts the V1 key of v.
func InsertFloatV1(region []byte, v float64) error {
	k := floatkey.EncodeV1(v)
	return InsertV1(region, k[:])
}

// MaybeContainsFloatV1 checks membership for the V1 key of v.
func MaybeContainsFloatV1(region []byte, v float64) (bool, error) {
	k := floatkey.EncodeV1(v)
	return MaybeContainsV1(region, k[:])
}

// probe holds the double hashing state for one element.
type probe struct {
	h1, h2 uint64
	mBits  uint64
}

// at returns the byte index and LSB0 bit mask of the i'th probe.
func (p probe) at(i uint8) (uint64, byte) {
	j := (p.h1 + uint64(i)*p.h2) % p.mBits
	return j >> 3, 1 << (j & 7)
}

// probeV1 validates elem and region and returns the header, the bitset and
// the probe sequence for elem.
func probeV1(region []byte, elem []byte) (HeaderV1, []byte, probe, error) {
	if len(elem) != ElemBytes {
		return HeaderV1{}, nil, probe{}, ErrBadElemSize
	}
	h, ok, err := DecodeHeaderV1(region)
	if err != nil {
		return HeaderV1{}, nil, probe{}, err
	}
	if !ok {
		return HeaderV1{}, nil, probe{}, ErrNotInitialized
	}
	end := RegionBytesV1(h.MBits)
	if uint64(len(region)) < end {
		return HeaderV1{}, nil, probe{}, ErrBadRegionSize
	}

	var buf [1 + ElemBytes]byte
	copy(buf[1:], elem)
	buf[0] = bloomDomainH1V1
	h1 := xxhash.Sum64(buf[:])
	buf[0] = bloomDomainH2V1
	h2 := xxhash.Sum64(buf[:])
	if h2 == 0 {
		h2 = 1
	}
	return h, region[HeaderBytesV1:end], probe{h1: h1, h2: h2, mBits: uint64(h.MBits)}, nil
}
