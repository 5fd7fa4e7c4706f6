package bloom

// CheckBPK validates bitsPerKey for safe sizing computations.
func CheckBPK(bitsPerKey uint64) error {
	if bitsPerKey == 0 {
		return ErrBadMBits
	}
	if bitsPerKey > uint64(^uint32(0)) {
		return ErrMBitsOverflow
	}
	return nil
}

// MBitsV1 returns mBits64 = bitsPerKey * keyCount.
//
// The caller is responsible for ensuring:
//   - keyCount > 0
//   - bitsPerKey > 0
//   - bitsPerKey <= uint64(^uint32(0))
//
// CheckBPK can be used to check these conditions.
func MBitsV1(keyCount uint64, bitsPerKey uint64) uint64 {
	return bitsPerKey * keyCount
}

// MBitsSafeCast returns mBits as uint32, or 0 if it is not safe to downcast.
func MBitsSafeCast(mBits64 uint64) uint32 {
	if mBits64 == 0 || mBits64 > uint64(^uint32(0)) {
		return 0
	}
	return uint32(mBits64)
}

// BitsetBytesV1 returns ceil(mBits/8).
func BitsetBytesV1(mBits uint32) uint32 {
	return uint32((uint64(mBits) + 7) / 8)
}

// RegionBytesV1 returns the required byte length for a region given mBits:
//
//	HeaderBytesV1 + ceil(mBits/8)
func RegionBytesV1(mBits uint32) uint64 {
	return uint64(HeaderBytesV1) + uint64(BitsetBytesV1(mBits))
}

// RegionBytesForKeysV1 returns the region size for keyCount keys at
// bitsPerKey, or an error if the bit count does not fit the header.
func RegionBytesForKeysV1(keyCount uint64, bitsPerKey uint64) (uint64, error) {
	if keyCount == 0 {
		return 0, ErrBadMBits
	}
	if err := CheckBPK(bitsPerKey); err != nil {
		return 0, err
	}
	mBits := MBitsSafeCast(MBitsV1(keyCount, bitsPerKey))
	if mBits == 0 {
		return 0, ErrMBitsOverflow
	}
	return RegionBytesV1(mBits), nil
}
