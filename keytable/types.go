package keytable

import (
	"errors"

	"github.com/forestrie/go-floatkey/floatkey"
)

const (
	// KeyBytes is the width of the stored key, a V1 float key.
	KeyBytes = floatkey.KeyBytesV1

	// ValueBytes is the fixed width of the value stored with each key.
	ValueBytes = 32

	// RecordBytesV1 is the fixed byte width of a record:
	//   - key_be8
	//   - value[32]
	RecordBytesV1 = KeyBytes + ValueBytes // 40

	// HeaderBytesV1 is the fixed header size.
	HeaderBytesV1 = 32

	MagicV1         = "FKT1"
	VersionV1 uint8 = 1

	// MinFilterBitsPerKey is the smallest bloom filter, in bits per record
	// of table capacity, that NewView accepts.
	MinFilterBitsPerKey = 4
)

var (
	ErrBadRegionSize  = errors.New("keytable: table buffer too small")
	ErrBadCapacity    = errors.New("keytable: capacity must be > 0")
	ErrNotInitialized = errors.New("keytable: header not initialized")
	ErrBadMagic       = errors.New("keytable: header magic invalid")
	ErrBadVersion     = errors.New("keytable: header version invalid")
	ErrBadCount       = errors.New("keytable: header count exceeds capacity")
	ErrFilterTooSmall = errors.New("keytable: filter too small for table capacity")

	ErrBadValueSize  = errors.New("keytable: value must be 32 bytes")
	ErrNaNKey        = errors.New("keytable: NaN is not a valid key")
	ErrOutOfOrderKey = errors.New("keytable: key out of order")
	ErrDuplicateKey  = errors.New("keytable: duplicate key")
	ErrTableFull     = errors.New("keytable: table full")
)
