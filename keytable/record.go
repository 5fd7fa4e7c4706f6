package keytable

import "github.com/forestrie/go-floatkey/floatkey"

const recordValueOff = KeyBytes

// RecordSet stores (key,value) at ordinal.
// Caller must ensure table is large enough.
func RecordSet(table []byte, ordinal uint32, key uint64, value []byte) {
	if len(value) != ValueBytes {
		panic("keytable: bad value length")
	}
	off := RecordOffset(ordinal)
	writeU64BE(table[off:off+KeyBytes], key)
	copy(table[off+recordValueOff:off+RecordBytesV1], value)
}

// RecordKeyBytes returns the encoded key of ordinal, aliasing table.
// Caller must ensure table is large enough.
func RecordKeyBytes(table []byte, ordinal uint32) []byte {
	off := RecordOffset(ordinal)
	return table[off : off+KeyBytes]
}

// RecordKey returns the V1 key of ordinal as an unsigned integer.
func RecordKey(table []byte, ordinal uint32) uint64 {
	return readU64BE(RecordKeyBytes(table, ordinal))
}

// RecordFloat returns the float stored at ordinal.
func RecordFloat(table []byte, ordinal uint32) float64 {
	return floatkey.FloatV1(RecordKey(table, ordinal))
}

// RecordValue returns a copy of the value stored at ordinal.
func RecordValue(table []byte, ordinal uint32) [ValueBytes]byte {
	off := RecordOffset(ordinal) + recordValueOff
	var out [ValueBytes]byte
	copy(out[:], table[off:off+ValueBytes])
	return out
}
