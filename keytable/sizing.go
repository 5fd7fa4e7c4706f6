package keytable

// TableBytesV1 returns the required region size for capacity records.
func TableBytesV1(capacity uint32) uint64 {
	return HeaderBytesV1 + uint64(capacity)*RecordBytesV1
}

// RecordOffset returns the byte offset of ordinal in the table region.
func RecordOffset(ordinal uint32) uint64 {
	return HeaderBytesV1 + uint64(ordinal)*RecordBytesV1
}
