package keytable

// KeyFieldView describes how to iterate keys inside the record array without
// copying.
//
// Keys are strided: record[0:8] is key_be8, record[8:40] is the value.
type KeyFieldView struct {
	Data        []byte
	RecordBytes uint64
	KeyOffset   uint64
	KeyBytes    uint64
	Count       uint32
}

// KeyFields returns a descriptor for iterating over the filled keys of v.
func KeyFields(v View, count uint32) KeyFieldView {
	if count > v.Capacity {
		count = v.Capacity
	}

	return KeyFieldView{
		Data:        v.Table[HeaderBytesV1:],
		RecordBytes: RecordBytesV1,
		KeyOffset:   0,
		KeyBytes:    KeyBytes,
		Count:       count,
	}
}

// Key returns the i'th key, aliasing Data.
func (f KeyFieldView) Key(i uint32) []byte {
	off := uint64(i)*f.RecordBytes + f.KeyOffset
	return f.Data[off : off+f.KeyBytes]
}
