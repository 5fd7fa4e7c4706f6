package floatkey

import "bytes"

// CompareV1 compares two encoded keys as unsigned byte strings.
//
// The result is -1, 0 or +1, and for V1 keys agrees with the numeric order of
// the encoded values.
func CompareV1(a, b []byte) int {
	return bytes.Compare(a, b)
}
