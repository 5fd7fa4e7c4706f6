package floatkey

/*

# Order preserving keys for float64 values

This package provides primitives that turn a float64 into a fixed-width,
big-endian byte key such that an unsigned lexicographic comparison of two keys
(memcmp, `bytes.Compare`) agrees with the numeric comparison of the floats.

It follows the same "functional primitives" style as the `bloom` and
`keytable` packages:

- small, composable functions
- explicit byte layouts
- no allocation on the hot paths

## The transform

An IEEE-754 double is laid out as:

	bit 63      sign
	bits 62..52 exponent (biased)
	bits 51..0  fraction

For non-negative values the raw bit pattern, read as an unsigned integer,
already sorts in numeric order. Negative values sort backwards, and above every
positive value, because the sign bit is set. So:

	sign == 1: key = ^bits          (reverse the negatives, clear the sign)
	sign == 0: key = bits ^ 1<<63   (set the sign, lift above the negatives)

The key is serialized most significant byte first. Big-endian is the only
order under which byte comparison equals integer comparison.

## Canonical values

Two inputs are not fully decided by the bit transform alone:

- `-0.0` and `+0.0` are numerically equal but differ in the sign bit.
- NaN has many bit patterns, and NaN is unordered.

The V1 key (`KeyV1`, `EncodeV1`) first canonicalizes its input: `-0.0`
becomes `+0.0`, and every NaN becomes the quiet NaN `0x7FF8000000000000`,
whose key sorts above `+Inf`. Equal numbers therefore always have equal keys.

`EncodeBitsV1` is the raw, bit exact transform. It is a bijection over all
2^64 patterns; under it `-0.0` sorts immediately below `+0.0`.

`EncodeStrictV1` rejects NaN outright, for callers that want an error rather
than a canonical NaN key.

## API versioning

The `V1` suffix names the key format. A future incompatible layout would be
introduced as `V2` side by side. `EncodeSplitV0` is an earlier 9 byte split
field layout, retained only so that old keys can be recognized. It does not
preserve order across signs and must not be used for new keys.

*/
