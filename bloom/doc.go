package bloom

/*

# Bloom prefilter for float keys (in-place)

This package provides a Bloom filter over 8 byte order preserving float keys
(`floatkey.EncodeV1`), intended to live in a preallocated region next to a
`keytable`.

It mirrors the `floatkey` style:

- small, composable functions
- explicit byte layouts
- index arithmetic on byte slices
- a burden of knowledge on the caller for hot paths

## What Bloom filters are (and are not)

Bloom filters provide a *probabilistic prefilter*:

- If the filter says "definitely not present", then the key is not present.
- If the filter says "maybe present", then the key may or may not be present
  (false positives are possible).

A sorted key table can already answer membership with a binary search. The
filter exists so that point lookups for absent keys usually touch no record
bytes at all.

## Layout

	+----------------------+  32B header (magic, version, params)
	| HeaderV1             |
	+----------------------+  ceil(mBits/8) bitset bytes
	| bitset               |
	+----------------------+

Header fields (big-endian):

	[0:4]   magic "FKB1"
	[4]     version (1)
	[5]     bit order (0 = LSB0)
	[6]     k
	[7]     reserved
	[8:12]  mBits
	[12:16] nInserted
	[16:32] zero

## Indexing and bit numbering

Index derivation is double hashing over the key bytes:

	h1 = xxhash64(0xB1 || key)
	h2 = xxhash64(0xB2 || key)   (0 is replaced by 1)
	j_i = (h1 + i*h2) mod mBits  for i in [0, k)

Bit j is bit (j & 7) of byte (j >> 3), bit 0 being the least significant.

Keys are hashed as encoded bytes, so -0.0 and +0.0 (which share a V1 key)
are the same element.

## API versioning

Functions are suffixed with the format version (`InitV1`, `InsertV1`,
`MaybeContainsV1`). A new header layout or hash scheme would be added as `V2`
side-by-side, without silently breaking previously persisted regions.

*/
