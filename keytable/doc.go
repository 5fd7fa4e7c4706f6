package keytable

/*

# Sorted float key table (in-place, append-only writes)

This package stores `(float key, value[32])` records, sorted by key, inside a
fixed-size, caller-allocated region. Every comparison is a memcmp of the 8
byte order preserving key (`floatkey.EncodeV1`); the stored floats are never
decoded to be compared.

## Core invariants

1. keys are strictly increasing in V1 key order (`newKey > lastKey`)
2. keys are canonical: -0.0 is stored as +0.0, NaN is rejected
3. the region is preallocated; InitV1 zero-fills it

(1) makes the record array its own index: lookups and range scans are binary
searches over the key column. Appending -0.0 after +0.0 is a duplicate.

## Layout

	+----------------------+  32B header
	| header               |
	+----------------------+  capacity * 40B records
	| record 0             |  key_be8 || value[32]
	| record 1             |
	| ...                  |
	+----------------------+

Header fields (big-endian):

	[0:4]   magic "FKT1"
	[4]     version (1)
	[5:8]   zero
	[8:12]  capacity
	[12:16] count
	[16:32] zero

A View may also carry a `bloom` region. AppendV1 inserts each key into it,
and LookupV1 consults it before searching.

*/
