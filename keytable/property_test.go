package keytable

import (
	"math"
	"slices"
	"sort"
	"testing"

	"pgregory.net/rapid"

	"github.com/forestrie/go-floatkey/bloom"
	"github.com/forestrie/go-floatkey/floatkey"
)

func TestSortedAppendLookupProperty(t *testing.T) {
	notNaN := rapid.Float64().Filter(func(f float64) bool { return !math.IsNaN(f) })
	distinct := rapid.SliceOfNDistinct(notNaN, 1, 64, floatkey.KeyV1)

	rapid.Check(t, func(t *rapid.T) {
		keys := distinct.Draw(t, "keys")
		slices.Sort(keys)

		capacity := uint32(len(keys))
		table := make([]byte, TableBytesV1(capacity))
		if err := InitV1(table, capacity); err != nil {
			t.Fatal(err)
		}
		n, err := bloom.RegionBytesForKeysV1(uint64(capacity), 10)
		if err != nil {
			t.Fatal(err)
		}
		filter := make([]byte, n)
		if err := bloom.InitV1(filter, uint64(capacity), 10, 7); err != nil {
			t.Fatal(err)
		}
		v, err := NewView(table, filter)
		if err != nil {
			t.Fatal(err)
		}

		value := make([]byte, ValueBytes)
		for i, k := range keys {
			value[0] = byte(i)
			if _, err := AppendV1(v, k, value); err != nil {
				t.Fatalf("append %d (%v): %v", i, k, err)
			}
		}

		for i, k := range keys {
			got, ok, err := LookupV1(v, k)
			if err != nil || !ok || got[0] != byte(i) {
				t.Fatalf("lookup %v: ok=%v err=%v", k, ok, err)
			}
		}

		query := notNaN.Draw(t, "query")
		lb, err := LowerBoundV1(v, query)
		if err != nil {
			t.Fatal(err)
		}
		want := sort.Search(len(keys), func(i int) bool { return keys[i] >= query })
		if int(lb) != want {
			t.Fatalf("LowerBoundV1(%v) = %d, want %d", query, lb, want)
		}
	})
}
