package trie_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetengo/tetengo-go/trie"
	"github.com/tetengo/tetengo-go/trie/builder"
)

func collect[V any](it *trie.Iterator[V]) []V {
	var out []V
	for it.HasNext() {
		out = append(out, it.Value())
		it.Next()
	}
	return out
}

func buildTrie(t *testing.T, elements []builder.Element[int32]) *trie.DoubleArray[int32] {
	t.Helper()
	storage, err := builder.Build(elements, builder.DefaultOptions())
	require.NoError(t, err)
	return trie.New[int32](storage)
}

// TestLookup_S1 and TestIteration_S1 cover the UTIGOSI/UTO/SETA scenario.
func TestLookup_S1(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("UTIGOSI"), Value: 24},
		{Key: []byte("UTO"), Value: 2424},
		{Key: []byte("SETA"), Value: 42},
	})

	v, ok := da.Lookup([]byte("UTIGOSI"))
	require.True(t, ok)
	require.Equal(t, int32(24), v)

	v, ok = da.Lookup([]byte("UTO"))
	require.True(t, ok)
	require.Equal(t, int32(2424), v)

	v, ok = da.Lookup([]byte("SETA"))
	require.True(t, ok)
	require.Equal(t, int32(42), v)

	_, ok = da.Lookup([]byte("NOTFOUND"))
	require.False(t, ok)
}

func TestIteration_S1(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("UTIGOSI"), Value: 24},
		{Key: []byte("UTO"), Value: 2424},
		{Key: []byte("SETA"), Value: 42},
	})
	require.Equal(t, []int32{42, 24, 2424}, collect(da.Iterator(nil)))
}

// TestIteration_S2 covers the UTF-8 case: 赤水 < 赤瀬 by byte comparison.
func TestIteration_S2(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("赤水"), Value: 42},
		{Key: []byte("赤瀬"), Value: 24},
	})
	require.Equal(t, []int32{42, 24}, collect(da.Iterator(nil)))
}

// TestEmptyTrie_S3 covers the empty-trie edge case.
func TestEmptyTrie_S3(t *testing.T) {
	da := buildTrie(t, nil)

	_, ok := da.Lookup([]byte("anything"))
	require.False(t, ok)
	require.Empty(t, collect(da.Iterator(nil)))
	require.Equal(t, 1, da.Storage().BaseCheckSize())
}

// TestPrefixKeys_S6 covers a key set where each key is a prefix of the next.
func TestPrefixKeys_S6(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("ab"), Value: 2},
		{Key: []byte("abc"), Value: 3},
	})

	for key, want := range map[string]int32{"a": 1, "ab": 2, "abc": 3} {
		v, ok := da.Lookup([]byte(key))
		require.True(t, ok, key)
		require.Equal(t, want, v, key)
	}
	require.Equal(t, []int32{1, 2, 3}, collect(da.Iterator(nil)))
}

func TestSubtreeIterator_Prefix(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("UTIGOSI"), Value: 24},
		{Key: []byte("UTO"), Value: 2424},
		{Key: []byte("SETA"), Value: 42},
	})
	require.Equal(t, []int32{24, 2424}, collect(da.Iterator([]byte("UT"))))
}

func TestCommonPrefixIterator(t *testing.T) {
	da := buildTrie(t, []builder.Element[int32]{
		{Key: []byte("a"), Value: 1},
		{Key: []byte("ab"), Value: 2},
		{Key: []byte("abc"), Value: 3},
		{Key: []byte("abd"), Value: 4},
	})

	it := da.CommonPrefixIterator([]byte("abc"))
	var got []int32
	for it.HasNext() {
		got = append(got, it.Value())
		it.Next()
	}
	require.Equal(t, []int32{1, 2, 3}, got)
}
