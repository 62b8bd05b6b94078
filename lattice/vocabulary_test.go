package lattice_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetengo/tetengo-go/input"
	"github.com/tetengo/tetengo-go/lattice"
	"github.com/tetengo/tetengo-go/trie"
	"github.com/tetengo/tetengo-go/trie/builder"
)

func TestMapVocabulary_FindEntries(t *testing.T) {
	vocab := lattice.NewMapVocabulary(map[string][]lattice.VocabEntry{
		"A": {{Value: "X", Cost: 5}},
	}, func(*lattice.Node, lattice.EntryView) (lattice.Connection, error) {
		return lattice.Connection{}, nil
	})

	entries := vocab.FindEntries(input.NewStringInput("A"))
	require.Len(t, entries, 1)
	v, ok := entries[0].Value()
	require.True(t, ok)
	require.Equal(t, "X", v)
	require.Equal(t, int32(5), entries[0].Cost())

	require.Empty(t, vocab.FindEntries(input.NewStringInput("nope")))
}

func TestDoubleArrayVocabulary_FindEntries(t *testing.T) {
	elements := []builder.Element[[]lattice.VocabEntry]{
		{Key: []byte("A"), Value: []lattice.VocabEntry{{Value: "X", Cost: 5}, {Value: "Y", Cost: 6}}},
		{Key: []byte("B"), Value: []lattice.VocabEntry{{Value: "X", Cost: 2}}},
	}
	storage, err := builder.Build(elements, builder.DefaultOptions())
	require.NoError(t, err)
	da := trie.New[[]lattice.VocabEntry](storage)

	vocab := lattice.NewDoubleArrayVocabulary(da, func(*lattice.Node, lattice.EntryView) (lattice.Connection, error) {
		return lattice.Connection{}, nil
	})

	entries := vocab.FindEntries(input.NewStringInput("A"))
	require.Len(t, entries, 2)

	require.Empty(t, vocab.FindEntries(input.NewStringInput("C")))
}
