package lattice

import (
	"github.com/tetengo/tetengo-go/input"
	"github.com/tetengo/tetengo-go/trie"
)

// DoubleArrayVocabulary adapts a trie.DoubleArray, keyed by surface-form
// byte strings and holding one []VocabEntry per key, into a Vocabulary.
// This is the production path: FindEntries becomes an O(|key|) trie lookup
// instead of a map hash.
type DoubleArrayVocabulary struct {
	da      *trie.DoubleArray[[]VocabEntry]
	connect ConnectionFunc
}

// NewDoubleArrayVocabulary creates a DoubleArrayVocabulary over da, using
// connect to price transitions.
func NewDoubleArrayVocabulary(da *trie.DoubleArray[[]VocabEntry], connect ConnectionFunc) *DoubleArrayVocabulary {
	return &DoubleArrayVocabulary{da: da, connect: connect}
}

// FindEntries implements Vocabulary.
func (v *DoubleArrayVocabulary) FindEntries(key input.Input) []EntryView {
	si, ok := key.(*input.StringInput)
	if !ok {
		return nil
	}
	candidates, found := v.da.Lookup([]byte(si.Value()))
	if !found {
		return nil
	}
	views := make([]EntryView, len(candidates))
	for i, c := range candidates {
		views[i] = NewEntryView(key, c.Value, c.Cost)
	}
	return views
}

// FindConnection implements Vocabulary.
func (v *DoubleArrayVocabulary) FindConnection(fromNode *Node, toEntry EntryView) (Connection, error) {
	return v.connect(fromNode, toEntry)
}
