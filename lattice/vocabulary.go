package lattice

import "github.com/tetengo/tetengo-go/input"

// Connection is the edge cost of transitioning from one node to an entry
// beginning at the next step. It is additive to the destination node's own
// node cost.
type Connection struct {
	Cost int32
}

// Vocabulary is the pluggable grammar a lattice is built against.
type Vocabulary interface {
	// FindEntries returns every entry whose key equals key. Order is
	// unspecified but stable for a given vocabulary instance.
	FindEntries(key input.Input) []EntryView

	// FindConnection returns the edge cost of transitioning from fromNode
	// to toEntry.
	FindConnection(fromNode *Node, toEntry EntryView) (Connection, error)
}

// ConnectionFunc computes the cost of connecting a node to a candidate entry.
type ConnectionFunc func(fromNode *Node, toEntry EntryView) (Connection, error)

// VocabEntry is a single (value, cost) homonym stored under one key. Most
// vocabularies store several of these per key (e.g. multiple parts of
// speech for the same surface form).
type VocabEntry struct {
	Value any
	Cost  int32
}

// MapVocabulary is a reference Vocabulary backed by a plain map from byte-
// string keys to their candidate entries, plus a caller-supplied connection
// cost function (typically a dense matrix lookup keyed by part-of-speech
// or connection-class IDs carried in each entry's Value).
type MapVocabulary struct {
	entries map[string][]VocabEntry
	connect ConnectionFunc
}

// NewMapVocabulary creates a MapVocabulary over entries, using connect to
// price transitions.
func NewMapVocabulary(entries map[string][]VocabEntry, connect ConnectionFunc) *MapVocabulary {
	return &MapVocabulary{entries: entries, connect: connect}
}

// FindEntries implements Vocabulary.
func (v *MapVocabulary) FindEntries(key input.Input) []EntryView {
	si, ok := key.(*input.StringInput)
	if !ok {
		return nil
	}
	candidates, ok := v.entries[si.Value()]
	if !ok {
		return nil
	}
	views := make([]EntryView, len(candidates))
	for i, c := range candidates {
		views[i] = NewEntryView(key, c.Value, c.Cost)
	}
	return views
}

// FindConnection implements Vocabulary.
func (v *MapVocabulary) FindConnection(fromNode *Node, toEntry EntryView) (Connection, error) {
	return v.connect(fromNode, toEntry)
}
