// Package lattice builds a word-lattice graph over an input sequence and a
// pluggable vocabulary, computes the Viterbi best path during construction,
// and enumerates the k cheapest complete paths in non-decreasing cost order.
package lattice

import "github.com/tetengo/tetengo-go/input"

// EntryView is either the BosEosEntry sentinel or a concrete key/value/cost
// triple borrowed from a vocabulary.
type EntryView struct {
	key      input.Input
	value    any
	cost     int32
	isBosEos bool
}

// BosEosEntry is the sentinel entry used where the grammar has no concrete
// key, value, or cost to offer (the boundaries of a lattice).
var BosEosEntry = EntryView{isBosEos: true}

// NewEntryView creates a concrete entry.
func NewEntryView(key input.Input, value any, cost int32) EntryView {
	return EntryView{key: key, value: value, cost: cost}
}

// Key returns the entry's key, or false for BosEosEntry.
func (e EntryView) Key() (input.Input, bool) {
	if e.isBosEos {
		return nil, false
	}
	return e.key, true
}

// Value returns the entry's opaque payload, or false for BosEosEntry.
func (e EntryView) Value() (any, bool) {
	if e.isBosEos {
		return nil, false
	}
	return e.value, true
}

// Cost returns the entry's cost. BosEosEntry's cost is 0.
func (e EntryView) Cost() int32 { return e.cost }

// IsBosEos reports whether this is the BOS/EOS sentinel.
func (e EntryView) IsBosEos() bool { return e.isBosEos }
