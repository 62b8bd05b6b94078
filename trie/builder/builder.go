// Package builder implements the classical Aoe double-array construction
// algorithm with dense-first placement: given a sorted set of distinct keys
// and their values, it computes base/check offsets satisfying the trie
// invariants and returns a populated in-memory storage.
package builder

import (
	"bytes"
	"sort"

	"github.com/tetengo/tetengo-go/internal/format"
	"github.com/tetengo/tetengo-go/trie"
)

// Element is one key-value pair to insert.
type Element[V any] struct {
	Key   []byte
	Value V
}

// BuildingObserverSet lets a caller watch construction progress. Neither
// callback can abort the build; they exist purely for reporting.
type BuildingObserverSet struct {
	// Adding is called once per stored key, in the order it is placed.
	Adding func(key []byte)
	// Done is called once after every key has been placed.
	Done func()
}

// Options configures Build.
type Options struct {
	// DensityFactor trades construction time for filling rate: higher
	// values start base probes closer to the array head (denser, slower);
	// lower values probe near the tail (sparser, faster). Must be >= 1.
	DensityFactor int
	Observer      BuildingObserverSet
}

// DefaultOptions returns the conventional density factor of 1000 and no observer.
func DefaultOptions() Options {
	return Options{DensityFactor: format.DefaultDensityFactor}
}

// Build constructs a double-array storage from elements. Elements need not
// be pre-sorted; Build sorts a copy by key bytes before construction and
// fails with trie.ErrDuplicateKey if two elements share a key.
func Build[V any](elements []Element[V], opts Options) (*trie.MemoryStorage[V], error) {
	if opts.DensityFactor < 1 {
		return nil, trie.ErrInvalidDensityFactor
	}

	sorted := make([]Element[V], len(elements))
	copy(sorted, elements)
	sort.Slice(sorted, func(i, j int) bool {
		return bytes.Compare(sorted[i].Key, sorted[j].Key) < 0
	})
	for i := 1; i < len(sorted); i++ {
		if bytes.Equal(sorted[i-1].Key, sorted[i].Key) {
			return nil, trie.ErrDuplicateKey
		}
	}

	keys := make([][]byte, len(sorted))
	values := make([]V, len(sorted))
	for i, e := range sorted {
		terminated := make([]byte, len(e.Key)+1)
		copy(terminated, e.Key)
		terminated[len(e.Key)] = format.KeyTerminator
		keys[i] = terminated
		values[i] = e.Value
	}

	storage := trie.NewMemoryStorage[V]()
	b := &builderState[V]{storage: storage, density: opts.DensityFactor, observer: opts.Observer}
	if len(keys) > 0 {
		if err := b.buildAt(format.RootIndex, keys, values, 0); err != nil {
			return nil, err
		}
	}
	if opts.Observer.Done != nil {
		opts.Observer.Done()
	}
	return storage, nil
}

type builderState[V any] struct {
	storage        *trie.MemoryStorage[V]
	density        int
	lastPlacement  int
	nextValueIndex int
	observer       BuildingObserverSet
	usedBases      map[int]bool
}

// buildAt places the children of parent, where keys[i][depth] is the next
// unconsumed byte of the i-th key in this recursive level's group.
func (b *builderState[V]) buildAt(parent int, keys [][]byte, values []V, depth int) error {
	type group struct {
		b      byte
		keys   [][]byte
		values []V
	}
	var groups []group
	for i := 0; i < len(keys); {
		next := keys[i][depth]
		j := i + 1
		for j < len(keys) && keys[j][depth] == next {
			j++
		}
		groups = append(groups, group{b: next, keys: keys[i:j], values: values[i:j]})
		i = j
	}

	childBytes := make([]byte, len(groups))
	for i, g := range groups {
		childBytes[i] = g.b
	}
	base, err := b.findBase(childBytes)
	if err != nil {
		return err
	}
	if err := b.storage.SetBaseAt(parent, base); err != nil {
		return err
	}

	// Claim every child cell before recursing, so no descendant is placed in
	// a sibling's cell.
	for _, g := range groups {
		if err := b.storage.SetCheckAt(int(base)+int(g.b), g.b); err != nil {
			return err
		}
	}
	for _, g := range groups {
		next := int(base) + int(g.b)
		if g.b == format.KeyTerminator {
			idx := b.nextValueIndex
			b.nextValueIndex++
			if err := b.storage.AddValueAt(idx, g.values[0]); err != nil {
				return err
			}
			if err := b.storage.SetBaseAt(next, format.BaseFromValueIndex(idx)); err != nil {
				return err
			}
			if b.observer.Adding != nil {
				b.observer.Adding(g.keys[0][:len(g.keys[0])-1])
			}
			continue
		}
		if err := b.buildAt(next, g.keys, g.values, depth+1); err != nil {
			return err
		}
	}
	return nil
}

// findBase searches for the smallest base such that base+b is an empty cell
// for every byte b in childBytes, starting the probe at the current density
// frontier and scanning upward. A base already given to another parent is
// skipped, so every occupied cell is reachable from exactly one parent.
func (b *builderState[V]) findBase(childBytes []byte) (int32, error) {
	if b.usedBases == nil {
		b.usedBases = make(map[int]bool)
	}
	start := b.lastPlacement / b.density
	if start < 1 {
		start = 1
	}
	for candidate := start; ; candidate++ {
		if b.usedBases[candidate] {
			continue
		}
		fits := true
		for _, bb := range childBytes {
			if b.storage.CheckAt(candidate+int(bb)) != format.VacantCheck {
				fits = false
				break
			}
		}
		if fits {
			b.usedBases[candidate] = true
			b.lastPlacement = candidate
			return int32(candidate), nil
		}
	}
}
