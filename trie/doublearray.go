package trie

import "github.com/tetengo/tetengo-go/internal/format"

// DoubleArray is a read path over a Storage: lookup, subtree iteration, and
// common-prefix walks. It never mutates the storage it wraps.
type DoubleArray[V any] struct {
	storage Storage[V]
}

// New wraps storage as a DoubleArray.
func New[V any](storage Storage[V]) *DoubleArray[V] {
	return &DoubleArray[V]{storage: storage}
}

// Storage returns the underlying storage.
func (d *DoubleArray[V]) Storage() Storage[V] { return d.storage }

// Lookup walks the trie for key and returns its stored value, or
// (zero, false) if key is absent.
func (d *DoubleArray[V]) Lookup(key []byte) (V, bool) {
	var zero V
	cur := int32(format.RootIndex)
	for _, b := range key {
		next, ok := d.step(cur, b)
		if !ok {
			return zero, false
		}
		cur = next
	}
	next, ok := d.step(cur, format.KeyTerminator)
	if !ok {
		return zero, false
	}
	base := d.storage.BaseAt(int(next))
	return d.storage.ValueAt(format.ValueIndexFromBase(base))
}

// step follows the edge labelled b from cell cur, returning the destination
// cell and false if no such edge exists.
func (d *DoubleArray[V]) step(cur int32, b byte) (int32, bool) {
	base := d.storage.BaseAt(int(cur))
	next := base + int32(b)
	if next < 0 || int(next) >= d.storage.BaseCheckSize() || d.storage.CheckAt(int(next)) != b {
		return 0, false
	}
	return next, true
}

// nodeAt walks key from the root and returns the cell index reached, or
// false if key is not a valid prefix walk.
func (d *DoubleArray[V]) nodeAt(key []byte) (int32, bool) {
	cur := int32(format.RootIndex)
	for _, b := range key {
		next, ok := d.step(cur, b)
		if !ok {
			return 0, false
		}
		cur = next
	}
	return cur, true
}

// Iterator returns a subtree iterator over every key stored at or below the
// node reached by following prefix, in ascending lexicographic order. If
// prefix is empty, it iterates the whole trie.
func (d *DoubleArray[V]) Iterator(prefix []byte) *Iterator[V] {
	root, ok := d.nodeAt(prefix)
	if !ok {
		return &Iterator[V]{storage: d.storage}
	}
	it := &Iterator[V]{storage: d.storage}
	it.pushChildren(root)
	it.advance()
	return it
}

// CommonPrefixIterator yields every value whose key is a prefix of input,
// in the order those prefixes are reached (shortest first).
func (d *DoubleArray[V]) CommonPrefixIterator(input []byte) *PrefixIterator[V] {
	var values []V
	cur := int32(format.RootIndex)
	for i := 0; ; i++ {
		if term, ok := d.step(cur, format.KeyTerminator); ok {
			base := d.storage.BaseAt(int(term))
			if v, ok2 := d.storage.ValueAt(format.ValueIndexFromBase(base)); ok2 {
				values = append(values, v)
			}
		}
		if i == len(input) {
			break
		}
		next, ok := d.step(cur, input[i])
		if !ok {
			break
		}
		cur = next
	}
	return &PrefixIterator[V]{values: values}
}
