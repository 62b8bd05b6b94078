package trie

import (
	"sort"

	"github.com/tetengo/tetengo-go/internal/format"
)

// iterFrame is either a value ready to emit or a node whose children have
// not yet been expanded onto the stack.
type iterFrame struct {
	isValue    bool
	valueIndex int
	cell       int32
}

// Iterator performs a depth-first, ascending-byte-order walk of a subtree,
// yielding stored values. The terminator byte sorts before every real key
// byte so a key that is a proper prefix of another is always yielded first,
// matching ordinary lexicographic order over the unescaped key.
type Iterator[V any] struct {
	storage    Storage[V]
	stack      []iterFrame
	current    V
	hasCurrent bool
}

// HasNext reports whether Value returns a meaningful result.
func (it *Iterator[V]) HasNext() bool { return it.hasCurrent }

// Value returns the value at the iterator's current position.
func (it *Iterator[V]) Value() V { return it.current }

// Next advances the iterator.
func (it *Iterator[V]) Next() { it.advance() }

// Clone returns an independent copy of the iterator at its current position.
func (it *Iterator[V]) Clone() *Iterator[V] {
	return &Iterator[V]{
		storage:    it.storage,
		stack:      append([]iterFrame(nil), it.stack...),
		current:    it.current,
		hasCurrent: it.hasCurrent,
	}
}

func childOrderKey(b byte) int {
	if b == format.KeyTerminator {
		return -1
	}
	return int(b)
}

// pushChildren expands cur's outgoing edges onto the stack in an order such
// that popping the stack visits them by ascending childOrderKey.
func (it *Iterator[V]) pushChildren(cur int32) {
	base := it.storage.BaseAt(int(cur))

	type child struct {
		b    byte
		next int32
	}
	var children []child
	for bi := 0; bi <= format.KeyTerminator; bi++ {
		b := byte(bi)
		next := base + int32(b)
		if next < 0 || int(next) >= it.storage.BaseCheckSize() {
			continue
		}
		if it.storage.CheckAt(int(next)) == b {
			children = append(children, child{b: b, next: next})
		}
	}
	sort.Slice(children, func(i, j int) bool {
		return childOrderKey(children[i].b) < childOrderKey(children[j].b)
	})

	for i := len(children) - 1; i >= 0; i-- {
		c := children[i]
		if c.b == format.KeyTerminator {
			valueBase := it.storage.BaseAt(int(c.next))
			it.stack = append(it.stack, iterFrame{
				isValue:    true,
				valueIndex: format.ValueIndexFromBase(valueBase),
			})
			continue
		}
		it.stack = append(it.stack, iterFrame{cell: c.next})
	}
}

func (it *Iterator[V]) advance() {
	for len(it.stack) > 0 {
		f := it.stack[len(it.stack)-1]
		it.stack = it.stack[:len(it.stack)-1]
		if f.isValue {
			v, ok := it.storage.ValueAt(f.valueIndex)
			if !ok {
				continue
			}
			it.current = v
			it.hasCurrent = true
			return
		}
		it.pushChildren(f.cell)
	}
	it.hasCurrent = false
}

// PrefixIterator yields the values of every key that is a prefix of a fixed
// input, in order of increasing prefix length.
type PrefixIterator[V any] struct {
	values []V
	idx    int
}

// HasNext reports whether Value returns a meaningful result.
func (p *PrefixIterator[V]) HasNext() bool { return p.idx < len(p.values) }

// Value returns the value at the iterator's current position.
func (p *PrefixIterator[V]) Value() V { return p.values[p.idx] }

// Next advances the iterator.
func (p *PrefixIterator[V]) Next() { p.idx++ }

// Clone returns an independent copy of the iterator at its current position.
func (p *PrefixIterator[V]) Clone() *PrefixIterator[V] {
	return &PrefixIterator[V]{values: append([]V(nil), p.values...), idx: p.idx}
}
