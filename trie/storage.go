// Package trie implements an ordered key-value double-array trie: O(|key|)
// lookup, subtree and common-prefix iteration, and a compact big-endian
// binary serialization shared by an in-memory and a memory-mapped backend.
package trie

import (
	"io"

	"github.com/tetengo/tetengo-go/serial"
)

// Storage is the contract the double-array and its builder need from a
// base-check array plus its associated value table. Both the in-memory and
// the memory-mapped backends implement it.
type Storage[V any] interface {
	// BaseCheckSize returns the number of cells currently allocated.
	BaseCheckSize() int

	// BaseAt returns the signed base offset of cell i. An out-of-range i
	// reads as an empty cell; MemoryStorage also grows its array to cover
	// i, SharedStorage does not grow.
	BaseAt(i int) int32

	// SetBaseAt sets the base offset of cell i, auto-extending as needed.
	// SharedStorage always returns ErrReadOnlyStorage.
	SetBaseAt(i int, base int32) error

	// CheckAt returns the check byte of cell i, with the same out-of-range
	// behaviour as BaseAt.
	CheckAt(i int) uint8

	// SetCheckAt sets the check byte of cell i, auto-extending as needed.
	// SharedStorage always returns ErrReadOnlyStorage.
	SetCheckAt(i int, check uint8) error

	// ValueCount returns the size of the value table.
	ValueCount() int

	// ValueAt returns the value stored at index i, and whether one is present.
	ValueAt(i int) (V, bool)

	// AddValueAt stores v at index i, growing the value table as needed.
	AddValueAt(i int, v V) error

	// FillingRate returns 1 - empty/total over the base-check array.
	FillingRate() float64

	// Serialize writes the storage to w in the binary format that
	// MemoryStorage.Serialize documents, encoding values with vs.
	Serialize(w io.Writer, vs serial.ValueSerializer[V]) error
}
