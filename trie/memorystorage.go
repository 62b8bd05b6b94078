package trie

import (
	"io"

	"github.com/tetengo/tetengo-go/internal/buf"
	"github.com/tetengo/tetengo-go/internal/format"
	"github.com/tetengo/tetengo-go/serial"
)

// MemoryStorage is a mutable, in-process Storage. It is what the builder
// populates and what callers reload into when they don't want to keep a
// serialized file memory-mapped.
type MemoryStorage[V any] struct {
	cells  []uint32
	values []*V
}

// NewMemoryStorage returns a storage holding a single root cell, matching
// the empty-trie invariant (base_check_size == 1, cell == the empty sentinel).
func NewMemoryStorage[V any]() *MemoryStorage[V] {
	return &MemoryStorage[V]{cells: []uint32{format.EmptyCell}}
}

func (s *MemoryStorage[V]) ensureCell(i int) {
	for len(s.cells) <= i {
		s.cells = append(s.cells, format.EmptyCell)
	}
}

// BaseCheckSize returns the number of allocated cells.
func (s *MemoryStorage[V]) BaseCheckSize() int { return len(s.cells) }

// BaseAt returns the base offset of cell i, growing the array if necessary.
func (s *MemoryStorage[V]) BaseAt(i int) int32 {
	s.ensureCell(i)
	base, _ := format.DecodeCell(s.cells[i])
	return base
}

// SetBaseAt sets the base offset of cell i, growing the array if necessary.
func (s *MemoryStorage[V]) SetBaseAt(i int, base int32) error {
	s.ensureCell(i)
	_, check := format.DecodeCell(s.cells[i])
	s.cells[i] = format.EncodeCell(base, check)
	return nil
}

// CheckAt returns the check byte of cell i, growing the array if necessary.
func (s *MemoryStorage[V]) CheckAt(i int) uint8 {
	s.ensureCell(i)
	_, check := format.DecodeCell(s.cells[i])
	return check
}

// SetCheckAt sets the check byte of cell i, growing the array if necessary.
func (s *MemoryStorage[V]) SetCheckAt(i int, check uint8) error {
	s.ensureCell(i)
	base, _ := format.DecodeCell(s.cells[i])
	s.cells[i] = format.EncodeCell(base, check)
	return nil
}

// ValueCount returns the size of the value table.
func (s *MemoryStorage[V]) ValueCount() int { return len(s.values) }

// ValueAt returns the value at index i, if any.
func (s *MemoryStorage[V]) ValueAt(i int) (V, bool) {
	var zero V
	if i < 0 || i >= len(s.values) || s.values[i] == nil {
		return zero, false
	}
	return *s.values[i], true
}

// AddValueAt stores v at index i, growing the value table if necessary.
func (s *MemoryStorage[V]) AddValueAt(i int, v V) error {
	for len(s.values) <= i {
		s.values = append(s.values, nil)
	}
	stored := v
	s.values[i] = &stored
	return nil
}

// FillingRate returns 1 - empty/total over the base-check array.
func (s *MemoryStorage[V]) FillingRate() float64 {
	if len(s.cells) == 0 {
		return 0
	}
	empty := 0
	for _, c := range s.cells {
		if format.IsEmptyCell(c) {
			empty++
		}
	}
	return 1 - float64(empty)/float64(len(s.cells))
}

// Serialize writes the base-check array and value table to w, big-endian,
// in this order: cell count, cells, value count, fixed value size, then one
// slot per value index.
func (s *MemoryStorage[V]) Serialize(w io.Writer, vs serial.ValueSerializer[V]) error {
	var word [format.HeaderFieldSize]byte

	buf.PutU32BE(word[:], uint32(len(s.cells)))
	if _, err := w.Write(word[:]); err != nil {
		return err
	}
	for _, cell := range s.cells {
		buf.PutU32BE(word[:], cell)
		if _, err := w.Write(word[:]); err != nil {
			return err
		}
	}

	buf.PutU32BE(word[:], uint32(len(s.values)))
	if _, err := w.Write(word[:]); err != nil {
		return err
	}
	buf.PutU32BE(word[:], uint32(vs.FixedSize()))
	if _, err := w.Write(word[:]); err != nil {
		return err
	}

	fixedSize := vs.FixedSize()
	for i := range s.values {
		v, ok := s.ValueAt(i)
		if fixedSize == 0 {
			if !ok {
				var zero [format.VariableValueLengthSize]byte
				if _, err := w.Write(zero[:]); err != nil {
					return err
				}
				continue
			}
			if _, err := w.Write(vs.Serialize(v)); err != nil {
				return err
			}
			continue
		}
		if !ok {
			absent := make([]byte, fixedSize)
			for j := range absent {
				absent[j] = 0xFF
			}
			if _, err := w.Write(absent); err != nil {
				return err
			}
			continue
		}
		if _, err := w.Write(vs.Serialize(v)); err != nil {
			return err
		}
	}
	return nil
}
