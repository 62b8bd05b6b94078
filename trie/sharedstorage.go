package trie

import (
	"io"

	"github.com/tetengo/tetengo-go/internal/buf"
	"github.com/tetengo/tetengo-go/internal/format"
	"github.com/tetengo/tetengo-go/internal/mmfile"
	"github.com/tetengo/tetengo-go/serial"
)

// SharedStorage is a read-only Storage backed by a serialized blob from
// mmfile.Map. On Unix the blob is memory-mapped and is never copied into
// process heap memory; on other platforms Map reads the file into a heap
// slice. Either way it decodes directly from those bytes.
type SharedStorage[V any] struct {
	data  []byte
	unmap func() error

	cellCount int
	cellsOff  int

	valueCount     int
	fixedValueSize int
	valueOffsets   []int // valueOffsets[i] is the start of slot i's payload (after any length prefix); len == valueCount+1, sentinel trailing entry marks end-of-data
	valuePresent   []bool

	deserialize serial.ValueDeserializer[V]
}

// OpenSharedStorage memory-maps the serialized trie at path and indexes its
// value table for O(1) random access.
func OpenSharedStorage[V any](path string, vd serial.ValueDeserializer[V]) (*SharedStorage[V], error) {
	data, unmap, err := mmfile.Map(path)
	if err != nil {
		return nil, err
	}
	s, err := newSharedStorageFromBytes(data, vd)
	if err != nil {
		if unmap != nil {
			_ = unmap()
		}
		return nil, err
	}
	s.unmap = unmap
	return s, nil
}

func newSharedStorageFromBytes[V any](data []byte, vd serial.ValueDeserializer[V]) (*SharedStorage[V], error) {
	if !buf.Has(data, 0, format.HeaderFieldSize) {
		return nil, serial.ErrTruncatedInput
	}
	cellCount := int(buf.U32BE(data))
	cellsOff := format.HeaderFieldSize
	afterCells := cellsOff + cellCount*format.CellSize
	if !buf.Has(data, afterCells, 2*format.HeaderFieldSize) {
		return nil, serial.ErrTruncatedInput
	}
	valueCount := int(buf.U32BE(data[afterCells:]))
	fixedValueSize := int(buf.U32BE(data[afterCells+format.HeaderFieldSize:]))

	s := &SharedStorage[V]{
		data:           data,
		cellCount:      cellCount,
		cellsOff:       cellsOff,
		valueCount:     valueCount,
		fixedValueSize: fixedValueSize,
		deserialize:    vd,
		valueOffsets:   make([]int, 0, valueCount+1),
		valuePresent:   make([]bool, 0, valueCount),
	}

	pos := afterCells + 2*format.HeaderFieldSize
	for i := 0; i < valueCount; i++ {
		if fixedValueSize == 0 {
			if !buf.Has(data, pos, format.VariableValueLengthSize) {
				return nil, serial.ErrTruncatedInput
			}
			length := int(buf.U32BE(data[pos:]))
			payloadOff := pos + format.VariableValueLengthSize
			if !buf.Has(data, payloadOff, length) {
				return nil, serial.ErrTruncatedInput
			}
			s.valueOffsets = append(s.valueOffsets, payloadOff)
			s.valuePresent = append(s.valuePresent, length > 0)
			pos = payloadOff + length
			continue
		}
		slot, ok := buf.Slice(data, pos, fixedValueSize)
		if !ok {
			return nil, serial.ErrTruncatedInput
		}
		s.valueOffsets = append(s.valueOffsets, pos)
		s.valuePresent = append(s.valuePresent, !serial.IsAbsentFixedValue(slot))
		pos += fixedValueSize
	}
	s.valueOffsets = append(s.valueOffsets, pos)
	return s, nil
}

// Close releases the underlying memory mapping.
func (s *SharedStorage[V]) Close() error {
	if s.unmap == nil {
		return nil
	}
	return s.unmap()
}

// BaseCheckSize returns the number of cells in the mapped array.
func (s *SharedStorage[V]) BaseCheckSize() int { return s.cellCount }

func (s *SharedStorage[V]) cellAt(i int) uint32 {
	if i < 0 || i >= s.cellCount {
		return format.EmptyCell
	}
	off := s.cellsOff + i*format.CellSize
	return buf.U32BE(s.data[off:])
}

// BaseAt returns the base offset of cell i. Indices beyond the mapped array
// read as the empty sentinel's base (0); the mapping cannot grow.
func (s *SharedStorage[V]) BaseAt(i int) int32 {
	base, _ := format.DecodeCell(s.cellAt(i))
	return base
}

// SetBaseAt always fails: shared storage is read-only.
func (s *SharedStorage[V]) SetBaseAt(int, int32) error { return ErrReadOnlyStorage }

// CheckAt returns the check byte of cell i.
func (s *SharedStorage[V]) CheckAt(i int) uint8 {
	_, check := format.DecodeCell(s.cellAt(i))
	return check
}

// SetCheckAt always fails: shared storage is read-only.
func (s *SharedStorage[V]) SetCheckAt(int, uint8) error { return ErrReadOnlyStorage }

// ValueCount returns the size of the value table.
func (s *SharedStorage[V]) ValueCount() int { return s.valueCount }

// ValueAt decodes and returns the value at index i, if present.
func (s *SharedStorage[V]) ValueAt(i int) (V, bool) {
	var zero V
	if i < 0 || i >= s.valueCount || !s.valuePresent[i] {
		return zero, false
	}
	start := s.valueOffsets[i]
	end := s.valueOffsets[i+1]
	if s.fixedValueSize == 0 {
		// The deserializer expects the same bytes the serializer produced,
		// length prefix included, so hand it the whole slot rather than
		// just the payload past the prefix.
		lengthOff := start - format.VariableValueLengthSize
		length := int(buf.U32BE(s.data[lengthOff:]))
		v, err := s.deserialize.Deserialize(s.data[lengthOff : start+length])
		if err != nil {
			return zero, false
		}
		return v, true
	}
	v, err := s.deserialize.Deserialize(s.data[start:end])
	if err != nil {
		return zero, false
	}
	return v, true
}

// AddValueAt always fails: shared storage is read-only.
func (s *SharedStorage[V]) AddValueAt(int, V) error { return ErrReadOnlyStorage }

// FillingRate returns 1 - empty/total over the mapped base-check array.
func (s *SharedStorage[V]) FillingRate() float64 {
	if s.cellCount == 0 {
		return 0
	}
	empty := 0
	for i := 0; i < s.cellCount; i++ {
		if format.IsEmptyCell(s.cellAt(i)) {
			empty++
		}
	}
	return 1 - float64(empty)/float64(s.cellCount)
}

// Serialize writes the already-serialized mapped bytes back out verbatim;
// vs is accepted only to satisfy the Storage interface and is not consulted.
func (s *SharedStorage[V]) Serialize(w io.Writer, _ serial.ValueSerializer[V]) error {
	_, err := w.Write(s.data)
	return err
}
