package trie

import (
	"io"

	"github.com/tetengo/tetengo-go/internal/buf"
	"github.com/tetengo/tetengo-go/internal/format"
	"github.com/tetengo/tetengo-go/serial"
)

// DeserializeMemoryStorage reads a storage previously written by
// (*MemoryStorage[V]).Serialize, decoding every value eagerly into process
// memory. Use OpenSharedStorage instead when the caller wants a zero-copy,
// memory-mapped read-only view.
func DeserializeMemoryStorage[V any](r io.Reader, vd serial.ValueDeserializer[V]) (*MemoryStorage[V], error) {
	var word [format.HeaderFieldSize]byte

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, serial.ErrTruncatedInput
	}
	cellCount := int(buf.U32BE(word[:]))

	cells := make([]uint32, cellCount)
	for i := range cells {
		if _, err := io.ReadFull(r, word[:]); err != nil {
			return nil, serial.ErrTruncatedInput
		}
		cells[i] = buf.U32BE(word[:])
	}

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, serial.ErrTruncatedInput
	}
	valueCount := int(buf.U32BE(word[:]))

	if _, err := io.ReadFull(r, word[:]); err != nil {
		return nil, serial.ErrTruncatedInput
	}
	fixedValueSize := int(buf.U32BE(word[:]))

	values := make([]*V, valueCount)
	for i := 0; i < valueCount; i++ {
		if fixedValueSize == 0 {
			var lenWord [format.HeaderFieldSize]byte
			if _, err := io.ReadFull(r, lenWord[:]); err != nil {
				return nil, serial.ErrTruncatedInput
			}
			length := int(buf.U32BE(lenWord[:]))
			if length == 0 {
				continue
			}
			payload := make([]byte, length)
			if _, err := io.ReadFull(r, payload); err != nil {
				return nil, serial.ErrTruncatedInput
			}
			combined := make([]byte, 0, format.HeaderFieldSize+length)
			combined = append(combined, lenWord[:]...)
			combined = append(combined, payload...)
			v, err := vd.Deserialize(combined)
			if err != nil {
				return nil, err
			}
			values[i] = &v
			continue
		}
		payload := make([]byte, fixedValueSize)
		if _, err := io.ReadFull(r, payload); err != nil {
			return nil, serial.ErrTruncatedInput
		}
		if serial.IsAbsentFixedValue(payload) {
			continue
		}
		v, err := vd.Deserialize(payload)
		if err != nil {
			return nil, err
		}
		values[i] = &v
	}

	return &MemoryStorage[V]{cells: cells, values: values}, nil
}
