package serial

import "github.com/tetengo/tetengo-go/internal/buf"

// ValueSerializer adapts a caller-supplied encode function into the codec
// shape the trie storage expects: variable-length values (fixedSize == 0)
// are written with a 4-byte big-endian length prefix; fixed-size values are
// written as exactly fixedSize bytes with no prefix.
type ValueSerializer[T any] struct {
	serialize func(T) []byte
	fixedSize int
}

// NewValueSerializer creates a value serializer. Pass fixedSize == 0 for
// variable-length values, or the constant encoded width otherwise.
func NewValueSerializer[T any](serialize func(T) []byte, fixedSize int) ValueSerializer[T] {
	return ValueSerializer[T]{serialize: serialize, fixedSize: fixedSize}
}

// FixedSize reports the configured fixed width, or 0 for variable-length.
func (s ValueSerializer[T]) FixedSize() int { return s.fixedSize }

// Serialize encodes v per the serializer's width convention.
func (s ValueSerializer[T]) Serialize(v T) []byte {
	payload := s.serialize(v)
	if s.fixedSize == 0 {
		out := make([]byte, stringLengthSize+len(payload))
		buf.PutU32BE(out, uint32(len(payload)))
		copy(out[stringLengthSize:], payload)
		return out
	}
	out := make([]byte, s.fixedSize)
	copy(out, payload)
	return out
}

// ValueDeserializer is the inverse of ValueSerializer.
type ValueDeserializer[T any] struct {
	deserialize func([]byte) (T, error)
	fixedSize   int
}

// NewValueDeserializer creates a value deserializer matching the width
// convention of the serializer that produced the stream.
func NewValueDeserializer[T any](deserialize func([]byte) (T, error), fixedSize int) ValueDeserializer[T] {
	return ValueDeserializer[T]{deserialize: deserialize, fixedSize: fixedSize}
}

// FixedSize reports the configured fixed width, or 0 for variable-length.
func (d ValueDeserializer[T]) FixedSize() int { return d.fixedSize }

// Deserialize decodes a value from the head of serialized.
func (d ValueDeserializer[T]) Deserialize(serialized []byte) (T, error) {
	var zero T
	if d.fixedSize == 0 {
		if len(serialized) < stringLengthSize {
			return zero, ErrTruncatedInput
		}
		length := int(buf.U32BE(serialized))
		rest := serialized[stringLengthSize:]
		if len(rest) < length {
			return zero, ErrTruncatedInput
		}
		return d.deserialize(rest[:length])
	}
	if len(serialized) < d.fixedSize {
		return zero, ErrTruncatedInput
	}
	return d.deserialize(serialized[:d.fixedSize])
}

// IsAbsentFixedValue reports whether a fixed-size value slot is unset: the
// trie's fixed-size value storage marks an absent entry by filling its slot
// with 0xFF bytes, since a well-formed serialized value of that width can
// never be all-0xFF (the length-prefixed form has no such restriction and
// never needs this check).
func IsAbsentFixedValue(raw []byte) bool {
	for _, b := range raw {
		if b != feEscapeLiteral {
			return false
		}
	}
	return len(raw) > 0
}
