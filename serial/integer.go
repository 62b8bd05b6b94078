package serial

import "unsafe"

// Unsigned is the set of integer widths the trie's binary format uses for
// its fixed-width fields (cell counts, lengths, and caller-escaped keys).
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

const (
	feEscapeByte    = 0xFE
	feEscapeLiteral = 0xFF
	feEscapedZero   = 0x00
	feEscapedOne    = 0x01
)

// IntegerSerializer serializes a fixed-width unsigned integer in big-endian
// order, optionally escaping bytes so the result never contains a literal
// 0xFE key-terminator byte.
type IntegerSerializer[T Unsigned] struct {
	feEscape bool
}

// NewIntegerSerializer creates an integer serializer. When feEscape is true,
// an output byte equal to 0xFE is emitted as {0xFE, 0x00} and a literal
// 0xFF as {0xFE, 0x01}, per the trie's key-escaping convention.
func NewIntegerSerializer[T Unsigned](feEscape bool) IntegerSerializer[T] {
	return IntegerSerializer[T]{feEscape: feEscape}
}

// Serialize encodes v as big-endian bytes, escaping them if configured.
func (s IntegerSerializer[T]) Serialize(v T) []byte {
	var zero T
	width := int(unsafe.Sizeof(zero))
	raw := make([]byte, width)
	x := uint64(v)
	for i := width - 1; i >= 0; i-- {
		raw[i] = byte(x)
		x >>= 8
	}
	if !s.feEscape {
		return raw
	}
	return feEscapeBytes(raw)
}

// IntegerDeserializer is the inverse of IntegerSerializer.
type IntegerDeserializer[T Unsigned] struct {
	feEscape bool
}

// NewIntegerDeserializer creates an integer deserializer matching the escape
// configuration of the serializer that produced the stream.
func NewIntegerDeserializer[T Unsigned](feEscape bool) IntegerDeserializer[T] {
	return IntegerDeserializer[T]{feEscape: feEscape}
}

// Deserialize decodes a big-endian (optionally escaped) integer from the
// head of serialized, returning ErrTruncatedInput when too few bytes remain
// and ErrInvalidEscape when an escape sequence is malformed.
func (d IntegerDeserializer[T]) Deserialize(serialized []byte) (T, error) {
	var zero T
	width := int(unsafe.Sizeof(zero))

	raw := serialized
	if d.feEscape {
		unescaped, _, err := feUnescapeBytes(serialized, width)
		if err != nil {
			return zero, err
		}
		raw = unescaped
	}
	if len(raw) < width {
		return zero, ErrTruncatedInput
	}

	var x uint64
	for _, b := range raw[:width] {
		x = x<<8 | uint64(b)
	}
	return T(x), nil
}

// feEscapeBytes rewrites raw so that every 0xFE becomes {0xFE, 0x00} and
// every 0xFF becomes {0xFE, 0x01}, leaving every other byte untouched.
func feEscapeBytes(raw []byte) []byte {
	out := make([]byte, 0, len(raw))
	for _, b := range raw {
		switch b {
		case feEscapeByte:
			out = append(out, feEscapeByte, feEscapedZero)
		case feEscapeLiteral:
			out = append(out, feEscapeByte, feEscapedOne)
		default:
			out = append(out, b)
		}
	}
	return out
}

// feUnescapeBytes reads from serialized until it has decoded want bytes (or
// run out of input), undoing feEscapeBytes. It returns the decoded bytes and
// the number of source bytes consumed.
func feUnescapeBytes(serialized []byte, want int) ([]byte, int, error) {
	out := make([]byte, 0, want)
	i := 0
	for len(out) < want {
		if i >= len(serialized) {
			return nil, 0, ErrTruncatedInput
		}
		b := serialized[i]
		if b != feEscapeByte {
			out = append(out, b)
			i++
			continue
		}
		if i+1 >= len(serialized) {
			return nil, 0, ErrTruncatedInput
		}
		switch serialized[i+1] {
		case feEscapedZero:
			out = append(out, feEscapeByte)
		case feEscapedOne:
			out = append(out, feEscapeLiteral)
		default:
			return nil, 0, ErrInvalidEscape
		}
		i += 2
	}
	return out, i, nil
}
