package serial

import "github.com/tetengo/tetengo-go/internal/buf"

const stringLengthSize = 4

// StringSerializer serializes a string as a 4-byte big-endian length prefix
// followed by its raw bytes. fe_escape never applies to strings: neither the
// length prefix nor the payload bytes are escaped.
type StringSerializer struct{}

// NewStringSerializer creates a string serializer.
func NewStringSerializer() StringSerializer { return StringSerializer{} }

// Serialize encodes s as a length-prefixed byte string.
func (StringSerializer) Serialize(s string) []byte {
	out := make([]byte, stringLengthSize+len(s))
	buf.PutU32BE(out, uint32(len(s)))
	copy(out[stringLengthSize:], s)
	return out
}

// StringDeserializer is the inverse of StringSerializer.
type StringDeserializer struct{}

// NewStringDeserializer creates a string deserializer.
func NewStringDeserializer() StringDeserializer { return StringDeserializer{} }

// Deserialize reads a length-prefixed string from the head of serialized.
func (StringDeserializer) Deserialize(serialized []byte) (string, error) {
	if len(serialized) < stringLengthSize {
		return "", ErrTruncatedInput
	}
	length := int(buf.U32BE(serialized))
	rest := serialized[stringLengthSize:]
	if len(rest) < length {
		return "", ErrTruncatedInput
	}
	return string(rest[:length]), nil
}
