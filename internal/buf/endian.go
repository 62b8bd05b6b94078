// Package buf contains low-level, allocation-free helpers for reading and
// writing the big-endian integers that make up the trie's binary format.
package buf

import "encoding/binary"

// U32BE reads a big-endian uint32 from b. Returns 0 when b is too short.
func U32BE(b []byte) uint32 {
	if len(b) < 4 {
		return 0
	}
	return binary.BigEndian.Uint32(b)
}

// PutU32BE writes v to b[0:4] in big-endian order.
func PutU32BE(b []byte, v uint32) {
	binary.BigEndian.PutUint32(b, v)
}

// I32BE reads a big-endian two's-complement int32 from b. Returns 0 when b
// is too short.
func I32BE(b []byte) int32 {
	if len(b) < 4 {
		return 0
	}
	return int32(binary.BigEndian.Uint32(b))
}

// PutI32BE writes v to b[0:4] in big-endian two's-complement order.
func PutI32BE(b []byte, v int32) {
	binary.BigEndian.PutUint32(b, uint32(v))
}
