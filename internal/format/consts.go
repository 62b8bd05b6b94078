// Package format houses the layout constants for the double-array trie's
// binary storage format. The goal is to keep the magic numbers in one place,
// independent from the packages that serialize and deserialize around them.
package format

const (
	// CellSize is the width in bytes of a single base-check cell.
	CellSize = 4

	// CheckMask isolates the low 8 bits of a cell: the check byte.
	CheckMask = 0xFF

	// BaseShift is how far the signed base offset is shifted up within a cell.
	BaseShift = 8

	// EmptyCell is the sentinel value of an unused cell: base = 0, check = 0xFF.
	EmptyCell uint32 = 0x000000FF

	// VacantCheck is the check-byte value of a cell with no incoming edge.
	VacantCheck = 0xFF

	// KeyTerminator is the reserved byte appended to every stored key so the
	// stored key set is prefix-free. It must never occur as a real key byte;
	// serialized integers escape it (see the serial package).
	KeyTerminator = 0xFE

	// RootIndex is the base-check array index of the trie root.
	RootIndex = 0

	// HeaderFieldSize is the width in bytes of each u32 header field
	// (base_check_count, value_count, fixed_value_size).
	HeaderFieldSize = 4

	// VariableValueLengthSize is the width in bytes of a variable-length
	// value's length prefix.
	VariableValueLengthSize = 4

	// DefaultDensityFactor is the builder's default tradeoff between probe
	// distance and filling rate.
	DefaultDensityFactor = 1000
)

// SignExtendBase sign-extends a 24-bit two's-complement base offset, as
// stored in the upper 24 bits of a cell, to a full int32.
func SignExtendBase(base24 int32) int32 {
	const signBit = 1 << 23
	if base24&signBit != 0 {
		return base24 | ^int32(0xFFFFFF)
	}
	return base24 & 0xFFFFFF
}
