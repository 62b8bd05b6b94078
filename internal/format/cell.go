package format

// DecodeCell splits a raw 32-bit cell word into its signed base offset
// (sign-extended from the upper 24 bits) and its unsigned check byte (the
// lower 8 bits).
func DecodeCell(word uint32) (base int32, check uint8) {
	base24 := int32(word >> BaseShift)
	return SignExtendBase(base24), uint8(word & CheckMask)
}

// EncodeCell packs a signed base offset and a check byte into a raw cell
// word. base is truncated to 24 bits before packing.
func EncodeCell(base int32, check uint8) uint32 {
	base24 := uint32(base) & 0x00FFFFFF
	return (base24 << BaseShift) | uint32(check)
}

// IsEmptyCell reports whether word is the empty-cell sentinel.
func IsEmptyCell(word uint32) bool {
	return word == EmptyCell
}

// ValueIndexFromBase recovers the value-table index encoded in a leaf cell's
// base offset: base = -index-1.
func ValueIndexFromBase(base int32) int {
	return int(-base - 1)
}

// BaseFromValueIndex is the inverse of ValueIndexFromBase.
func BaseFromValueIndex(index int) int32 {
	return int32(-index - 1)
}
