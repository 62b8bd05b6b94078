package format

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeCell_RoundTrip(t *testing.T) {
	cases := []struct {
		base  int32
		check uint8
	}{
		{0, 0xFF},
		{42, 0x18},
		{-1, 0x00},
		{-2424, 0x7F},
	}
	for _, c := range cases {
		word := EncodeCell(c.base, c.check)
		base, check := DecodeCell(word)
		require.Equal(t, c.base, base)
		require.Equal(t, c.check, check)
	}
}

func TestEmptyCell(t *testing.T) {
	base, check := DecodeCell(EmptyCell)
	require.Equal(t, int32(0), base)
	require.Equal(t, uint8(VacantCheck), check)
	require.True(t, IsEmptyCell(EmptyCell))
}

func TestValueIndexRoundTrip(t *testing.T) {
	for _, idx := range []int{0, 1, 4, 100} {
		base := BaseFromValueIndex(idx)
		require.Equal(t, idx, ValueIndexFromBase(base))
	}
}
