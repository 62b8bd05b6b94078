package input_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetengo/tetengo-go/input"
)

func TestStringInput_EqualAndLen(t *testing.T) {
	a := input.NewStringInput("UTIGOSI")
	b := input.NewStringInput("UTIGOSI")
	c := input.NewStringInput("UTO")

	require.True(t, a.Equal(b))
	require.False(t, a.Equal(c))
	require.Equal(t, 7, a.Len())
}

func TestStringInput_Subrange(t *testing.T) {
	a := input.NewStringInput("UTIGOSI")

	sub, err := a.Subrange(2, 3)
	require.NoError(t, err)
	require.Equal(t, "IGO", sub.(*input.StringInput).Value())

	_, err = a.Subrange(5, 10)
	require.ErrorIs(t, err, input.ErrOutOfRange)
}

func TestStringInput_Append(t *testing.T) {
	a := input.NewStringInput("UTI")
	b := input.NewStringInput("GOSI")

	joined, err := a.Append(b)
	require.NoError(t, err)
	require.Equal(t, "UTIGOSI", joined.(*input.StringInput).Value())
}
