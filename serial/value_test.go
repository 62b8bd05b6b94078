package serial

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValueSerializer_Variable(t *testing.T) {
	s := NewValueSerializer(func(v string) []byte { return []byte(v) }, 0)
	d := NewValueDeserializer(func(b []byte) (string, error) { return string(b), nil }, 0)

	encoded := s.Serialize("piyo")
	require.Equal(t, []byte{0x00, 0x00, 0x00, 0x04, 'p', 'i', 'y', 'o'}, encoded)

	got, err := d.Deserialize(encoded)
	require.NoError(t, err)
	require.Equal(t, "piyo", got)
}

func TestValueSerializer_Fixed(t *testing.T) {
	s := NewValueSerializer(func(v int32) []byte {
		return []byte{byte(v >> 24), byte(v >> 16), byte(v >> 8), byte(v)}
	}, 4)
	d := NewValueDeserializer(func(b []byte) (int32, error) {
		return int32(b[0])<<24 | int32(b[1])<<16 | int32(b[2])<<8 | int32(b[3]), nil
	}, 4)

	encoded := s.Serialize(42)
	require.Len(t, encoded, 4)

	got, err := d.Deserialize(encoded)
	require.NoError(t, err)
	require.Equal(t, int32(42), got)
}

func TestIsAbsentFixedValue(t *testing.T) {
	require.True(t, IsAbsentFixedValue([]byte{0xFF, 0xFF, 0xFF, 0xFF}))
	require.False(t, IsAbsentFixedValue([]byte{0xFF, 0xFF, 0xFF, 0x00}))
	require.False(t, IsAbsentFixedValue(nil))
}
