package main

import (
	"encoding/binary"
	"io"

	"github.com/tetengo/tetengo-go/serial"
	"github.com/tetengo/tetengo-go/trie"
	"github.com/tetengo/tetengo-go/trie/builder"
)

const locationSize = 4 + 4 // Offset, Length, each a uint32
const locationsSize = locationsCapacity * locationSize

var locationsSerializer = serial.NewValueSerializer(serializeLocations, locationsSize)
var locationsDeserializer = serial.NewValueDeserializer(deserializeLocations, locationsSize)

func serializeLocations(locs Locations) []byte {
	out := make([]byte, 0, locationsSize)
	for _, loc := range locs {
		var buf [locationSize]byte
		binary.BigEndian.PutUint32(buf[0:4], loc.Offset)
		binary.BigEndian.PutUint32(buf[4:8], loc.Length)
		out = append(out, buf[:]...)
	}
	return out
}

func deserializeLocations(raw []byte) (Locations, error) {
	var locs Locations
	if len(raw) < locationsSize {
		return locs, serial.ErrTruncatedInput
	}
	for i := range locs {
		base := i * locationSize
		locs[i] = Location{
			Offset: binary.BigEndian.Uint32(raw[base : base+4]),
			Length: binary.BigEndian.Uint32(raw[base+4 : base+8]),
		}
	}
	return locs, nil
}

// buildTrie constructs a double-array trie over the accumulated key/location
// elements using the conventional density factor.
func buildTrie(elements []builder.Element[Locations]) (*trie.MemoryStorage[Locations], error) {
	return builder.Build(elements, builder.DefaultOptions())
}

// serializeTrie writes storage's binary form, using the fixed-width
// locations codec so the trie's value slots hold no length prefix.
func serializeTrie(storage *trie.MemoryStorage[Locations], w io.Writer) error {
	return storage.Serialize(w, locationsSerializer)
}

// locationsDeserializer pairs with locationsSerializer and is exercised by
// this package's build-and-serialize round-trip test.
