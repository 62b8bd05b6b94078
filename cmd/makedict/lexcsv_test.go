package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetengo/tetengo-go/trie"
)

func makeLexRow(surface, lemmaReading, lemmaSurface, pos1, pos4 string) string {
	fields := make([]string, lexCSVFieldCount)
	fields[fieldSurface] = surface
	fields[fieldLemmaReading] = lemmaReading
	fields[fieldLemmaSurface] = lemmaSurface
	fields[fieldPOS1] = pos1
	fields[fieldPOS4] = pos4
	for i, f := range fields {
		if f == "" {
			fields[i] = "*"
		}
	}
	return strings.Join(fields, ",")
}

func TestLoadLexCSV_IndexesByLemma(t *testing.T) {
	csv := makeLexRow("食べた", "タベル", "食べる", "動詞", "*") + "\n"
	elements, err := loadLexCSV(strings.NewReader(csv), nil)
	require.NoError(t, err)

	keys := make(map[string]bool)
	for _, e := range elements {
		keys[string(e.Key)] = true
	}
	require.True(t, keys["タベル"])
	require.True(t, keys["食べる"])
}

func TestLoadLexCSV_AuxiliarySymbolUsesSurfaceOnly(t *testing.T) {
	csv := makeLexRow("、", "*", "*", posSymbol, posAuxiliary) + "\n"
	elements, err := loadLexCSV(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	require.Equal(t, "、", string(elements[0].Key))
}

func TestLoadLexCSV_MalformedRowNamesLine(t *testing.T) {
	csv := "a,b,c\n"
	_, err := loadLexCSV(strings.NewReader(csv), nil)
	require.Error(t, err)
	var malformed *ErrMalformedLexCSV
	require.ErrorAs(t, err, &malformed)
	require.Equal(t, 1, malformed.Line)
}

func TestLoadLexCSV_OverflowSentinel(t *testing.T) {
	row := makeLexRow("、", "*", "*", posSymbol, posAuxiliary)
	csv := strings.Repeat(row+"\n", locationsCapacity+2)
	elements, err := loadLexCSV(strings.NewReader(csv), nil)
	require.NoError(t, err)
	require.Len(t, elements, 1)
	require.Equal(t, Location{}, elements[0].Value[locationsCapacity-1])
}

func TestBuildAndSerializeTrie_RoundTrips(t *testing.T) {
	csv := makeLexRow("食べた", "タベル", "食べる", "動詞", "*") + "\n"
	elements, err := loadLexCSV(strings.NewReader(csv), nil)
	require.NoError(t, err)

	storage, err := buildTrie(elements)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, serializeTrie(storage, &buf))
	require.NotEmpty(t, buf.Bytes())

	reloaded, err := trie.DeserializeMemoryStorage(&buf, locationsDeserializer)
	require.NoError(t, err)
	locs, ok := trie.New[Locations](reloaded).Lookup([]byte("タベル"))
	require.True(t, ok)
	require.Equal(t, Location{Offset: 0, Length: uint32(len(csv) - 1)}, locs[0])
}

func TestLocationsCodec_RoundTrips(t *testing.T) {
	locs := Locations{{Offset: 10, Length: 20}, {Offset: 30, Length: 40}}
	encoded := serializeLocations(locs)
	decoded, err := deserializeLocations(encoded)
	require.NoError(t, err)
	require.Equal(t, locs, decoded)
}
