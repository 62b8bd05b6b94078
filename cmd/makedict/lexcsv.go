package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tetengo/tetengo-go/trie/builder"
)

const lexCSVFieldCount = 33

// Field indices used to pick the key(s) and to detect the auxiliary-symbol
// row shape that collapses to a single key.
const (
	fieldSurface       = 0
	fieldPOS1          = 16
	fieldPOS4          = 23
	fieldLemmaReading  = 12
	fieldLemmaSurface  = 24
)

const posSymbol = "記号"
const posAuxiliary = "補助"

// Location is a (byte_offset, byte_length) pair locating one source row.
type Location struct {
	Offset uint32
	Length uint32
}

// Locations holds up to four source-row locations for a key. Once more than
// four rows share a key, the final slot is overwritten with the (0, 0)
// sentinel and no further rows are recorded for it.
type Locations [4]Location

const locationsCapacity = len(Locations{})

// ErrMalformedLexCSV is returned when a row does not split into exactly
// lexCSVFieldCount fields.
type ErrMalformedLexCSV struct {
	Line  int
	Found int
}

func (e *ErrMalformedLexCSV) Error() string {
	return fmt.Sprintf("lex.csv line %d: expected %d fields, found %d", e.Line, lexCSVFieldCount, e.Found)
}

// loadLexCSV reads a UniDic lex.csv stream and accumulates, for every
// surface-form key extracted from each row, the byte locations of the rows
// it was seen in. progress is invoked after every non-blank row with that
// row's 1-based line number (blank lines count toward the number).
func loadLexCSV(r io.Reader, progress func(rows int)) ([]builder.Element[Locations], error) {
	index := make(map[string]*Locations)
	seen := make(map[string]int)
	order := make([]string, 0)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var offset uint32
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := scanner.Text()
		length := uint32(len(line))
		lineOffset := offset
		offset += length + 1 // account for the stripped newline

		if strings.TrimSpace(line) == "" {
			continue
		}

		fields := splitLexCSVLine(line)
		if len(fields) != lexCSVFieldCount {
			return nil, &ErrMalformedLexCSV{Line: lineNo, Found: len(fields)}
		}

		for _, key := range lexCSVKeys(fields) {
			if key == "" {
				continue
			}
			locs, ok := index[key]
			if !ok {
				locs = &Locations{}
				index[key] = locs
				order = append(order, key)
			}
			seen[key]++
			appendLocation(locs, seen[key], Location{Offset: lineOffset, Length: length})
		}

		if progress != nil {
			progress(lineNo)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	elements := make([]builder.Element[Locations], 0, len(order))
	for _, key := range order {
		elements = append(elements, builder.Element[Locations]{Key: []byte(key), Value: *index[key]})
	}
	return elements, nil
}

// lexCSVKeys picks the surface form(s) that index a lex.csv row. Auxiliary
// symbol rows (POS-1 "記号", POS-4 "補助") collapse to their raw surface
// form; every other row is indexed under both its lemma reading and lemma
// surface form, since either may be used to look the entry back up.
func lexCSVKeys(fields []string) []string {
	if fields[fieldPOS1] == posSymbol && fields[fieldPOS4] == posAuxiliary {
		return []string{fields[fieldSurface]}
	}
	return []string{fields[fieldLemmaReading], fields[fieldLemmaSurface]}
}

// appendLocation records loc, the n-th (1-based) location seen for a key, in
// slot n-1 of locs; from the first location past capacity on, the final slot
// holds the (0, 0) overflow sentinel.
func appendLocation(locs *Locations, n int, loc Location) {
	if n <= locationsCapacity {
		locs[n-1] = loc
		return
	}
	locs[locationsCapacity-1] = Location{}
}

// splitLexCSVLine splits a comma-separated row and strips one layer of
// surrounding double quotes from each field.
func splitLexCSVLine(line string) []string {
	raw := strings.Split(line, ",")
	fields := make([]string, len(raw))
	for i, f := range raw {
		fields[i] = strings.Trim(f, `"`)
	}
	return fields
}
