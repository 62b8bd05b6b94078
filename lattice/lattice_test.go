package lattice_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tetengo/tetengo-go/input"
	"github.com/tetengo/tetengo-go/lattice"
)

// tagVocabulary is a tiny two-step, two-candidate-per-step grammar used to
// exercise Viterbi construction and N-best enumeration (spec scenario S5).
func tagVocabulary() *lattice.MapVocabulary {
	entries := map[string][]lattice.VocabEntry{
		"A": {{Value: "X", Cost: 5}, {Value: "Y", Cost: 6}},
		"B": {{Value: "X", Cost: 2}, {Value: "Y", Cost: 3}},
	}
	costs := map[[2]string]int32{
		{"BOS", "X"}: 1, {"BOS", "Y"}: 2,
		{"X", "X"}: 1, {"X", "Y"}: 3,
		{"Y", "X"}: 2, {"Y", "Y"}: 1,
		{"X", "EOS"}: 1, {"Y", "EOS"}: 1,
	}
	connect := func(from *lattice.Node, to lattice.EntryView) (lattice.Connection, error) {
		key := [2]string{tagOf(from), tagOfEntry(to)}
		cost, ok := costs[key]
		if !ok {
			return lattice.Connection{}, fmt.Errorf("no connection cost for %v", key)
		}
		return lattice.Connection{Cost: cost}, nil
	}
	return lattice.NewMapVocabulary(entries, connect)
}

func tagOf(n *lattice.Node) string {
	if n.IsBos() {
		return "BOS"
	}
	v, _ := n.Value()
	return v.(string)
}

func tagOfEntry(e lattice.EntryView) string {
	if e.IsBosEos() {
		return "EOS"
	}
	v, _ := e.Value()
	return v.(string)
}

func TestLattice_Build_BestPath(t *testing.T) {
	l, err := lattice.New(input.NewStringInput("AB"), tagVocabulary())
	require.NoError(t, err)
	require.Equal(t, 4, l.StepCount()) // BOS, step1, step2, EOS

	best := l.BestPath()
	require.Len(t, best, 4)
	require.True(t, best[0].IsBos())
	require.True(t, best[len(best)-1].IsEos())
	require.Equal(t, l.Eos().PathCost(), best[len(best)-1].PathCost())
}

func TestLattice_Build_NoPath(t *testing.T) {
	vocab := lattice.NewMapVocabulary(map[string][]lattice.VocabEntry{}, func(*lattice.Node, lattice.EntryView) (lattice.Connection, error) {
		return lattice.Connection{}, nil
	})
	_, err := lattice.New(input.NewStringInput("AB"), vocab)
	require.ErrorIs(t, err, lattice.ErrNoPath)
}

func TestNewMiddleNode_RejectsBosEosEntry(t *testing.T) {
	_, err := lattice.NewMiddleNode(lattice.BosEosEntry, 0, 0, nil, -1, 0)
	require.ErrorIs(t, err, lattice.ErrBosOrEosEntryNotAllowed)
}
