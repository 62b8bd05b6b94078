package lattice

import (
	"math"

	"github.com/tetengo/tetengo-go/input"
)

// Lattice is a built word-graph: a sequence of steps from step 0 (BOS) to
// step n (EOS), with every node's Viterbi-optimal predecessor already
// computed.
type Lattice struct {
	steps [][]*Node
}

// New constructs a Lattice over in using vocab to find candidate entries
// and connection costs. A step that no entry ends at stays empty.
// Construction fails with ErrNoPath if no sequence of entries covers the
// whole input, and ErrOverflowCost if any path cost would overflow a signed
// 32-bit integer.
func New(in input.Input, vocab Vocabulary) (*Lattice, error) {
	n := in.Len()
	steps := make([][]*Node, n+1)
	steps[0] = []*Node{BOS()}

	for s := 1; s <= n; s++ {
		var candidates []*Node
		for sPrime := 0; sPrime < s; sPrime++ {
			predecessors := steps[sPrime]
			if len(predecessors) == 0 {
				continue
			}
			sub, err := in.Subrange(sPrime, s-sPrime)
			if err != nil {
				return nil, err
			}
			for _, entry := range vocab.FindEntries(sub) {
				node, err := buildCandidate(vocab, entry, len(candidates), sPrime, predecessors)
				if err != nil {
					return nil, err
				}
				candidates = append(candidates, node)
			}
		}
		steps[s] = candidates
	}
	if len(steps[n]) == 0 {
		return nil, ErrNoPath
	}

	eos, err := buildEos(vocab, n, steps[n])
	if err != nil {
		return nil, err
	}
	steps = append(steps, []*Node{eos})

	return &Lattice{steps: steps}, nil
}

func buildCandidate(vocab Vocabulary, entry EntryView, indexInStep, precedingStep int, predecessors []*Node) (*Node, error) {
	edgeCosts := make([]int32, len(predecessors))
	bestJ := -1
	var bestPrefixCost int64
	for j, p := range predecessors {
		conn, err := vocab.FindConnection(p, entry)
		if err != nil {
			return nil, err
		}
		edgeCosts[j] = conn.Cost
		total := int64(p.PathCost()) + int64(conn.Cost)
		if bestJ == -1 || total < bestPrefixCost {
			bestPrefixCost = total
			bestJ = j
		}
	}
	pathCost := bestPrefixCost + int64(entry.Cost())
	if pathCost > math.MaxInt32 {
		return nil, ErrOverflowCost
	}
	return NewMiddleNode(entry, indexInStep, precedingStep, edgeCosts, bestJ, int32(pathCost))
}

func buildEos(vocab Vocabulary, precedingStep int, predecessors []*Node) (*Node, error) {
	edgeCosts := make([]int32, len(predecessors))
	bestJ := -1
	var bestPrefixCost int64
	for j, p := range predecessors {
		conn, err := vocab.FindConnection(p, BosEosEntry)
		if err != nil {
			return nil, err
		}
		edgeCosts[j] = conn.Cost
		total := int64(p.PathCost()) + int64(conn.Cost)
		if bestJ == -1 || total < bestPrefixCost {
			bestPrefixCost = total
			bestJ = j
		}
	}
	if bestPrefixCost > math.MaxInt32 {
		return nil, ErrOverflowCost
	}
	return EOS(precedingStep, edgeCosts, bestJ, int32(bestPrefixCost)), nil
}

// StepCount returns the number of steps, BOS and EOS steps included.
func (l *Lattice) StepCount() int { return len(l.steps) }

// Step returns the nodes of step s.
func (l *Lattice) Step(s int) []*Node { return l.steps[s] }

// Eos returns the lattice's single EOS node.
func (l *Lattice) Eos() *Node { return l.steps[len(l.steps)-1][0] }

// BestPath reconstructs the Viterbi best path from BOS to EOS by following
// each node's BestPrecedingNode backwards, then reverses it to BOS-first
// order.
func (l *Lattice) BestPath() []*Node {
	path := []*Node{l.Eos()}
	cur := path[0]
	for !cur.IsBos() {
		prev := l.steps[cur.PrecedingStep()][cur.BestPrecedingNode()]
		path = append(path, prev)
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
