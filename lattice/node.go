package lattice

import "github.com/tetengo/tetengo-go/input"

// kind tags a Node as one of the three lattice vertex variants.
type kind int

const (
	kindBos kind = iota
	kindEos
	kindMiddle
)

// Node is a lattice vertex. BOS carries only an (empty) preceding-edge-cost
// vector. EOS additionally carries a best-preceding-node index, a preceding
// step, and an accumulated path cost. Middle carries a key, a value, its
// position within its step, and the same preceding-step/edge-cost/best-node
// bookkeeping as EOS.
type Node struct {
	kind kind

	key   input.Input
	value any

	indexInStep   int
	precedingStep int

	// precedingEdgeCosts holds one connection cost per node of the
	// preceding step. The lattice builder allocates it once for this node;
	// it is not shared with other nodes.
	precedingEdgeCosts []int32

	bestPrecedingNode int
	nodeCost          int32
	pathCost          int32
}

// BOS returns a fresh beginning-of-sequence node.
func BOS() *Node {
	return &Node{kind: kindBos, bestPrecedingNode: -1}
}

// EOS constructs the end-of-sequence node found by the lattice builder.
func EOS(precedingStep int, precedingEdgeCosts []int32, bestPrecedingNode int, pathCost int32) *Node {
	return &Node{
		kind:               kindEos,
		precedingStep:      precedingStep,
		precedingEdgeCosts: precedingEdgeCosts,
		bestPrecedingNode:  bestPrecedingNode,
		pathCost:           pathCost,
	}
}

// NewMiddleNode constructs an interior node from a concrete vocabulary
// entry. It fails with ErrBosOrEosEntryNotAllowed if entry is BosEosEntry.
func NewMiddleNode(entry EntryView, indexInStep, precedingStep int, precedingEdgeCosts []int32, bestPrecedingNode int, pathCost int32) (*Node, error) {
	if entry.IsBosEos() {
		return nil, ErrBosOrEosEntryNotAllowed
	}
	key, _ := entry.Key()
	value, _ := entry.Value()
	return &Node{
		kind:               kindMiddle,
		key:                key,
		value:              value,
		indexInStep:        indexInStep,
		precedingStep:      precedingStep,
		precedingEdgeCosts: precedingEdgeCosts,
		bestPrecedingNode:  bestPrecedingNode,
		nodeCost:           entry.Cost(),
		pathCost:           pathCost,
	}, nil
}

// IsBos reports whether this is the BOS sentinel.
func (n *Node) IsBos() bool { return n.kind == kindBos }

// IsEos reports whether this is the EOS sentinel.
func (n *Node) IsEos() bool { return n.kind == kindEos }

// Key returns the node's key. BOS and EOS return (nil, false).
func (n *Node) Key() (input.Input, bool) {
	if n.kind != kindMiddle {
		return nil, false
	}
	return n.key, true
}

// Value returns the node's opaque payload. BOS and EOS return (nil, false).
func (n *Node) Value() (any, bool) {
	if n.kind != kindMiddle {
		return nil, false
	}
	return n.value, true
}

// IndexInStep returns the node's position within its own step.
func (n *Node) IndexInStep() int { return n.indexInStep }

// PrecedingStep returns the index of the step holding this node's predecessors.
func (n *Node) PrecedingStep() int { return n.precedingStep }

// PrecedingEdgeCosts returns the per-predecessor connection costs computed
// when this node was built, indexed the same way as its preceding step.
func (n *Node) PrecedingEdgeCosts() []int32 { return n.precedingEdgeCosts }

// BestPrecedingNode returns the index, within the preceding step, of the
// predecessor that minimises this node's path cost. -1 for BOS.
func (n *Node) BestPrecedingNode() int { return n.bestPrecedingNode }

// NodeCost returns this node's own entry cost. 0 for BOS and EOS.
func (n *Node) NodeCost() int32 { return n.nodeCost }

// PathCost returns the accumulated best-path cost from BOS to this node.
func (n *Node) PathCost() int32 { return n.pathCost }
