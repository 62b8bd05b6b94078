package lattice

import "container/heap"

// cap is the N-best search frontier element: a tail path from some interior
// node to EOS, the cost accumulated along that tail, and the resulting
// lower-bound whole-path cost. seq breaks ties in FIFO (discovery) order,
// since Go's container/heap is not otherwise stable.
type cap struct {
	tailPath      []*Node
	tailPathCost  int32
	wholePathCost int32
	seq           int64
}

type capQueue []*cap

func (q capQueue) Len() int { return len(q) }

func (q capQueue) Less(i, j int) bool {
	if q[i].wholePathCost != q[j].wholePathCost {
		return q[i].wholePathCost < q[j].wholePathCost
	}
	return q[i].seq < q[j].seq
}

func (q capQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *capQueue) Push(x any) { *q = append(*q, x.(*cap)) }

func (q *capQueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	old[n-1] = nil
	*q = old[:n-1]
	return item
}

// NBestIterator enumerates the complete BOS-to-EOS paths of a Lattice in
// non-decreasing total-cost order.
type NBestIterator struct {
	lattice *Lattice
	queue   capQueue
	nextSeq int64

	current    []*Node
	hasCurrent bool
}

// NewNBestIterator begins an N-best search over lattice. The first path
// (the Viterbi best path) is immediately available via Value.
func NewNBestIterator(lattice *Lattice) *NBestIterator {
	it := &NBestIterator{lattice: lattice}
	eos := lattice.Eos()
	heap.Init(&it.queue)
	heap.Push(&it.queue, &cap{
		tailPath:      []*Node{eos},
		tailPathCost:  0,
		wholePathCost: eos.PathCost(),
		seq:           it.takeSeq(),
	})
	it.advance()
	return it
}

func (it *NBestIterator) takeSeq() int64 {
	s := it.nextSeq
	it.nextSeq++
	return s
}

// HasNext reports whether Value returns a meaningful result.
func (it *NBestIterator) HasNext() bool { return it.hasCurrent }

// Value returns the current path, in BOS-to-EOS order.
func (it *NBestIterator) Value() []*Node { return it.current }

// Next advances to the next cheapest path.
func (it *NBestIterator) Next() { it.advance() }

func (it *NBestIterator) advance() {
	for it.queue.Len() > 0 {
		c := heap.Pop(&it.queue).(*cap)
		head := c.tailPath[0]
		if head.IsBos() {
			it.current = c.tailPath
			it.hasCurrent = true
			return
		}

		predecessors := it.lattice.Step(head.PrecedingStep())
		edgeCosts := head.PrecedingEdgeCosts()
		for j, p := range predecessors {
			edge := edgeCosts[j]

			newTail := make([]*Node, 0, len(c.tailPath)+1)
			newTail = append(newTail, p)
			newTail = append(newTail, c.tailPath...)

			newTailCost := c.tailPathCost + edge + p.NodeCost()
			newWholeCost := c.tailPathCost + edge + p.PathCost()

			heap.Push(&it.queue, &cap{
				tailPath:      newTail,
				tailPathCost:  newTailCost,
				wholePathCost: newWholeCost,
				seq:           it.takeSeq(),
			})
		}
	}
	it.hasCurrent = false
}
