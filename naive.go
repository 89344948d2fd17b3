package digest

// Naive is a SlidingMinimizer backed by a plain ring buffer: Insert is
// O(1), Min scans all W slots. For small W the lack of bookkeeping
// overhead makes this competitive with, or faster than, the
// logarithmic and amortized-O(1) variants.
type Naive struct {
	windowEdge
	ring []entry
}

// NewNaive constructs a Naive sized for a window of width w (w >= 1).
func NewNaive(w int) *Naive {
	n := &Naive{windowEdge: windowEdge{w: w}, ring: make([]entry, w)}
	for i := range n.ring {
		n.ring[i] = infEntry
	}
	return n
}

func (n *Naive) Insert(h uint64, idx int) {
	n.record(idx)
	n.ring[idx%n.w] = entry{h: h, idx: idx}
}

func (n *Naive) Min() (h uint64, idx int) {
	best := n.ring[0]
	for _, e := range n.ring[1:] {
		if better(e, best) {
			best = e
		}
	}
	return best.h, best.idx
}

func (n *Naive) MinWithEdge() (h uint64, idx int, atLeft, atRight bool) {
	h, idx = n.Min()
	left, right := n.edges()
	return h, idx, idx == left, idx == right
}
