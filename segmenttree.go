package digest

// SegmentTree is a SlidingMinimizer backed by a complete binary tree
// over the last W slots: each leaf holds one (hash, idx) pair, and
// each internal node holds the tie-break-argmin of its subtree.
// Insert overwrites a single leaf and re-walks that leaf's ancestors,
// giving O(log W) per operation.
type SegmentTree struct {
	windowEdge
	size int // next power of two >= w; the tree has size leaves
	tree []entry
}

// NewSegmentTree constructs a SegmentTree sized for a window of width
// w (w >= 1).
func NewSegmentTree(w int) *SegmentTree {
	size := nextPow2(w)
	st := &SegmentTree{
		windowEdge: windowEdge{w: w},
		size:       size,
		tree:       make([]entry, 2*size),
	}
	for i := range st.tree {
		st.tree[i] = infEntry
	}
	return st
}

func (st *SegmentTree) Insert(h uint64, idx int) {
	st.record(idx)
	leaf := idx % st.w
	i := st.size + leaf
	st.tree[i] = entry{h: h, idx: idx}
	for i > 1 {
		i /= 2
		left, right := st.tree[2*i], st.tree[2*i+1]
		if better(left, right) {
			st.tree[i] = left
		} else {
			st.tree[i] = right
		}
	}
}

func (st *SegmentTree) Min() (h uint64, idx int) {
	root := st.tree[1]
	return root.h, root.idx
}

func (st *SegmentTree) MinWithEdge() (h uint64, idx int, atLeft, atRight bool) {
	h, idx = st.Min()
	left, right := st.edges()
	return h, idx, idx == left, idx == right
}
