package digest

import "math/bits"

// entry is one (hash, insertion sequence number) pair held by a
// sliding minimum data structure. idx is not a sequence position; it
// is a monotonically increasing counter assigned in Insert call order,
// used only to break hash ties and to find the edges of the current
// window.
type entry struct {
	h   uint64
	idx int
}

// better reports whether a is strictly preferred to b under the
// digest tie-break rule: the smaller hash wins, and among equal
// hashes, the larger (more recent) index wins.
func better(a, b entry) bool {
	if a.h != b.h {
		return a.h < b.h
	}
	return a.idx > b.idx
}

// infEntry never wins a comparison against a real insertion; it is
// used to pre-fill slots that have not received a real value yet.
var infEntry = entry{h: ^uint64(0), idx: -1}

// SlidingMinimizer maintains the argmin, under the tie-break rule
// above, of the last W (hash, idx) pairs inserted. W is fixed at
// construction. All implementations in this package produce
// bit-identical output streams for identical input streams.
type SlidingMinimizer interface {
	// Insert conceptually appends (h, idx) to the right of the
	// window; once more than W elements have ever been inserted, the
	// oldest one falls out of consideration. idx must be strictly
	// increasing across calls.
	Insert(h uint64, idx int)
	// Min returns the argmin of the current window.
	Min() (h uint64, idx int)
	// MinWithEdge additionally reports whether the argmin sits at the
	// leftmost or rightmost slot of the current window (both may be
	// true when W==1).
	MinWithEdge() (h uint64, idx int, atLeft, atRight bool)
}

// windowEdge tracks enough bookkeeping, shared by all four
// SlidingMinimizer implementations, to answer "is idx at the left or
// right edge of the current window of the last W inserts".
type windowEdge struct {
	w       int
	inserts int
	lastIdx int
}

func (e *windowEdge) record(idx int) {
	e.inserts++
	e.lastIdx = idx
}

// edges returns the idx values of the leftmost and rightmost slots of
// the current window.
func (e *windowEdge) edges() (left, right int) {
	right = e.lastIdx
	span := e.w - 1
	if e.inserts-1 < span {
		span = e.inserts - 1
	}
	return right - span, right
}

// NewAdaptive returns a SlidingMinimizer chosen for good throughput at
// width w: the monotonic-deque variant for most widths, falling back
// to a plain linear scan for very narrow windows where the bookkeeping
// overhead of the deque/segment-tree variants doesn't pay for itself.
// All variants agree bit-for-bit, so this choice is purely about
// speed.
func NewAdaptive(w int) SlidingMinimizer {
	switch {
	case w <= 8:
		return NewNaive(w)
	default:
		return NewNaive2(w)
	}
}

// nextPow2 returns the smallest power of two >= n (n >= 1).
func nextPow2(n int) int {
	if n <= 1 {
		return 1
	}
	return 1 << bits.Len(uint(n-1))
}
