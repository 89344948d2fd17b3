package digest

// Naive2 is a SlidingMinimizer backed by a monotonic deque: it keeps
// only the entries that could still become the window minimum, so
// Insert is amortized O(1) and Min is O(1).
//
// The deque is stored front-to-back in a ring buffer of capacity w+1
// (an insert can push at most one new entry while the window still
// holds w, so w+1 slots are always enough). front is the current
// minimum; entries are kept in increasing idx order and, by the
// invariant maintained in Insert, in non-increasing better-ness order
// from front to back (each entry beats everything behind it).
type Naive2 struct {
	windowEdge
	buf   []entry
	front int
	n     int
}

// NewNaive2 constructs a Naive2 sized for a window of width w (w >= 1).
func NewNaive2(w int) *Naive2 {
	return &Naive2{windowEdge: windowEdge{w: w}, buf: make([]entry, w+1)}
}

func (d *Naive2) at(i int) entry { return d.buf[(d.front+i)%len(d.buf)] }

func (d *Naive2) pushBack(e entry) {
	d.buf[(d.front+d.n)%len(d.buf)] = e
	d.n++
}

func (d *Naive2) popBack() {
	d.n--
}

func (d *Naive2) popFront() {
	d.front = (d.front + 1) % len(d.buf)
	d.n--
}

func (d *Naive2) Insert(h uint64, idx int) {
	d.record(idx)
	e := entry{h: h, idx: idx}

	// Evict from the front any entry that has fallen out of the
	// trailing window of width w.
	lowWater := idx + 1 - d.w
	for d.n > 0 && d.at(0).idx < lowWater {
		d.popFront()
	}

	// Evict from the back any entry that e dominates: since e is
	// strictly more recent, an existing entry only survives e's
	// arrival if it is strictly better than e.
	for d.n > 0 && !better(d.at(d.n-1), e) {
		d.popBack()
	}

	d.pushBack(e)
}

func (d *Naive2) Min() (h uint64, idx int) {
	f := d.at(0)
	return f.h, f.idx
}

func (d *Naive2) MinWithEdge() (h uint64, idx int, atLeft, atRight bool) {
	h, idx = d.Min()
	left, right := d.edges()
	return h, idx, idx == left, idx == right
}
