package digest

// WindowMin selects, for every sliding window of W consecutive
// k-mers, the k-mer with the smallest selected hash (tie-broken
// toward the more recent k-mer). Consecutive windows that share a
// minimizer are collapsed: a k-mer is only emitted when it differs
// from the previously emitted one, so the output is a sparse,
// position-ordered stream rather than one entry per window.
type WindowMin struct {
	d       *Digester
	w       int
	sm      SlidingMinimizer
	counter int
	posRing []int

	pending  bool // current d k-mer is inserted but not yet tested for emission
	haveLast bool
	lastPos  int
}

// NewWindowMin constructs a WindowMin over windows of w consecutive
// k-mers, starting at or after start within seq.
func NewWindowMin(seq []byte, k, start, w int, minimized MinimizedHash, policy BadCharPolicy) (*WindowMin, error) {
	if w < 1 {
		return nil, ErrBadConstruction
	}
	d, err := NewDigester(seq, k, start, minimized, policy)
	if err != nil {
		return nil, err
	}
	wm := &WindowMin{d: d, w: w, sm: NewAdaptive(w), posRing: make([]int, w)}
	if d.IsValid() {
		wm.insertCurrent()
		wm.pending = true
	}
	return wm, nil
}

func (wm *WindowMin) insertCurrent() {
	wm.posRing[wm.counter%wm.w] = wm.d.Pos()
	wm.sm.Insert(uint64(wm.d.SelectedHash32()), wm.counter)
	wm.counter++
}

func (wm *WindowMin) emitIfChanged(out *[]Minimizer) {
	if wm.counter < wm.w {
		return
	}
	h, idx := wm.sm.Min()
	pos := wm.posRing[idx%wm.w]
	if wm.haveLast && pos == wm.lastPos {
		return
	}
	*out = append(*out, Minimizer{Pos: pos, Hash: h})
	wm.haveLast = true
	wm.lastPos = pos
}

// RollMinimizer advances the underlying cursor by up to amount k-mers,
// appending every newly-selected minimizer to out, and returns the
// number of k-mers actually rolled.
func (wm *WindowMin) RollMinimizer(amount int, out *[]Minimizer) int {
	if wm.pending {
		wm.pending = false
		wm.emitIfChanged(out)
	}
	rolled := 0
	for rolled < amount {
		if !wm.d.RollOne() {
			break
		}
		rolled++
		wm.insertCurrent()
		wm.emitIfChanged(out)
	}
	return rolled
}

// Digest rolls the cursor to the end of the currently available
// sequence, appending every newly-selected minimizer to out.
func (wm *WindowMin) Digest(out *[]Minimizer) {
	wm.RollMinimizer(unbounded, out)
}

// AppendSeq hands the underlying cursor a new sequence to continue
// rolling over; the sliding-minimum window carries across the
// boundary exactly as the underlying hash does.
func (wm *WindowMin) AppendSeq(seq []byte) error {
	if err := wm.d.AppendSeq(seq); err != nil {
		return err
	}
	if wm.d.IsValid() {
		wm.insertCurrent()
		wm.pending = true
	}
	return nil
}

// Pos returns the absolute position the underlying cursor is sitting
// at; see Digester.Pos.
func (wm *WindowMin) Pos() int { return wm.d.Pos() }
