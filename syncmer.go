package digest

// Syncmer selects a k-mer whenever, within the forward-looking window
// of w consecutive k-mers starting at it, its own hash (or the hash
// of the k-mer w-1 positions ahead) is the smallest in that window:
// that is, whenever the minimizer of the window lands on either edge
// of the window. Unlike WindowMin, every qualifying k-mer is emitted
// independently; there is no dedup against the previously emitted
// one, since syncmer-hood is a per-k-mer property rather than a
// sparsified stream of window minimizers.
type Syncmer struct {
	d       *Digester
	w       int
	sm      SlidingMinimizer
	counter int
	posRing []int

	pending bool // current d k-mer is inserted but not yet tested for emission
}

// NewSyncmer constructs a Syncmer over windows of w consecutive
// k-mers, starting at or after start within seq.
func NewSyncmer(seq []byte, k, start, w int, minimized MinimizedHash, policy BadCharPolicy) (*Syncmer, error) {
	if w < 1 {
		return nil, ErrBadConstruction
	}
	d, err := NewDigester(seq, k, start, minimized, policy)
	if err != nil {
		return nil, err
	}
	s := &Syncmer{d: d, w: w, sm: NewAdaptive(w), posRing: make([]int, w)}
	if d.IsValid() {
		s.insertCurrent()
		s.pending = true
	}
	return s, nil
}

func (s *Syncmer) insertCurrent() {
	slot := s.counter % s.w
	s.posRing[slot] = s.d.Pos()
	s.sm.Insert(uint64(s.d.SelectedHash32()), s.counter)
	s.counter++
}

// emitIfEdge tests the window that has just become complete, i.e. the
// w-k-mer window whose left edge is the k-mer w-1 insertions ago.
func (s *Syncmer) emitIfEdge(out *[]Minimizer) {
	if s.counter < s.w {
		return
	}
	h, _, atLeft, atRight := s.sm.MinWithEdge()
	if !atLeft && !atRight {
		return
	}
	slot := (s.counter - s.w) % s.w
	*out = append(*out, Minimizer{Pos: s.posRing[slot], Hash: h})
}

// RollMinimizer advances the underlying cursor by up to amount
// k-mers, appending every qualifying syncmer to out, and returns the
// number of k-mers actually rolled.
func (s *Syncmer) RollMinimizer(amount int, out *[]Minimizer) int {
	if s.pending {
		s.pending = false
		s.emitIfEdge(out)
	}
	rolled := 0
	for rolled < amount {
		if !s.d.RollOne() {
			break
		}
		rolled++
		s.insertCurrent()
		s.emitIfEdge(out)
	}
	return rolled
}

// Digest rolls the cursor to the end of the currently available
// sequence, appending every qualifying syncmer to out.
func (s *Syncmer) Digest(out *[]Minimizer) {
	s.RollMinimizer(unbounded, out)
}

// AppendSeq hands the underlying cursor a new sequence to continue
// rolling over; the sliding window carries across the boundary
// exactly as the underlying hash does.
func (s *Syncmer) AppendSeq(seq []byte) error {
	if err := s.d.AppendSeq(seq); err != nil {
		return err
	}
	if s.d.IsValid() {
		s.insertCurrent()
		s.pending = true
	}
	return nil
}

// Pos returns the absolute position the underlying cursor is sitting
// at; see Digester.Pos.
func (s *Syncmer) Pos() int { return s.d.Pos() }
