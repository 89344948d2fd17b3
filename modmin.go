package digest

// Minimizer is one selected k-mer: its absolute position (see
// Digester.Pos) and the hash value that caused it to be selected.
type Minimizer struct {
	Pos  int
	Hash uint64
}

// unbounded is passed to RollMinimizer-style methods to mean "roll to
// the end of the currently available sequence".
const unbounded = 1<<31 - 1

// ModMin selects every k-mer whose selected hash is congruent to cong
// modulo mod. It has no memory beyond the current k-mer, so unlike
// WindowMin and Syncmer it needs no sliding-minimum data structure:
// each k-mer is judged independently of its neighbors.
type ModMin struct {
	d       *Digester
	mod     uint32
	cong    uint32
	pending bool // current d k-mer has not yet been tested
}

// NewModMin constructs a ModMin that will consider k-mers starting at
// or after start within seq.
func NewModMin(seq []byte, k, start int, mod, cong uint32, minimized MinimizedHash, policy BadCharPolicy) (*ModMin, error) {
	if cong >= mod {
		return nil, &BadModError{Mod: mod, Cong: cong}
	}
	d, err := NewDigester(seq, k, start, minimized, policy)
	if err != nil {
		return nil, err
	}
	return &ModMin{d: d, mod: mod, cong: cong, pending: d.IsValid()}, nil
}

func (m *ModMin) qualifies() bool {
	return m.d.IsValid() && m.d.SelectedHash32()%m.mod == m.cong
}

func (m *ModMin) current() Minimizer {
	return Minimizer{Pos: m.d.Pos(), Hash: uint64(m.d.SelectedHash32())}
}

// RollMinimizer advances the underlying cursor by up to amount k-mers,
// appending every qualifying k-mer it passes over (including the
// k-mer it was already sitting on, the first time this is called
// after construction or AppendSeq) to out. It returns the number of
// k-mers actually rolled, which is less than amount only when the
// sequence ran out.
func (m *ModMin) RollMinimizer(amount int, out *[]Minimizer) int {
	if m.pending {
		m.pending = false
		if m.qualifies() {
			*out = append(*out, m.current())
		}
	}
	rolled := 0
	for rolled < amount {
		if !m.d.RollOne() {
			break
		}
		rolled++
		if m.qualifies() {
			*out = append(*out, m.current())
		}
	}
	return rolled
}

// Digest rolls the cursor to the end of the currently available
// sequence, appending every qualifying k-mer to out.
func (m *ModMin) Digest(out *[]Minimizer) {
	m.RollMinimizer(unbounded, out)
}

// AppendSeq hands the underlying cursor a new sequence to continue
// rolling over; see Digester.AppendSeq.
func (m *ModMin) AppendSeq(seq []byte) error {
	if err := m.d.AppendSeq(seq); err != nil {
		return err
	}
	m.pending = m.d.IsValid()
	return nil
}

// Pos returns the absolute position the underlying cursor is sitting
// at; see Digester.Pos.
func (m *ModMin) Pos() int { return m.d.Pos() }
