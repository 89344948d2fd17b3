package digest

import "github.com/VeryAmazed/digest/nthash"

// Digester is a streaming cursor over a nucleotide sequence that
// maintains the forward, reverse-complement and canonical ntHash
// values of the k-mer currently under its window. It advances one
// base at a time in O(1) via RollOne, and can be handed a new
// sequence to continue on from exactly where it left off via
// AppendSeq, so that rolling across a concatenation of sequences
// never re-hashes a prefix.
//
// A Digester is not safe for concurrent use; each goroutine (e.g.
// each worker in a Thread driver slice) should own its own instance.
type Digester struct {
	seq   []byte
	k     int
	start int // inclusive left index of the current k-mer within seq
	end   int // exclusive right index, == start+k

	offset int // total length of all sequences appended before seq

	fhash, rhash, chash uint64
	valid               bool

	minimized MinimizedHash
	policy    BadCharPolicy

	// carry holds up to k bytes (k right after AppendSeq has filled it,
	// k-1 or fewer once RollOne has consumed its front) from the tail
	// of a previous sequence, standing in for the bytes that
	// would be rolled out of the window over the next few calls to
	// RollOne.
	carry *carryBuffer
}

// NewDigester constructs a Digester positioned at the first valid
// k-mer at or after start within seq.
func NewDigester(seq []byte, k, start int, minimized MinimizedHash, policy BadCharPolicy) (*Digester, error) {
	if k < 4 || start >= len(seq) || !minimized.valid() {
		return nil, ErrBadConstruction
	}
	d := &Digester{
		k:         k,
		minimized: minimized,
		policy:    policy,
		carry:     newCarryBuffer(k),
	}
	d.resetTo(seq, start)
	d.initHash()
	return d, nil
}

func (d *Digester) resetTo(seq []byte, start int) {
	d.seq = seq
	d.start = start
	d.end = start + d.k
	d.offset = 0
	d.valid = false
	d.carry.Clear()
}

// IsValid reports whether the hashes currently held by the cursor
// correspond to a real k-mer, i.e. whether there is a "current
// k-mer" at all.
func (d *Digester) IsValid() bool { return d.valid }

// Pos returns the absolute position (0-indexed, counting every byte
// of every sequence ever appended) of the first base of the current
// k-mer.
func (d *Digester) Pos() int { return d.offset + d.start - d.carry.Len() }

// ForwardHash returns the forward-strand hash of the current k-mer.
// It is only meaningful when IsValid returns true.
func (d *Digester) ForwardHash() uint64 { return d.fhash }

// ReverseHash returns the reverse-complement hash of the current
// k-mer. It is only meaningful when IsValid returns true.
func (d *Digester) ReverseHash() uint64 { return d.rhash }

// CanonicalHash returns the strand-independent canonical hash of the
// current k-mer. It is only meaningful when IsValid returns true.
func (d *Digester) CanonicalHash() uint64 { return d.chash }

// SelectedHash returns whichever of ForwardHash/ReverseHash/
// CanonicalHash this cursor was constructed to minimize.
func (d *Digester) SelectedHash() uint64 {
	switch d.minimized {
	case Forward:
		return d.fhash
	case Reverse:
		return d.rhash
	default:
		return d.chash
	}
}

// SelectedHash32 returns SelectedHash projected down to its low 32
// bits. This is the value the sub-sampling engines actually test and
// argmin over: the sliding-minimum data structures, the modulus test,
// and the emitted Minimizer.Hash all operate on this 32-bit
// projection, not the full 64-bit ntHash.
func (d *Digester) SelectedHash32() uint32 { return uint32(d.SelectedHash()) }

// K returns the configured k-mer length.
func (d *Digester) K() int { return d.k }

// initHash (re)establishes fhash/rhash/chash/valid starting the scan
// at d.start, advancing d.start/d.end past bad windows as needed
// under SkipOver. It does not touch d.carry; callers that need the
// carry cleared first must do so themselves.
func (d *Digester) initHash() bool {
	if d.policy == WriteOver {
		return d.initHashWriteOver()
	}
	return d.initHashSkipOver()
}

func (d *Digester) initHashSkipOver() bool {
	for d.end <= len(d.seq) {
		bad := -1
		for i := d.start; i < d.end; i++ {
			if !isACGT[d.seq[i]] {
				bad = i
				break
			}
		}
		if bad >= 0 {
			d.start = bad + 1
			d.end = d.start + d.k
			continue
		}
		d.setHashesFromWindow(d.seq[d.start:d.end])
		return true
	}
	d.valid = false
	return false
}

func (d *Digester) initHashWriteOver() bool {
	if d.end > len(d.seq) {
		d.valid = false
		return false
	}
	buf := make([]byte, d.k)
	for i := 0; i < d.k; i++ {
		buf[i] = writeOverByte(d.seq[d.start+i])
	}
	d.setHashesFromWindow(buf)
	return true
}

func (d *Digester) setHashesFromWindow(window []byte) {
	d.fhash = nthash.BaseForwardHash(window, d.k)
	d.rhash = nthash.BaseReverseHash(window, d.k)
	d.chash = nthash.Canonical(d.fhash, d.rhash)
	d.valid = true
}

// RollOne advances the cursor by one base, recomputing fhash/rhash/
// chash in O(1). It returns false once the cursor has run off the end
// of the sequence, and keeps returning false idempotently thereafter.
func (d *Digester) RollOne() bool {
	if d.policy == WriteOver {
		return d.rollOneWriteOver()
	}
	return d.rollOneSkipOver()
}

func (d *Digester) rollOneSkipOver() bool {
	if !d.valid {
		return false
	}
	if d.end >= len(d.seq) {
		d.valid = false
		return false
	}
	inChar := d.seq[d.end]
	if !isACGT[inChar] {
		d.carry.Clear()
		d.start = d.end + 1
		d.end = d.start + d.k
		return d.initHash()
	}
	var outChar byte
	if d.carry.Len() > 0 {
		outChar = d.carry.PopFront()
	} else {
		outChar = d.seq[d.start]
		d.start++
	}
	d.fhash = nthash.NextForwardHash(d.fhash, d.k, outChar, inChar)
	d.rhash = nthash.NextReverseHash(d.rhash, d.k, outChar, inChar)
	d.chash = nthash.Canonical(d.fhash, d.rhash)
	d.end++
	return true
}

func (d *Digester) rollOneWriteOver() bool {
	if !d.valid {
		return false
	}
	if d.end >= len(d.seq) {
		d.valid = false
		return false
	}
	inChar := writeOverByte(d.seq[d.end])
	var outChar byte
	if d.carry.Len() > 0 {
		outChar = d.carry.PopFront()
	} else {
		outChar = writeOverByte(d.seq[d.start])
		d.start++
	}
	d.fhash = nthash.NextForwardHash(d.fhash, d.k, outChar, inChar)
	d.rhash = nthash.NextReverseHash(d.rhash, d.k, outChar, inChar)
	d.chash = nthash.Canonical(d.fhash, d.rhash)
	d.end++
	return true
}

// NewSeq discards all cursor state and reinitializes as if freshly
// constructed on seq starting at start.
func (d *Digester) NewSeq(seq []byte, start int) error {
	if start >= len(seq) {
		return ErrBadConstruction
	}
	d.resetTo(seq, start)
	d.initHash()
	return nil
}

// AppendSeq simulates concatenating seq onto the end of the sequence
// the cursor is currently rolling over: the minimizers produced by
// rolling to the end of the old sequence and then calling AppendSeq
// plus continuing are identical to those that rolling straight across
// the concatenation would have produced. It requires the cursor to
// have already rolled to the end of its current sequence.
func (d *Digester) AppendSeq(seq []byte) error {
	if d.end < len(d.seq) {
		return ErrNotRolledTillEnd
	}
	oldSeq := d.seq
	oldLen := len(oldSeq)
	d.offset += oldLen

	// If a carry left by an earlier append is still present and either
	// the cursor has rolled since that append (start != end) or the
	// append left a full k-byte carry, the next roll would have
	// consumed the carry's front element; pre-consume it now so the
	// carry we build below lines up with "the k-mer immediately after
	// the last one successfully produced".
	if d.carry.Len() > 0 && (d.start != d.end || d.carry.Len() == d.k) {
		d.carry.PopFront()
	}

	// Pull bytes from the tail of the old sequence into the carry,
	// most recent first, stopping at the first bad byte (SkipOver) or
	// substituting 'A' (WriteOver), until the carry holds k-1 bytes.
	tail := make([]byte, 0, d.k)
	for i := oldLen - 1; len(tail)+d.carry.Len() < d.k-1 && i >= d.start; i-- {
		c := oldSeq[i]
		if d.policy == SkipOver && !isACGT[c] {
			break
		}
		tail = append(tail, writeOverByteForPolicy(c, d.policy))
		if i == 0 {
			break
		}
	}
	for i := len(tail) - 1; i >= 0; i-- {
		d.carry.PushBack(tail[i])
	}

	d.seq = seq
	d.start, d.end = 0, 0
	for i := 0; d.carry.Len() < d.k && i < len(seq); i++ {
		c := seq[i]
		if d.policy == SkipOver && !isACGT[c] {
			d.start = i + 1
			d.end = d.start + d.k
			d.carry.Clear()
			d.initHash()
			return nil
		}
		d.carry.PushBack(writeOverByteForPolicy(c, d.policy))
		d.start++
		d.end++
	}

	if d.carry.Len() == d.k {
		d.setHashesFromWindow(d.carry.Bytes())
	} else {
		d.valid = false
	}
	return nil
}

func writeOverByteForPolicy(c byte, policy BadCharPolicy) byte {
	if policy == WriteOver {
		return writeOverByte(c)
	}
	return c
}
