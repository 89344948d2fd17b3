package digest

// BadCharPolicy controls how a Digester handles bytes outside the
// ACGT/acgt alphabet.
type BadCharPolicy int

const (
	// SkipOver causes any k-mer window that contains a non-ACGT byte
	// to be skipped entirely; the cursor jumps past the offending
	// byte and resumes scanning for the next clean window.
	SkipOver BadCharPolicy = iota
	// WriteOver causes a non-ACGT byte to be treated as 'A' for
	// hashing purposes. Every window k bases long therefore produces
	// a hash; nothing is skipped.
	WriteOver
)

// MinimizedHash selects which of a k-mer's three ntHash values
// (forward, reverse-complement, canonical) is the one fed to the
// sliding-minimum data structures and tested against a modimizer's
// congruence.
type MinimizedHash int

const (
	// Canonical minimizes the strand-independent canonical hash.
	Canonical MinimizedHash = iota
	// Forward minimizes the forward-strand hash.
	Forward
	// Reverse minimizes the reverse-complement hash.
	Reverse
)

func (m MinimizedHash) valid() bool {
	return m == Canonical || m == Forward || m == Reverse
}
