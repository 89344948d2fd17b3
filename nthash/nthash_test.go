package nthash

import "testing"

func TestRollMatchesBaseForward(t *testing.T) {
	seq := []byte("ACTGACCCGGCCGGACTG")
	k := 5

	fh := BaseForwardHash(seq[:k], k)
	for start := 1; start+k <= len(seq); start++ {
		fh = NextForwardHash(fh, k, seq[start-1], seq[start+k-1])
		want := BaseForwardHash(seq[start:start+k], k)
		if fh != want {
			t.Fatalf("start=%d: rolled forward hash %d, want %d (base-computed)", start, fh, want)
		}
	}
}

func TestRollMatchesBaseReverse(t *testing.T) {
	seq := []byte("ACTGACCCGGCCGGACTG")
	k := 5

	rh := BaseReverseHash(seq[:k], k)
	for start := 1; start+k <= len(seq); start++ {
		rh = NextReverseHash(rh, k, seq[start-1], seq[start+k-1])
		want := BaseReverseHash(seq[start:start+k], k)
		if rh != want {
			t.Fatalf("start=%d: rolled reverse hash %d, want %d (base-computed)", start, rh, want)
		}
	}
}

func TestCanonicalIsStrandInvariant(t *testing.T) {
	// ACGT's reverse complement is itself, so fwd and rev hashes swap but
	// canonical(A,B) == canonical(B,A) regardless.
	tests := []struct{ kmer, rc string }{
		{"ACGT", "ACGT"}, // palindromic
		{"AAAA", "TTTT"},
		{"GATTACA", "TGTAATC"},
	}
	for _, tc := range tests {
		f1 := BaseForwardHash([]byte(tc.kmer), len(tc.kmer))
		r1 := BaseReverseHash([]byte(tc.kmer), len(tc.kmer))
		f2 := BaseForwardHash([]byte(tc.rc), len(tc.rc))
		r2 := BaseReverseHash([]byte(tc.rc), len(tc.rc))

		// hashing a string's reverse complement forward should equal
		// hashing the original string in reverse.
		if f2 != r1 {
			t.Errorf("%s: BaseForwardHash(rc)=%d, want BaseReverseHash(kmer)=%d", tc.kmer, f2, r1)
		}
		if r2 != f1 {
			t.Errorf("%s: BaseReverseHash(rc)=%d, want BaseForwardHash(kmer)=%d", tc.kmer, r2, f1)
		}
		if Canonical(f1, r1) != Canonical(f2, r2) {
			t.Errorf("%s: canonical hash not strand-invariant", tc.kmer)
		}
	}
}

func TestCanonicalPicksSmaller(t *testing.T) {
	if got := Canonical(5, 9); got != 5 {
		t.Errorf("Canonical(5,9) = %d, want 5", got)
	}
	if got := Canonical(9, 5); got != 5 {
		t.Errorf("Canonical(9,5) = %d, want 5", got)
	}
}
