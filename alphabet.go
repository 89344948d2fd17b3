package digest

// isACGT[c] is true iff c is an upper- or lower-case A, C, G or T.
// Anything else (N, IUPAC ambiguity codes, whitespace, ...) is
// "non-ACGT" for the purposes of both BadCharPolicy variants.
var isACGT [256]bool

func init() {
	for _, c := range []byte("ACGTacgt") {
		isACGT[c] = true
	}
}

// writeOverByte returns c if it is ACGT, or 'A' otherwise. It is the
// substitution rule for BadCharPolicy WriteOver.
func writeOverByte(c byte) byte {
	if isACGT[c] {
		return c
	}
	return 'A'
}
