// Package fasta parses FASTA files for digestion. FASTA files consist of a
// number of named sequences that may be interrupted by newlines. For example:
//
// >chr7
// ACGTAC
// GAGGAC
// GCG
// >chr8
// ACGT
//
// Note: sequence names are defined to be the stretch of characters excluding
// spaces immediately after '>'. Any text appearing after a space is ignored.
// For example, '>chr1 A viral sequence' becomes 'chr1'.
package fasta

import (
	"bufio"
	"io"
	"strings"

	"github.com/pkg/errors"
)

const bufferInitSize = 1024 * 1024 * 300 // 300 MB

// Fasta holds the named sequences read from a FASTA file, ready for
// digestion. Unlike a reference-genome index, it keeps each sequence
// as a contiguous []byte rather than offsets into the original file,
// since a digester rolls across every base regardless.
type Fasta struct {
	seqs     map[string][]byte
	seqNames []string
}

// New reads all FASTA records from r into memory.
func New(r io.Reader) (*Fasta, error) {
	f := &Fasta{seqs: make(map[string][]byte)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(nil, bufferInitSize)
	var seqName string
	var seq strings.Builder
	flush := func() {
		if seqName != "" {
			f.seqs[seqName] = []byte(seq.String())
			f.seqNames = append(f.seqNames, seqName)
		}
		seq.Reset()
	}
	for scanner.Scan() {
		line := scanner.Text()
		if len(line) == 0 {
			continue
		}
		if line[0] == '>' {
			flush()
			seqName = strings.Split(line[1:], " ")[0]
			continue
		}
		if seqName == "" {
			return nil, errors.Errorf("malformed FASTA file: sequence data before first '>' record")
		}
		seq.WriteString(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "couldn't read FASTA data")
	}
	flush()
	return f, nil
}

// Get returns the sequence registered under name, or an error if no
// such sequence was read. The returned slice is owned by f and must
// not be modified.
func (f *Fasta) Get(name string) ([]byte, error) {
	s, ok := f.seqs[name]
	if !ok {
		return nil, errors.Errorf("sequence not found: %s", name)
	}
	return s, nil
}

// SeqNames returns the names of all sequences, in the order they
// appeared in the FASTA file.
func (f *Fasta) SeqNames() []string {
	return f.seqNames
}
