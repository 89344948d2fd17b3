package fasta_test

import (
	"strings"
	"testing"

	"github.com/VeryAmazed/digest/encoding/fasta"
	"github.com/stretchr/testify/assert"
)

const testData = `>chr1 some description
ACGT
ACGT
>chr2
TTTT
`

func TestNewParsesMultipleRecords(t *testing.T) {
	f, err := fasta.New(strings.NewReader(testData))
	assert.NoError(t, err)
	assert.Equal(t, []string{"chr1", "chr2"}, f.SeqNames())

	seq1, err := f.Get("chr1")
	assert.NoError(t, err)
	assert.Equal(t, "ACGTACGT", string(seq1))

	seq2, err := f.Get("chr2")
	assert.NoError(t, err)
	assert.Equal(t, "TTTT", string(seq2))
}

func TestGetUnknownSequenceErrors(t *testing.T) {
	f, err := fasta.New(strings.NewReader(testData))
	assert.NoError(t, err)
	_, err = f.Get("chr3")
	assert.Error(t, err)
}

func TestNewRejectsDataBeforeFirstHeader(t *testing.T) {
	_, err := fasta.New(strings.NewReader("ACGT\n>chr1\nACGT\n"))
	assert.Error(t, err)
}
