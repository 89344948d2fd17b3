package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSyncmerMatchesBruteForce(t *testing.T) {
	seq := []byte("GATTACAGATTACAGATTACAGATTACAGATTACA")
	k, w := 4, 5

	s, err := NewSyncmer(seq, k, 0, w, Canonical, SkipOver)
	assert.NoError(t, err)
	var got []Minimizer
	s.Digest(&got)

	d, err := NewDigester(seq, k, 0, Canonical, SkipOver)
	assert.NoError(t, err)
	var hashes []uint32
	if d.IsValid() {
		hashes = append(hashes, d.SelectedHash32())
	}
	for d.RollOne() {
		hashes = append(hashes, d.SelectedHash32())
	}

	var want []Minimizer
	for left := 0; left+w <= len(hashes); left++ {
		right := left + w - 1
		bestIdx := left
		for j := left + 1; j <= right; j++ {
			if hashes[j] < hashes[bestIdx] || (hashes[j] == hashes[bestIdx] && j > bestIdx) {
				bestIdx = j
			}
		}
		if bestIdx == left || bestIdx == right {
			want = append(want, Minimizer{Pos: left, Hash: uint64(hashes[bestIdx])})
		}
	}

	assert.Equal(t, want, got)
}

func TestSyncmerEveryEmissionIsPerKmerIndependent(t *testing.T) {
	seq := []byte("ACGTACGTACGTACGTACGTACGTACGTACGT")
	s, err := NewSyncmer(seq, 5, 0, 3, Canonical, SkipOver)
	assert.NoError(t, err)
	var out []Minimizer
	s.Digest(&out)
	seen := map[int]bool{}
	for _, m := range out {
		assert.False(t, seen[m.Pos])
		seen[m.Pos] = true
	}
}

func TestSyncmerAppendSeqMatchesConcatenation(t *testing.T) {
	part1 := []byte("ACGTACGTACGTAC")
	part2 := []byte("GTACGTACGTACGTACGT")
	whole := append(append([]byte{}, part1...), part2...)

	sWhole, err := NewSyncmer(whole, 5, 0, 4, Canonical, SkipOver)
	assert.NoError(t, err)
	var want []Minimizer
	sWhole.Digest(&want)

	sSplit, err := NewSyncmer(part1, 5, 0, 4, Canonical, SkipOver)
	assert.NoError(t, err)
	var got []Minimizer
	sSplit.Digest(&got)
	assert.NoError(t, sSplit.AppendSeq(part2))
	sSplit.Digest(&got)

	assert.Equal(t, want, got)
}
