package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWindowMinDedupsConsecutiveIdenticalMinimizers(t *testing.T) {
	seq := []byte("ACGTACGTACGTACGTACGTACGTACGTACGT")
	wm, err := NewWindowMin(seq, 6, 0, 5, Canonical, SkipOver)
	assert.NoError(t, err)
	var out []Minimizer
	wm.Digest(&out)
	for i := 1; i < len(out); i++ {
		assert.NotEqual(t, out[i-1].Pos, out[i].Pos)
	}
}

func TestWindowMinMatchesBruteForce(t *testing.T) {
	seq := []byte("GATTACAGATTACAGATTACAGATTACAGATTACA")
	k, w := 4, 5

	wm, err := NewWindowMin(seq, k, 0, w, Canonical, SkipOver)
	assert.NoError(t, err)
	var got []Minimizer
	wm.Digest(&got)

	d, err := NewDigester(seq, k, 0, Canonical, SkipOver)
	assert.NoError(t, err)
	var hashes []uint32
	var positions []int
	if d.IsValid() {
		hashes = append(hashes, d.SelectedHash32())
		positions = append(positions, d.Pos())
	}
	for d.RollOne() {
		hashes = append(hashes, d.SelectedHash32())
		positions = append(positions, d.Pos())
	}

	var want []Minimizer
	var lastPos = -1
	for i := range hashes {
		lo := i - w + 1
		if lo < 0 {
			continue // window not yet full
		}
		bestIdx := lo
		for j := lo + 1; j <= i; j++ {
			if hashes[j] < hashes[bestIdx] || (hashes[j] == hashes[bestIdx] && j > bestIdx) {
				bestIdx = j
			}
		}
		if positions[bestIdx] != lastPos {
			want = append(want, Minimizer{Pos: positions[bestIdx], Hash: uint64(hashes[bestIdx])})
			lastPos = positions[bestIdx]
		}
	}

	assert.Equal(t, want, got)
}

func TestWindowMinAppendSeqMatchesConcatenation(t *testing.T) {
	part1 := []byte("ACGTACGTACGTAC")
	part2 := []byte("GTACGTACGTACGTACGT")
	whole := append(append([]byte{}, part1...), part2...)

	wmWhole, err := NewWindowMin(whole, 5, 0, 4, Canonical, SkipOver)
	assert.NoError(t, err)
	var want []Minimizer
	wmWhole.Digest(&want)

	wmSplit, err := NewWindowMin(part1, 5, 0, 4, Canonical, SkipOver)
	assert.NoError(t, err)
	var got []Minimizer
	wmSplit.Digest(&got)
	assert.NoError(t, wmSplit.AppendSeq(part2))
	wmSplit.Digest(&got)

	assert.Equal(t, want, got)
}
