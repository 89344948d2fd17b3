package digest

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func allImpls(w int) map[string]SlidingMinimizer {
	return map[string]SlidingMinimizer{
		"Naive":       NewNaive(w),
		"Naive2":      NewNaive2(w),
		"SegmentTree": NewSegmentTree(w),
		"Adaptive":    NewAdaptive(w),
	}
}

func TestSlidingMinimizerAgreement(t *testing.T) {
	r := rand.New(rand.NewSource(1))
	for _, w := range []int{1, 2, 3, 5, 8, 9, 16, 31} {
		impls := allImpls(w)
		n := 500
		for i := 0; i < n; i++ {
			h := uint64(r.Intn(20)) // small range to force frequent ties
			var results []struct {
				name     string
				h        uint64
				idx      int
				atLeft   bool
				atRight  bool
			}
			for name, sm := range impls {
				sm.Insert(h, i)
				gh, gidx, atL, atR := sm.MinWithEdge()
				results = append(results, struct {
					name     string
					h        uint64
					idx      int
					atLeft   bool
					atRight  bool
				}{name, gh, gidx, atL, atR})
			}
			first := results[0]
			for _, res := range results[1:] {
				assert.Equalf(t, first.h, res.h, "w=%d i=%d: %s vs %s hash mismatch", w, i, first.name, res.name)
				assert.Equalf(t, first.idx, res.idx, "w=%d i=%d: %s vs %s idx mismatch", w, i, first.name, res.name)
				assert.Equalf(t, first.atLeft, res.atLeft, "w=%d i=%d: %s vs %s atLeft mismatch", w, i, first.name, res.name)
				assert.Equalf(t, first.atRight, res.atRight, "w=%d i=%d: %s vs %s atRight mismatch", w, i, first.name, res.name)
			}
		}
	}
}

func TestSlidingMinimizerTieBreakPrefersRecent(t *testing.T) {
	for name, sm := range allImpls(4) {
		sm.Insert(5, 0)
		sm.Insert(5, 1)
		sm.Insert(5, 2)
		h, idx := sm.Min()
		assert.Equal(t, uint64(5), h, name)
		assert.Equal(t, 2, idx, name)
	}
}

func TestSlidingMinimizerEdgesWidthOne(t *testing.T) {
	for name, sm := range allImpls(1) {
		sm.Insert(9, 0)
		_, idx, atLeft, atRight := sm.MinWithEdge()
		assert.Equal(t, 0, idx, name)
		assert.True(t, atLeft, name)
		assert.True(t, atRight, name)
	}
}

func TestSlidingMinimizerDropsOldEntries(t *testing.T) {
	for name, sm := range allImpls(2) {
		sm.Insert(1, 0)
		sm.Insert(100, 1)
		sm.Insert(100, 2)
		// idx 0's low hash has fallen out of the window of width 2.
		h, idx := sm.Min()
		assert.Equal(t, uint64(100), h, name)
		assert.Equal(t, 2, idx, name)
	}
}
