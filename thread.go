package digest

import (
	"sort"

	"github.com/grailbio/base/traverse"
)

// Engine is the common shape of ModMin, WindowMin and Syncmer: a
// cursor-driven digestion engine that can be fully drained in one
// call and reports the absolute position its cursor is currently at.
type Engine interface {
	Digest(out *[]Minimizer)
	Pos() int
}

// EngineFactory builds an Engine over a slice of a sequence, starting
// at or after start within that slice. The three constructors below
// adapt NewModMin/NewWindowMin/NewSyncmer to this shape.
type EngineFactory func(seq []byte, start int) (Engine, error)

// ModMinFactory returns an EngineFactory for ModMin with the given
// parameters fixed.
func ModMinFactory(k int, mod, cong uint32, minimized MinimizedHash, policy BadCharPolicy) EngineFactory {
	return func(seq []byte, start int) (Engine, error) {
		return NewModMin(seq, k, start, mod, cong, minimized, policy)
	}
}

// WindowMinFactory returns an EngineFactory for WindowMin with the
// given parameters fixed.
func WindowMinFactory(k, w int, minimized MinimizedHash, policy BadCharPolicy) EngineFactory {
	return func(seq []byte, start int) (Engine, error) {
		return NewWindowMin(seq, k, start, w, minimized, policy)
	}
}

// SyncmerFactory returns an EngineFactory for Syncmer with the given
// parameters fixed.
func SyncmerFactory(k, w int, minimized MinimizedHash, policy BadCharPolicy) EngineFactory {
	return func(seq []byte, start int) (Engine, error) {
		return NewSyncmer(seq, k, start, w, minimized, policy)
	}
}

// overlap is the number of extra bases a worker must see on each side
// of its shard in order to independently reproduce every minimizer
// decision inside the shard, for an engine built with the given
// k-mer length and (where applicable) window width. A width of 0
// (ModMin has no window) collapses to k-1.
func overlap(k, w int) int {
	if w <= 1 {
		return k - 1
	}
	return k + w - 2
}

// RunParallel partitions seq into nWorkers overlapping shards, runs a
// fresh Engine over each shard in its own goroutine via an
// EngineFactory, and merges the results into a single position-
// ordered slice identical to what a single Engine rolled across the
// whole of seq would have produced. Each worker's slice is extended
// by overlapLen bases on both sides so it has enough context to
// independently reproduce every decision inside its own shard, and
// its output is then filtered down to just that shard, so the
// overlap regions are computed redundantly but never double-counted.
//
// nWorkers <= 1 or len(seq) too small to shard degrade to running a
// single Engine directly.
func RunParallel(seq []byte, nWorkers int, overlapLen int, newEngine EngineFactory) ([]Minimizer, error) {
	if nWorkers < 1 {
		nWorkers = 1
	}
	if nWorkers > len(seq) {
		nWorkers = len(seq)
	}
	if nWorkers <= 1 {
		eng, err := newEngine(seq, 0)
		if err != nil {
			return nil, err
		}
		var out []Minimizer
		eng.Digest(&out)
		return out, nil
	}

	shardStart := make([]int, nWorkers)
	shardEnd := make([]int, nWorkers)
	for j := 0; j < nWorkers; j++ {
		shardStart[j] = (j * len(seq)) / nWorkers
		shardEnd[j] = ((j + 1) * len(seq)) / nWorkers
	}

	perWorker := make([][]Minimizer, nWorkers)
	err := traverse.Each(nWorkers, func(j int) error {
		// WindowMin and Syncmer need w-1 k-mers of backward context to
		// correctly judge the window straddling a worker's own start,
		// so each worker's slice is extended on both sides; only the
		// emissions landing in [shardStart[j], boundary) are kept, so
		// the overlap regions are computed redundantly but never
		// double-counted.
		extendedStart := shardStart[j] - overlapLen
		if extendedStart < 0 {
			extendedStart = 0
		}
		extendedEnd := shardEnd[j] + overlapLen
		if extendedEnd > len(seq) {
			extendedEnd = len(seq)
		}
		eng, err := newEngine(seq[extendedStart:extendedEnd], 0)
		if err != nil {
			return err
		}
		var local []Minimizer
		eng.Digest(&local)

		boundary := shardEnd[j]
		if j == nWorkers-1 {
			boundary = len(seq) + 1
		}
		for _, m := range local {
			absPos := m.Pos + extendedStart
			if absPos >= shardStart[j] && absPos < boundary {
				perWorker[j] = append(perWorker[j], Minimizer{Pos: absPos, Hash: m.Hash})
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	total := 0
	for _, s := range perWorker {
		total += len(s)
	}
	out := make([]Minimizer, 0, total)
	for _, s := range perWorker {
		out = append(out, s...)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Pos < out[j].Pos })
	return out, nil
}
