package digest

// Defaults mirror the reference tool's command-line defaults; callers
// are free to pick any k, w, mod and cong.
const (
	DefaultK   = 31
	DefaultW   = 11
	DefaultMod = 100
)

// WindowMinimizer computes the window-minimizer digest of seq: the
// sparse stream of k-mers that are the smallest hash in some sliding
// window of w consecutive k-mers. threads selects how many goroutines
// split the work (see RunParallel); threads <= 1 runs single-threaded.
func WindowMinimizer(seq []byte, k, w, threads int, minimized MinimizedHash, policy BadCharPolicy) ([]Minimizer, error) {
	return RunParallel(seq, threads, overlap(k, w), WindowMinFactory(k, w, minimized, policy))
}

// Modimizer computes the modulo-minimizer digest of seq: every k-mer
// whose selected hash is congruent to cong modulo mod. threads selects
// how many goroutines split the work; threads <= 1 runs
// single-threaded.
func Modimizer(seq []byte, k int, mod, cong uint32, threads int, minimized MinimizedHash, policy BadCharPolicy) ([]Minimizer, error) {
	return RunParallel(seq, threads, overlap(k, 0), ModMinFactory(k, mod, cong, minimized, policy))
}

// SyncmerDigest computes the syncmer digest of seq: every k-mer that
// is the left edge of a window of w consecutive k-mers whose smallest
// hash lies at either edge of that window, paired with that smallest
// hash. threads
// selects how many goroutines split the work; threads <= 1 runs
// single-threaded.
func SyncmerDigest(seq []byte, k, w, threads int, minimized MinimizedHash, policy BadCharPolicy) ([]Minimizer, error) {
	return RunParallel(seq, threads, overlap(k, w), SyncmerFactory(k, w, minimized, policy))
}
