// Package digest implements DNA k-mer sub-sampling ("digestion"): given a
// nucleotide sequence and a k-mer length, it produces a sparse,
// edit-stable subset of k-mer positions that can be shared between
// reads and assemblies. Three sub-sampling disciplines are provided:
//
//   - ModMin ("modulo-minimizers"): emit a k-mer whenever its hash is
//     congruent to a target residue modulo m.
//   - WindowMin ("window-minimizers"): emit the smallest hash in every
//     sliding window of W consecutive k-mers.
//   - Syncmer: emit a k-mer whenever its smallest internal sub-k-mer
//     lies at either edge of a window of W.
//
// All three are built on a single streaming cursor, Digester, which
// maintains an incrementally-updated ntHash of the k-mer under its
// window (see the nthash subpackage) and can be handed successive
// sequences via AppendSeq without rehashing anything already seen.
// RunParallel, and the WindowMinimizer/Modimizer/SyncmerDigest
// functions built on it, partition a sequence across goroutines and
// merge the per-worker outputs so that the result is identical to the
// single-threaded one, regardless of worker count.
package digest
