// Command digest-cli computes a sparse k-mer digest (window-minimizer,
// modulo-minimizer, or syncmer) of every sequence in a FASTA or FASTQ file,
// and prints the selected positions and hashes as tab-separated text.
// Input and output paths ending in ".gz" are transparently gzip-compressed.
//
// Example:
//
//	digest-cli -input genome.fa.gz -output hits.tsv.gz -mode windowmin -k 21 -w 11 -threads 8
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/klauspost/compress/gzip"

	"github.com/grailbio/base/grail"
	"github.com/grailbio/base/log"

	"github.com/VeryAmazed/digest"
	"github.com/VeryAmazed/digest/encoding/fasta"
	"github.com/VeryAmazed/digest/encoding/fastq"
)

type cliFlags struct {
	input     string
	output    string
	format    string
	mode      string
	k         int
	w         int
	mod       uint
	cong      uint
	minimized string
	badchar   string
	threads   int
}

func parseMinimized(s string) (digest.MinimizedHash, error) {
	switch strings.ToLower(s) {
	case "canonical", "":
		return digest.Canonical, nil
	case "forward":
		return digest.Forward, nil
	case "reverse":
		return digest.Reverse, nil
	default:
		return 0, fmt.Errorf("unrecognized -minimized %q: want canonical, forward or reverse", s)
	}
}

func parseBadChar(s string) (digest.BadCharPolicy, error) {
	switch strings.ToLower(s) {
	case "skip", "":
		return digest.SkipOver, nil
	case "write":
		return digest.WriteOver, nil
	default:
		return 0, fmt.Errorf("unrecognized -badchar %q: want skip or write", s)
	}
}

// digestOne runs the configured engine over seq and writes one line per
// selected k-mer to w, prefixed by name.
func digestOne(w *bufio.Writer, name string, seq []byte, f cliFlags, minimized digest.MinimizedHash, policy digest.BadCharPolicy) error {
	var (
		hits []digest.Minimizer
		err  error
	)
	switch f.mode {
	case "windowmin":
		hits, err = digest.WindowMinimizer(seq, f.k, f.w, f.threads, minimized, policy)
	case "modmin":
		hits, err = digest.Modimizer(seq, f.k, uint32(f.mod), uint32(f.cong), f.threads, minimized, policy)
	case "syncmer":
		hits, err = digest.SyncmerDigest(seq, f.k, f.w, f.threads, minimized, policy)
	default:
		return fmt.Errorf("unrecognized -mode %q: want windowmin, modmin or syncmer", f.mode)
	}
	if err != nil {
		return err
	}
	for _, h := range hits {
		if _, err := fmt.Fprintf(w, "%s\t%d\t%d\n", name, h.Pos, h.Hash); err != nil {
			return err
		}
	}
	return nil
}

// openInput opens path, transparently decompressing it with gzip if its
// name ends in ".gz".
func openInput(path string) (io.ReadCloser, error) {
	in, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return in, nil
	}
	gz, err := gzip.NewReader(in)
	if err != nil {
		in.Close()
		return nil, err
	}
	return gzReadCloser{gz, in}, nil
}

// gzReadCloser closes both the gzip reader and the underlying file.
type gzReadCloser struct {
	*gzip.Reader
	file io.Closer
}

func (g gzReadCloser) Close() error {
	gzErr := g.Reader.Close()
	fileErr := g.file.Close()
	if gzErr != nil {
		return gzErr
	}
	return fileErr
}

// openOutput opens path for writing, transparently gzip-compressing it if
// its name ends in ".gz". The returned flush func must be called before
// closer.Close.
func openOutput(path string) (w io.Writer, flush func() error, closer io.Closer, err error) {
	out, err := os.Create(path)
	if err != nil {
		return nil, nil, nil, err
	}
	if !strings.HasSuffix(path, ".gz") {
		return out, func() error { return nil }, out, nil
	}
	gz := gzip.NewWriter(out)
	return gz, gz.Close, out, nil
}

func digestFasta(w *bufio.Writer, path string, f cliFlags, minimized digest.MinimizedHash, policy digest.BadCharPolicy) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()
	parsed, err := fasta.New(in)
	if err != nil {
		return err
	}
	for _, name := range parsed.SeqNames() {
		seq, err := parsed.Get(name)
		if err != nil {
			return err
		}
		if err := digestOne(w, name, seq, f, minimized, policy); err != nil {
			return err
		}
	}
	return nil
}

func digestFastq(w *bufio.Writer, path string, f cliFlags, minimized digest.MinimizedHash, policy digest.BadCharPolicy) error {
	in, err := openInput(path)
	if err != nil {
		return err
	}
	defer in.Close()
	scanner := fastq.NewScanner(in, fastq.ID|fastq.Seq)
	var r fastq.Read
	n := 0
	for scanner.Scan(&r) {
		if err := digestOne(w, r.ID, []byte(r.Seq), f, minimized, policy); err != nil {
			return err
		}
		n++
		if n%1000000 == 0 {
			log.Printf("digest-cli: processed %d reads", n)
		}
	}
	return scanner.Err()
}

func main() {
	f := cliFlags{}
	flag.StringVar(&f.input, "input", "", "Path to the FASTA or FASTQ file to digest.")
	flag.StringVar(&f.output, "output", "", "Path to write the digest to (default stdout).")
	flag.StringVar(&f.format, "format", "fasta", "Input format: fasta or fastq.")
	flag.StringVar(&f.mode, "mode", "windowmin", "Digestion mode: windowmin, modmin or syncmer.")
	flag.IntVar(&f.k, "k", digest.DefaultK, "K-mer length.")
	flag.IntVar(&f.w, "w", digest.DefaultW, "Window width, for windowmin and syncmer.")
	flag.UintVar(&f.mod, "mod", digest.DefaultMod, "Modulus, for modmin.")
	flag.UintVar(&f.cong, "cong", 0, "Target congruence class, for modmin.")
	flag.StringVar(&f.minimized, "minimized", "canonical", "Which hash to minimize: canonical, forward or reverse.")
	flag.StringVar(&f.badchar, "badchar", "skip", "How to treat non-ACGT bytes: skip or write.")
	flag.IntVar(&f.threads, "threads", runtime.NumCPU(), "Number of goroutines to split each sequence across.")

	cleanup := grail.Init()
	defer cleanup()

	if f.input == "" {
		log.Panicf("digest-cli: -input is required")
	}
	minimized, err := parseMinimized(f.minimized)
	if err != nil {
		log.Panic(err)
	}
	policy, err := parseBadChar(f.badchar)
	if err != nil {
		log.Panic(err)
	}

	var (
		dst      io.Writer = os.Stdout
		flush              = func() error { return nil }
		closer   io.Closer = nopCloser{}
	)
	if f.output != "" {
		dst, flush, closer, err = openOutput(f.output)
		if err != nil {
			log.Panic(err)
		}
	}
	defer closer.Close()
	w := bufio.NewWriter(dst)

	start := time.Now()
	switch strings.ToLower(f.format) {
	case "fasta":
		err = digestFasta(w, f.input, f, minimized, policy)
	case "fastq":
		err = digestFastq(w, f.input, f, minimized, policy)
	default:
		err = fmt.Errorf("unrecognized -format %q: want fasta or fastq", f.format)
	}
	if err != nil {
		log.Panic(err)
	}
	if err := w.Flush(); err != nil {
		log.Panic(err)
	}
	if err := flush(); err != nil {
		log.Panic(err)
	}
	log.Printf("digest-cli: done in %s", time.Since(start))
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
