package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"runtime"

	"github.com/Bukkk/acs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const ext = ".acs"

var (
	verbose = flag.Bool("verbose", false, "verbosity")
	jobs    = flag.Int("j", runtime.NumCPU(), "number of files compressed at the same time")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] filename...\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "A single file is compressed to stdout, several files are each compressed to filename%s.\n", ext)
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	names := flag.Args()
	if len(names) == 0 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(names); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(names []string) error {
	if len(names) == 1 {
		return compress(os.Stdout, names[0])
	}

	g := new(errgroup.Group)
	g.SetLimit(*jobs)
	for _, name := range names {
		name := name
		g.Go(func() error {
			f, err := os.Create(name + ext)
			if err != nil {
				return errors.Wrap(err, "")
			}
			defer f.Close()
			if err := compress(f, name); err != nil {
				return errors.Wrap(err, "")
			}
			if err := f.Close(); err != nil {
				return errors.Wrap(err, "")
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func compress(w io.Writer, name string) error {
	cw := &countingWriter{w: w}
	if err := acs.CompressFile(cw, name); err != nil {
		return errors.Wrap(err, "")
	}
	if *verbose {
		info, err := os.Stat(name)
		if err != nil {
			return errors.Wrap(err, "")
		}
		report(name, info.Size(), cw.n)
	}
	return nil
}

func report(name string, original, compressed int64) {
	p := message.NewPrinter(language.English) // For commas between thousands
	bpb := 0.0
	if original > 0 {
		bpb = 8 * float64(compressed) / float64(original)
	}
	log.Print(p.Sprintf("%s: %d -> %d bytes, %.3f bits per byte", name, original, compressed, bpb))
}

type countingWriter struct {
	w io.Writer
	n int64
}

func (cw *countingWriter) Write(p []byte) (int, error) {
	n, err := cw.w.Write(p)
	cw.n += int64(n)
	return n, err
}
