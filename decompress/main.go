package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"runtime"
	"strings"

	"github.com/Bukkk/acs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

const ext = ".acs"

var jobs = flag.Int("j", runtime.NumCPU(), "number of files decompressed at the same time")

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] [filename%s...]\n", os.Args[0], ext)
		fmt.Fprintf(os.Stderr, "Without arguments stdin is decompressed to stdout.\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	if err := run(flag.Args()); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(names []string) error {
	if len(names) == 0 {
		if err := acs.Decompress(os.Stdout, os.Stdin); err != nil {
			return errors.Wrap(err, "")
		}
		return nil
	}

	for _, name := range names {
		if !strings.HasSuffix(name, ext) {
			return errors.Errorf("%s: no %s suffix", name, ext)
		}
	}

	g := new(errgroup.Group)
	g.SetLimit(*jobs)
	for _, name := range names {
		name := name
		g.Go(func() error {
			return decompressFile(strings.TrimSuffix(name, ext), name)
		})
	}
	if err := g.Wait(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

func decompressFile(dst, src string) error {
	r, err := os.Open(src)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer r.Close()
	w, err := os.Create(dst)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer w.Close()
	if err := acs.Decompress(w, r); err != nil {
		return errors.Wrap(err, src)
	}
	if err := w.Close(); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
