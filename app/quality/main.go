package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/Bukkk/acs/quality"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [flags] original processed\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	if flag.NArg() != 2 {
		flag.Usage()
		os.Exit(1)
	}

	if err := run(flag.Arg(0), flag.Arg(1)); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(originalName, processedName string) error {
	original, err := os.ReadFile(originalName)
	if err != nil {
		return errors.Wrap(err, "")
	}
	processed, err := os.ReadFile(processedName)
	if err != nil {
		return errors.Wrap(err, "")
	}

	mse, err := quality.MSE(original, processed)
	if err != nil {
		return errors.Wrapf(err, "%s %s", originalName, processedName)
	}
	snr := quality.SNR(original, mse)

	p := message.NewPrinter(language.English) // For commas between thousands
	p.Printf("samples: %d\n", len(original))
	p.Printf("MSE: %f\n", mse)
	p.Printf("SNR: %f (%f dB)\n", snr, quality.ToDecibels(snr))
	return nil
}
