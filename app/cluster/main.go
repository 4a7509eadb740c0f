package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/Bukkk/acs/cluster"
	"github.com/pkg/errors"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	flagConfig = flag.String("c", `{
		"Dir": "testdata",
		"Workers": 0
		}`, "configuration")
)

type Config struct {
	// Dir holds the files to compare.
	Dir string
	// Workers is the number of concurrent compressions, 0 for one per CPU.
	Workers int
}

func parseConfig() (Config, error) {
	config := Config{}
	if err := json.Unmarshal([]byte(*flagConfig), &config); err != nil {
		return Config{}, errors.Wrap(err, "")
	}
	configB, err := json.Marshal(config)
	if err != nil {
		return Config{}, errors.Wrap(err, "")
	}
	log.Printf("config: %s", configB)
	return config, nil
}

func main() {
	flag.Parse()
	log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)

	config, err := parseConfig()
	if err != nil {
		log.Fatalf("%+v", err)
	}
	if err := run(config); err != nil {
		log.Fatalf("%+v", err)
	}
}

func run(config Config) error {
	names, err := cluster.ListFiles(config.Dir)
	if err != nil {
		return errors.Wrap(err, "")
	}
	if len(names) < 2 {
		return errors.Errorf("need at least two files in %q, found %d", config.Dir, len(names))
	}

	data := make([][]byte, 0, len(names))
	var total int64
	for _, name := range names {
		b, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrap(err, "")
		}
		data = append(data, b)
		total += int64(len(b))
	}
	p := message.NewPrinter(language.English) // For commas between thousands
	log.Print(p.Sprintf("comparing %d files, %d bytes", len(names), total))

	distMat, err := cluster.Matrix(context.Background(), data, config.Workers)
	if err != nil {
		return errors.Wrap(err, "")
	}
	n := len(names)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			log.Printf("%q-%q: %f", names[i], names[j], distMat[cluster.PairIndex(n, i, j)])
		}
	}

	if err := display(names, distMat); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// display prints the file names and the distance matrix as comma separated arrays.
func display(data []string, distMat []float64) error {
	buf := bytes.NewBuffer(nil)
	for i, fpath := range data {
		name := filepath.Base(fpath)
		base := strings.TrimSuffix(name, filepath.Ext(name))
		if _, err := buf.WriteString(strconv.Quote(base)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(data)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	buf.Reset()
	for i, f := range distMat {
		if _, err := buf.WriteString(strconv.FormatFloat(f, 'f', -1, 64)); err != nil {
			return errors.Wrap(err, "")
		}
		if i == len(distMat)-1 {
			break
		}
		if err := buf.WriteByte(','); err != nil {
			return errors.Wrap(err, "")
		}
	}
	log.Printf("[%s]", buf.Bytes())

	return nil
}
