// Package cluster measures the similarity of files by how well they compress together.
//
// The normalized compression distance of x and y is
//
//	(C(xy) - min(C(x), C(y))) / max(C(x), C(y))
//
// where C is the compressed size. Values near 0 mean one input predicts the other well.
// The coder's model only counts byte frequencies, so the distance compares byte distributions,
// not shared substrings.
package cluster

import (
	"context"
	"os"
	"path/filepath"
	"runtime"

	"github.com/Bukkk/acs"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Complexity returns the compressed size of x in bytes.
func Complexity(x []byte) (float64, error) {
	encoded, err := acs.Encode(x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	return float64(len(encoded)), nil
}

// Distance returns the normalized compression distance between x and y.
func Distance(x, y []byte) (float64, error) {
	kx, err := Complexity(x)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	ky, err := Complexity(y)
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	kxy, err := Complexity(concat(x, y))
	if err != nil {
		return -1, errors.Wrap(err, "")
	}
	return distance(kx, ky, kxy), nil
}

func distance(kx, ky, kxy float64) float64 {
	minxy := kx
	if ky < kx {
		minxy = ky
	}
	maxxy := kx
	if ky > kx {
		maxxy = ky
	}
	return (kxy - minxy) / maxxy
}

func concat(x, y []byte) []byte {
	xy := make([]byte, 0, len(x)+len(y))
	xy = append(xy, x...)
	return append(xy, y...)
}

// Matrix returns the distances between every pair of data, in the order
// (0,1), (0,2), ..., (0,n-1), (1,2), ..., (n-2,n-1).
// At most workers inputs are compressed at the same time; workers <= 0 means one per CPU.
func Matrix(ctx context.Context, data [][]byte, workers int) ([]float64, error) {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	n := len(data)
	if n < 2 {
		return []float64{}, nil
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	// Each goroutine writes only its own index.
	single := make([]float64, n)
	for i := range data {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			k, err := Complexity(data[i])
			if err != nil {
				return errors.Wrapf(err, "input %d", i)
			}
			single[i] = k
			return nil
		})
	}

	pairs := make([]float64, n*(n-1)/2)
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			i, j := i, j
			g.Go(func() error {
				if err := ctx.Err(); err != nil {
					return err
				}
				k, err := Complexity(concat(data[i], data[j]))
				if err != nil {
					return errors.Wrapf(err, "inputs %d %d", i, j)
				}
				pairs[PairIndex(n, i, j)] = k
				return nil
			})
		}
	}
	if err := g.Wait(); err != nil {
		return nil, errors.Wrap(err, "")
	}

	mat := make([]float64, len(pairs))
	for i := 0; i < n-1; i++ {
		for j := i + 1; j < n; j++ {
			k := PairIndex(n, i, j)
			mat[k] = distance(single[i], single[j], pairs[k])
		}
	}
	return mat, nil
}

// PairIndex returns the position of the pair (i, j), i < j, in the result of Matrix for n inputs.
func PairIndex(n, i, j int) int {
	return i*(2*n-i-1)/2 + j - i - 1
}

// ListFiles returns the paths of the regular files in dir.
func ListFiles(dir string) ([]string, error) {
	files, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	data := make([]string, 0, len(files))
	for _, f := range files {
		if !f.Type().IsRegular() {
			continue
		}
		data = append(data, filepath.Join(dir, f.Name()))
	}
	return data, nil
}
