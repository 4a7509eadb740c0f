// Package quality measures how far a processed signal is from its original.
package quality

import (
	"math"

	"github.com/pkg/errors"
)

// MSE returns the mean square error between original and processed, which must have the same length.
// Two empty signals have no error.
func MSE(original, processed []byte) (float64, error) {
	if len(original) != len(processed) {
		return math.NaN(), errors.Errorf("length mismatch %d != %d", len(original), len(processed))
	}
	if len(original) == 0 {
		return 0, nil
	}

	var sum float64
	for i, o := range original {
		k := float64(o) - float64(processed[i])
		sum += k * k
	}
	return sum / float64(len(original)), nil
}

// SNR returns the signal to noise ratio of original given the mean square error of a processed copy.
// It is infinite when mse is zero.
func SNR(original []byte, mse float64) float64 {
	if mse == 0 {
		return math.Inf(1)
	}

	var power float64
	for _, o := range original {
		k := float64(o)
		power += k * k
	}
	power /= float64(len(original))
	return power / mse
}

// ToDecibels converts a power ratio to decibels.
func ToDecibels(v float64) float64 {
	return 10 * math.Log10(v)
}
