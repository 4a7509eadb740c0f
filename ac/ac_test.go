package ac

import (
	"math/rand"
	"testing"
)

func TestRescaleCases(t *testing.T) {
	tests := []struct {
		iv     Interval
		s      Scaling
		offset uint64
		want   Interval
	}{
		{Interval{Low: 0, High: Half - 1}, ScaleLower, 0, Interval{Low: 0, High: Whole - 2}},
		{Interval{Low: Half + 1, High: Whole}, ScaleUpper, Half, Interval{Low: 2, High: Whole}},
		{Interval{Low: Quarter, High: 3*Quarter - 1}, ScaleMiddle, Quarter, Interval{Low: 0, High: Whole - 2}},
		{Interval{Low: Quarter - 1, High: Half + 1}, ScaleNone, 0, Interval{Low: Quarter - 1, High: Half + 1}},
		// The midpoint itself belongs to neither half.
		{Interval{Low: Half, High: Whole}, ScaleNone, 0, Interval{Low: Half, High: Whole}},
		{Interval{Low: 0, High: Half}, ScaleNone, 0, Interval{Low: 0, High: Half}},
	}
	for i, test := range tests {
		iv := test.iv
		s, offset := iv.Rescale()
		if s != test.s || offset != test.offset {
			t.Errorf("%d: got %v %d, want %v %d", i, s, offset, test.s, test.offset)
		}
		if iv != test.want {
			t.Errorf("%d: got %+v, want %+v", i, iv, test.want)
		}
	}
}

func TestIntervalInvariant(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	const sum = 1 << 20

	iv := NewInterval()
	for i := 0; i < 100000; i++ {
		from := uint64(rng.Intn(sum - 1))
		to := from + 1 + uint64(rng.Intn(sum-int(from)))
		iv.Narrow(from, to, sum)
		if iv.Low >= iv.High || iv.High > Whole {
			t.Fatalf("%d: narrowed to %+v", i, iv)
		}

		for {
			s, _ := iv.Rescale()
			if iv.Low >= iv.High || iv.High > Whole {
				t.Fatalf("%d: rescaled %v to %+v", i, s, iv)
			}
			if s == ScaleNone {
				break
			}
		}
		if iv.High-iv.Low < Quarter {
			t.Fatalf("%d: interval %+v narrower than a quarter after rescaling", i, iv)
		}
	}
}
