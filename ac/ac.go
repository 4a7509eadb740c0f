// Package ac defines the fixed precision interval the arithmetic coding algorithm operates on,
// together with the rescaling steps shared by encoders and decoders.
// See its subpackages for particular probability models built on top of it.
package ac

import (
	"fmt"
)

const (
	// Precision is the number of bits of the whole interval.
	Precision = 32

	Whole   = uint64(1) << Precision
	Half    = Whole / 2
	Quarter = Whole / 4
)

// ErrDecodeInsufficientBits is returned when there are insufficient bits sent to Decode to reconstruct the original data.
var ErrDecodeInsufficientBits = fmt.Errorf("insufficient bits sent to decoder")

// ErrInputTooLong is returned when a sequence has more symbols than a model can count without losing precision.
var ErrInputTooLong = fmt.Errorf("input too long for model precision")

// ErrCorruptStream is returned when the decoder cannot locate a symbol for the current probe value.
var ErrCorruptStream = fmt.Errorf("corrupt stream")

// A Scaling names the rescaling step applied to an interval.
type Scaling int

const (
	// ScaleNone means the interval is wide enough and was left untouched.
	ScaleNone Scaling = iota
	// ScaleLower means the interval was entirely in the lower half, the next bit is 0.
	ScaleLower
	// ScaleUpper means the interval was entirely in the upper half, the next bit is 1.
	ScaleUpper
	// ScaleMiddle means the interval was confined to the middle half and the next bit is not yet known.
	ScaleMiddle
)

func (s Scaling) String() string {
	switch s {
	case ScaleNone:
		return "none"
	case ScaleLower:
		return "lower"
	case ScaleUpper:
		return "upper"
	case ScaleMiddle:
		return "middle"
	default:
		return fmt.Sprintf("Scaling(%d)", int(s))
	}
}

// An Interval is the current coding range [Low, High) within [0, Whole).
type Interval struct {
	Low  uint64
	High uint64
}

// NewInterval returns the whole interval.
func NewInterval() Interval {
	return Interval{Low: 0, High: Whole}
}

// Sub maps the cumulative frequency range [from, to) out of sum onto the interval.
// The products fit in 64 bits as long as sum stays below Quarter.
func (iv Interval) Sub(from, to, sum uint64) (uint64, uint64) {
	width := iv.High - iv.Low
	return iv.Low + width*from/sum, iv.Low + width*to/sum
}

// Narrow shrinks the interval to the cumulative frequency range [from, to) out of sum.
func (iv *Interval) Narrow(from, to, sum uint64) {
	iv.Low, iv.High = iv.Sub(from, to, sum)
}

// Rescale applies the first matching rescaling step and doubles the interval.
// It returns the step taken and the offset that was subtracted from both ends,
// which decoders must also subtract from their probe value before doubling it.
// When ScaleNone is returned the interval is unchanged.
func (iv *Interval) Rescale() (Scaling, uint64) {
	var s Scaling
	var offset uint64
	switch {
	case iv.High < Half:
		s = ScaleLower
	case Half < iv.Low:
		s = ScaleUpper
		offset = Half
	case Quarter <= iv.Low && iv.High < 3*Quarter:
		s = ScaleMiddle
		offset = Quarter
	default:
		return ScaleNone, 0
	}

	iv.Low = 2 * (iv.Low - offset)
	iv.High = 2 * (iv.High - offset)
	return s, offset
}
