// Package adaptive implements arithmetic coding of bytes under an adaptive order-0 model.
//
// Both directions start from a uniform model and count the symbols they have coded,
// so the decoder reproduces the encoder's probabilities without a transmitted frequency table.
// Counts are buffered in blocks of BlockSize symbols before the cumulative table is rebuilt.
//
// Reference:
// Witten, Ian H.; Neal, Radford M.; Cleary, John G. (June 1987). "Arithmetic Coding for Data Compression". Communications of the ACM 30 (6): 520–540.
package adaptive

import (
	"github.com/Bukkk/acs/ac"
	"github.com/Bukkk/acs/bitio"
)

// An encoder carries the state required to encode one sequence.
type encoder struct {
	st    *state
	iv    ac.Interval
	fbits uint64
	dst   bitio.Bits
}

func newEncoder() *encoder {
	return &encoder{st: newState(), iv: ac.NewInterval()}
}

// bitPlusFollow emits bit followed by the pending opposite bits.
func (e *encoder) bitPlusFollow(bit uint8) {
	e.dst.Append(bit, e.fbits)
	e.fbits = 0
}

func (e *encoder) encode(symbol byte) {
	m := e.st.model
	e.iv.Narrow(m.ScaleFrom(symbol), m.ScaleTo(symbol), m.OccurrenceSum())

	for {
		s, _ := e.iv.Rescale()
		switch s {
		case ac.ScaleLower:
			e.bitPlusFollow(0)
		case ac.ScaleUpper:
			e.bitPlusFollow(1)
		case ac.ScaleMiddle:
			e.fbits++
		}
		if s == ac.ScaleNone {
			break
		}
	}

	e.st.observe(symbol)
}

// finish emits enough bits to place any continuation inside the final interval.
func (e *encoder) finish() {
	e.fbits++
	if e.iv.Low < ac.Quarter {
		e.bitPlusFollow(0)
	} else {
		e.bitPlusFollow(1)
	}
}

// Encode performs arithmetic coding on src.
// The number of symbols, len(src), is not recorded in the output and must be passed to Decode separately.
// ac.ErrInputTooLong is returned if src is longer than MaxSymbols.
func Encode(src []byte) (bitio.Bits, error) {
	if uint64(len(src)) > MaxSymbols {
		return nil, ac.ErrInputTooLong
	}

	e := newEncoder()
	for _, symbol := range src {
		e.encode(symbol)
	}
	e.finish()
	return e.dst, nil
}
