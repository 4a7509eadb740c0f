package adaptive

import (
	"github.com/Bukkk/acs/ac"
	"github.com/Bukkk/acs/bitio"
)

// maxGarbageBits is the number of zeros a well formed stream may need beyond its end.
// The decoder reads ac.Precision bits ahead of the encoder, which always flushes at least two bits.
const maxGarbageBits = ac.Precision - 2

type decoder struct {
	st    *state
	iv    ac.Interval
	value uint64
	src   *bitio.Reader
}

func newDecoder(src bitio.Bits) (*decoder, error) {
	d := &decoder{st: newState(), iv: ac.NewInterval(), src: bitio.NewReader(src)}
	for i := 0; i < ac.Precision; i++ {
		inb, err := d.readDecBit()
		if err != nil {
			return nil, err
		}
		d.value = 2*d.value + inb
	}
	return d, nil
}

func (d *decoder) readDecBit() (uint64, error) {
	b := d.src.ReadBit()
	if d.src.Missing() > maxGarbageBits {
		return 0, ac.ErrDecodeInsufficientBits
	}
	return uint64(b), nil
}

func (d *decoder) decode() (byte, error) {
	symbol, sub, ok := find(d.st.model.Table(), d.iv, d.value)
	if !ok {
		return 0, ac.ErrCorruptStream
	}
	d.iv = sub
	d.st.observe(symbol)
	return symbol, nil
}

// rescale widens the interval, shifting a new bit into the probe value for every doubling.
func (d *decoder) rescale() error {
	for {
		s, offset := d.iv.Rescale()
		if s == ac.ScaleNone {
			return nil
		}
		inb, err := d.readDecBit()
		if err != nil {
			return err
		}
		d.value = 2*(d.value-offset) + inb
	}
}

// Decode decodes originalSize symbols from src, which should have been produced by Encode.
//
// src is conceptually followed by an infinite run of zeros.
// ac.ErrDecodeInsufficientBits is returned if decoding reaches further into that run than any stream produced by Encode can,
// which happens when src is truncated or originalSize is larger than the encoded length.
// Short of that, a wrong originalSize is not detected.
func Decode(src bitio.Bits, originalSize uint64) ([]byte, error) {
	if originalSize == 0 {
		return []byte{}, nil
	}
	if originalSize > MaxSymbols {
		return nil, ac.ErrInputTooLong
	}

	d, err := newDecoder(src)
	if err != nil {
		return nil, err
	}
	dst := make([]byte, 0, min(originalSize, 1<<20))
	for {
		symbol, err := d.decode()
		if err != nil {
			return nil, err
		}
		dst = append(dst, symbol)
		if uint64(len(dst)) == originalSize {
			return dst, nil
		}

		if err := d.rescale(); err != nil {
			return nil, err
		}
	}
}
