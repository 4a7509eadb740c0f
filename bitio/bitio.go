// Package bitio holds the bit sequences produced and consumed by the coders,
// and converts them to and from bytes.
//
// Bits are packed most significant bit first, and a trailing partial byte is zero padded:
//
//	byte  0               1
//	     +---------------+---------------+-
//	     |7 6 5 4 3 2 1 0|7 6 5 4 3 2 1 0|...
//	     +---------------+---------------+-
//	bit   0 1 2 3 4 5 6 7 8 9 ...
package bitio

import (
	"bytes"
	"io"

	"github.com/flanglet/kanzi-go/v2/bitstream"
	"github.com/pkg/errors"
)

// bufferSize is the internal buffer of the kanzi bit streams, at least 1024 and a multiple of 8.
const bufferSize = 1 << 14

// Bits is an ordered sequence of binary digits, one digit per element.
type Bits []uint8

// Append appends bit followed by n copies of its complement.
func (b *Bits) Append(bit uint8, n uint64) {
	*b = append(*b, bit)
	neg := 1 - bit
	for ; n > 0; n-- {
		*b = append(*b, neg)
	}
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }

// Pack returns the bytes holding bits.
func Pack(bits Bits) ([]byte, error) {
	var buf bytes.Buffer
	obs, err := bitstream.NewDefaultOutputBitStream(nopWriteCloser{&buf}, bufferSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	for _, bit := range bits {
		obs.WriteBit(int(bit))
	}
	// Close only flushes whole 64 bit words reliably, so fill the last one with zeros.
	if pad := uint(-len(bits) & 63); pad > 0 {
		obs.WriteBits(0, pad)
	}
	if err := obs.Close(); err != nil {
		return nil, errors.Wrap(err, "")
	}

	n := (len(bits) + 7) / 8
	if buf.Len() < n {
		return nil, errors.Errorf("packed %d bytes, want %d", buf.Len(), n)
	}
	return buf.Bytes()[:n], nil
}

// Unpack returns the bits held in p.
func Unpack(p []byte) (Bits, error) {
	bits := make(Bits, 0, 8*len(p))
	if len(p) == 0 {
		return bits, nil
	}
	ibs, err := bitstream.NewDefaultInputBitStream(io.NopCloser(bytes.NewReader(p)), bufferSize)
	if err != nil {
		return nil, errors.Wrap(err, "")
	}
	defer ibs.Close()
	for i := 0; i < 8*len(p); i++ {
		bits = append(bits, uint8(ibs.ReadBit()))
	}
	return bits, nil
}

// A Reader reads a bit sequence from left to right.
// Reads past the end yield zeros, and are counted.
type Reader struct {
	bits    Bits
	pos     int
	missing int
}

// NewReader returns a Reader over bits.
func NewReader(bits Bits) *Reader {
	return &Reader{bits: bits}
}

// ReadBit returns the next bit, or 0 if the sequence is exhausted.
func (r *Reader) ReadBit() uint8 {
	if r.pos >= len(r.bits) {
		r.missing++
		return 0
	}
	b := r.bits[r.pos]
	r.pos++
	return b
}

// Missing returns the number of reads made past the end of the sequence.
func (r *Reader) Missing() int {
	return r.missing
}
