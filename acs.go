// Package acs provides lossless compression of byte sequences using adaptive arithmetic coding.
// Symbol probabilities are learned from the data as it is coded, so no frequency table is stored.
//
// Below is an example of compressing Lincoln's Gettysburg address:
//
//	go run compress/main.go testdata/gettysburg.txt > gettys.acs
//	cat gettys.acs | go run decompress/main.go > gettys.dacs
//	diff testdata/gettysburg.txt gettys.dacs
//
// Encode and Decode work on raw payloads, leaving the symbol count to the caller.
// Compress and Decompress store the count alongside the payload.
package acs

import (
	"github.com/Bukkk/acs/ac/adaptive"
	"github.com/Bukkk/acs/bitio"
)

// Encode compresses src.
// The returned bytes do not record len(src), which Decode needs to reconstruct src.
func Encode(src []byte) ([]byte, error) {
	bits, err := adaptive.Encode(src)
	if err != nil {
		return nil, err
	}
	return bitio.Pack(bits)
}

// Decode reconstructs the n bytes that Encode compressed into src.
func Decode(src []byte, n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	bits, err := bitio.Unpack(src)
	if err != nil {
		return nil, err
	}
	return adaptive.Decode(bits, n)
}
