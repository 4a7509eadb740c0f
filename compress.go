package acs

import (
	"bufio"
	"encoding/binary"
	"io"
	"os"

	"github.com/pkg/errors"
)

// Compress compresses src and writes it to dst.
// The output starts with the uncompressed length as a uvarint, followed by the encoded payload.
func Compress(dst io.Writer, src io.Reader) error {
	data, err := io.ReadAll(src)
	if err != nil {
		return errors.Wrap(err, "")
	}
	payload, err := Encode(data)
	if err != nil {
		return errors.Wrapf(err, "%d bytes", len(data))
	}

	header := make([]byte, binary.MaxVarintLen64)
	n := binary.PutUvarint(header, uint64(len(data)))
	if _, err := dst.Write(header[:n]); err != nil {
		return errors.Wrap(err, "")
	}
	if _, err := dst.Write(payload); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}

// CompressFile compresses the file at name and writes it to dst.
func CompressFile(dst io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrap(err, "")
	}
	defer f.Close()
	if err := Compress(dst, f); err != nil {
		return errors.Wrap(err, name)
	}
	return nil
}

// Decompress decompresses the output of Compress read from src and writes it to dst.
func Decompress(dst io.Writer, src io.Reader) error {
	r := bufio.NewReader(src)
	size, err := binary.ReadUvarint(r)
	if err != nil {
		return errors.Wrap(err, "reading header")
	}
	payload, err := io.ReadAll(r)
	if err != nil {
		return errors.Wrap(err, "")
	}
	data, err := Decode(payload, size)
	if err != nil {
		return errors.Wrapf(err, "decoding %d bytes", size)
	}
	if _, err := dst.Write(data); err != nil {
		return errors.Wrap(err, "")
	}
	return nil
}
