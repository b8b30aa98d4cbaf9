package bin

import (
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

// readFixed reads exactly n bytes, a short input fails with ErrInvalidLength
func readFixed(r io.Reader, n int) ([]byte, int64, error) {
	bs := make([]byte, n)
	read, err := io.ReadFull(r, bs)
	if err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return nil, int64(read), errors.Wrapf(ErrInvalidLength, "read %v of %v bytes", read, n)
		}
		return nil, int64(read), errors.WithStack(err)
	}
	return bs, int64(read), nil
}

// ReadUint8 reads a uint8 number from the reader
func ReadUint8(r io.Reader) (uint8, int64, error) {
	bs, n, err := readFixed(r, 1)
	if err != nil {
		return 0, n, err
	}
	return bs[0], n, nil
}

// ReadUint32 reads a uint32 number from the reader
func ReadUint32(r io.Reader) (uint32, int64, error) {
	bs, n, err := readFixed(r, 4)
	if err != nil {
		return 0, n, err
	}
	return binary.LittleEndian.Uint32(bs), n, nil
}

// ReadUint64 reads a uint64 number from the reader
func ReadUint64(r io.Reader) (uint64, int64, error) {
	bs, n, err := readFixed(r, 8)
	if err != nil {
		return 0, n, err
	}
	return binary.LittleEndian.Uint64(bs), n, nil
}

// ReadBytes reads a length prefixed byte array from the reader
func ReadBytes(r io.Reader) ([]byte, int64, error) {
	prefix, read, err := ReadUint8(r)
	if err != nil {
		return nil, read, err
	}
	size := int(prefix)
	switch prefix {
	case prefixUint16:
		bs, n, err := readFixed(r, 2)
		read += n
		if err != nil {
			return nil, read, err
		}
		size = int(binary.LittleEndian.Uint16(bs))
	case prefixUint32:
		v, n, err := ReadUint32(r)
		read += n
		if err != nil {
			return nil, read, err
		}
		size = int(v)
	}
	bs, n, err := readFixed(r, size)
	read += n
	if err != nil {
		return nil, read, err
	}
	return bs, read, nil
}

// ReadString reads a length prefixed string from the reader
func ReadString(r io.Reader) (string, int64, error) {
	bs, n, err := ReadBytes(r)
	if err != nil {
		return "", n, err
	}
	return string(bs), n, nil
}
