package bin

import (
	"bytes"
	"encoding/binary"
	"io"

	"github.com/pkg/errors"
)

func writeFull(w io.Writer, bs []byte) (int64, error) {
	n, err := w.Write(bs)
	if err != nil {
		return int64(n), errors.WithStack(err)
	}
	if n != len(bs) {
		return int64(n), errors.Wrapf(ErrInvalidLength, "wrote %v of %v bytes", n, len(bs))
	}
	return int64(n), nil
}

// WriteUint8 writes the uint8 number to the writer
func WriteUint8(w io.Writer, num uint8) (int64, error) {
	return writeFull(w, []byte{num})
}

// WriteUint32 writes the uint32 number to the writer
func WriteUint32(w io.Writer, num uint32) (int64, error) {
	bs := make([]byte, 4)
	binary.LittleEndian.PutUint32(bs, num)
	return writeFull(w, bs)
}

// WriteUint64 writes the uint64 number to the writer
func WriteUint64(w io.Writer, num uint64) (int64, error) {
	return writeFull(w, Uint64Bytes(num))
}

// WriteBytes writes the byte array after its length prefix
func WriteBytes(w io.Writer, bs []byte) (int64, error) {
	var prefix []byte
	switch {
	case len(bs) < prefixUint16:
		prefix = []byte{uint8(len(bs))}
	case len(bs) <= 0xFFFF:
		prefix = []byte{prefixUint16, 0, 0}
		binary.LittleEndian.PutUint16(prefix[1:], uint16(len(bs)))
	default:
		prefix = []byte{prefixUint32, 0, 0, 0, 0}
		binary.LittleEndian.PutUint32(prefix[1:], uint32(len(bs)))
	}
	wrote, err := writeFull(w, prefix)
	if err != nil {
		return wrote, err
	}
	n, err := writeFull(w, bs)
	return wrote + n, err
}

// WriteString writes the string after its length prefix
func WriteString(w io.Writer, str string) (int64, error) {
	return WriteBytes(w, []byte(str))
}

// WriterToBytes returns the encoding of the value
func WriterToBytes(w io.WriterTo) ([]byte, int64, error) {
	var buffer bytes.Buffer
	n, err := w.WriteTo(&buffer)
	if err != nil {
		return nil, n, err
	}
	return buffer.Bytes(), n, nil
}
