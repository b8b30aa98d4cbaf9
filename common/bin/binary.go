// Package bin encodes the constructions and the stored records of the contracts.
//
// Numbers are little endian. Byte arrays carry a length prefix of one byte
// below 254, 254 followed by a uint16 or 255 followed by a uint32.
package bin

import (
	"encoding/binary"
)

const (
	prefixUint16 = 254
	prefixUint32 = 255
)

// Uint64Bytes returns a byte array of the uint64 number
func Uint64Bytes(v uint64) []byte {
	bs := make([]byte, 8)
	binary.LittleEndian.PutUint64(bs, v)
	return bs
}

// Uint64 returns a uint64 number of the byte array
func Uint64(v []byte) uint64 {
	return binary.LittleEndian.Uint64(v)
}
