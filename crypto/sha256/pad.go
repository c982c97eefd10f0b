package sha256

import (
	"encoding/binary"
	"math"
)

// bitLength returns n*8, or ErrInputTooLarge if the product overflows 64 bits.
func bitLength(n uint64) (uint64, error) {
	if n > math.MaxUint64/8 {
		return 0, ErrInputTooLarge
	}
	return n * 8, nil
}

// paddedLen returns the padded length of a message of n bytes.
func paddedLen(n int) int {
	zeros := (chunk - lengthSize - (n+1)%chunk + chunk) % chunk
	return n + 1 + zeros + lengthSize
}

// Pad returns a copy of msg extended to a multiple of BlockSize bytes:
// a single 0x80 byte, zeros up to 56 mod 64, then the bit-length of msg
// as a big-endian uint64. An empty msg yields exactly one block.
func Pad(msg []byte) ([]byte, error) {
	length, err := bitLength(uint64(len(msg)))
	if err != nil {
		return nil, err
	}

	padded := make([]byte, paddedLen(len(msg)))
	n := copy(padded, msg)
	padded[n] = 0x80
	binary.BigEndian.PutUint64(padded[len(padded)-lengthSize:], length)
	return padded, nil
}

// BlockCount returns the number of blocks the padded form of an n-byte message spans.
func BlockCount(n int) int {
	return paddedLen(n) / chunk
}
