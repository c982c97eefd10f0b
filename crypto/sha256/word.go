package sha256

import "math/bits"

// DecodeWord reads a big-endian 32-bit word from the first 4 bytes of b.
func DecodeWord(b []byte) uint32 {
	_ = b[3] // bounds check hint to compiler
	return uint32(b[0])<<24 | uint32(b[1])<<16 | uint32(b[2])<<8 | uint32(b[3])
}

// EncodeWord writes w into the first 4 bytes of dst, big-endian.
func EncodeWord(dst []byte, w uint32) {
	_ = dst[3]
	dst[0] = byte(w >> 24)
	dst[1] = byte(w >> 16)
	dst[2] = byte(w >> 8)
	dst[3] = byte(w)
}

// rotr rotates x right by n bits.
func rotr(x uint32, n int) uint32 {
	return bits.RotateLeft32(x, -n)
}
