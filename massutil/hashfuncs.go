package massutil

import (
	"golang.org/x/crypto/ripemd160"

	"massnet.org/shasum/crypto/sha256"
)

// Calculate the ripemd160 of buf.
func calcRipemd160(buf []byte) []byte {
	hasher := ripemd160.New()
	hasher.Write(buf)
	return hasher.Sum(nil)
}

// Sha256 returns sha256(data)
func Sha256(data []byte) ([]byte, error) {
	h, err := sha256.Sum256(data)
	if err != nil {
		return nil, err
	}
	return h[:], nil
}

// Hash256 returns sha256(sha256(data))
func Hash256(data []byte) ([]byte, error) {
	h, err := sha256.DoubleSum256(data)
	if err != nil {
		return nil, err
	}
	return h[:], nil
}

// Hash160 returns ripemd160(sha256(b)).
func Hash160(data []byte) ([]byte, error) {
	s, err := sha256.Sum256(data)
	if err != nil {
		return nil, err
	}
	return calcRipemd160(s[:]), nil
}

// Ripemd160 return ripemd16(data)
func Ripemd160(data []byte) []byte {
	return calcRipemd160(data)
}
