// Package sha256 implements the SHA-256 hash algorithm as defined in FIPS 180-4.
//
// The engine hashes one complete input per call: the input is padded, cut
// into 64-byte blocks, and every block is expanded into a message schedule,
// compressed and added into the running state. Calls share no mutable state
// and may run concurrently.
package sha256

import "encoding/hex"

// Digest represents a 32-byte SHA-256 digest.
type Digest [Size]byte

// initState returns the initial hash values.
func initState() State {
	return State{init0, init1, init2, init3, init4, init5, init6, init7}
}

// Bytes returns a copy of the digest as a byte slice.
func (d Digest) Bytes() []byte {
	bs := make([]byte, Size)
	copy(bs, d[:])
	return bs
}

// String renders the digest as 64 lowercase hex characters.
// Formatting a Digest with %x encodes this text, not the raw bytes; use d[:].
func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

// digestOf renders s with word 0 first, each word big-endian.
func digestOf(s State) Digest {
	var d Digest
	for i, w := range s {
		EncodeWord(d[i*4:], w)
	}
	return d
}

// Sum256 returns the SHA-256 digest of data.
func Sum256(data []byte) (Digest, error) {
	padded, err := Pad(data)
	if err != nil {
		return Digest{}, err
	}
	s := initState()
	s.block(padded)
	return digestOf(s), nil
}

// Hash returns the SHA-256 digest of data as a lowercase hex string.
func Hash(data []byte) (string, error) {
	d, err := Sum256(data)
	if err != nil {
		return "", err
	}
	return d.String(), nil
}

// HashString returns the SHA-256 digest of the bytes of s as a lowercase hex string.
func HashString(s string) (string, error) {
	return Hash([]byte(s))
}

// DoubleSum256 returns sha256(sha256(data)).
func DoubleSum256(data []byte) (Digest, error) {
	d, err := Sum256(data)
	if err != nil {
		return Digest{}, err
	}
	return Sum256(d[:])
}

// DecodeStringToDigest decodes a hex string into a Digest,
// the length of the string must be 64.
func DecodeStringToDigest(str string) (Digest, error) {
	if len(str) != Size*2 {
		return Digest{}, ErrInvalidDigestLength
	}
	b, err := hex.DecodeString(str)
	if err != nil {
		return Digest{}, err
	}
	var d Digest
	copy(d[:], b)
	return d, nil
}
