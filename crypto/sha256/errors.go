package sha256

import "errors"

var (
	// ErrInputTooLarge indicates that the bit-length of the input does not fit in 64 bits.
	ErrInputTooLarge = errors.New("input too large for sha256")

	// ErrBlockSize indicates that a block handed to Expand is not exactly BlockSize bytes.
	ErrBlockSize = errors.New("invalid block size")

	// ErrInvalidDigestLength indicates the length of a digest string is invalid.
	ErrInvalidDigestLength = errors.New("invalid length for digest")
)
