package errors

import (
	"fmt"

	pkgerr "github.com/pkg/errors"
)

const (
	// command line err
	ErrUsage = 1101

	// input err
	ErrInputTooLarge  = 1201
	ErrInvalidDigest  = 1202
	ErrDigestMismatch = 1203
	ErrReadInput      = 1204

	// config err
	ErrConfig = 1301

	// other err
	ErrUnknown = 1701
)

var ErrCode = map[uint32]string{
	ErrUsage:          "Invalid usage",
	ErrInputTooLarge:  "Input too large to hash",
	ErrInvalidDigest:  "Argument must be a 64 character hexadecimal digest",
	ErrDigestMismatch: "Digest mismatch",
	ErrReadInput:      "Failed to read input",
	ErrConfig:         "Invalid config",
	ErrUnknown:        "Unknown error",
}

// CodedError attaches one of the codes above to an underlying error.
type CodedError struct {
	Code uint32
	Err  error
}

// New wraps err with code. A nil err is replaced by the code's message.
func New(code uint32, err error) *CodedError {
	if err == nil {
		err = pkgerr.New(ErrCode[code])
	}
	return &CodedError{Code: code, Err: err}
}

func (e *CodedError) Error() string {
	msg, ok := ErrCode[e.Code]
	if !ok {
		msg = ErrCode[ErrUnknown]
	}
	return fmt.Sprintf("%s (%d): %v", msg, e.Code, e.Err)
}

// Cause lets pkg/errors.Cause reach the wrapped error.
func (e *CodedError) Cause() error {
	return e.Err
}

// Code returns the code carried by err, or ErrUnknown.
func Code(err error) uint32 {
	for err != nil {
		if ce, ok := err.(*CodedError); ok {
			return ce.Code
		}
		cause, ok := err.(interface{ Cause() error })
		if !ok {
			break
		}
		err = cause.Cause()
	}
	return ErrUnknown
}

// ExitStatus maps err to a process exit status.
func ExitStatus(err error) int {
	switch {
	case err == nil:
		return 0
	case Code(err) == ErrUsage:
		return 2
	default:
		return 1
	}
}
