package sha256

import "github.com/pkg/errors"

// Schedule is the message schedule of one block.
type Schedule [ScheduleSize]uint32

func sigma0(x uint32) uint32 {
	return rotr(x, 7) ^ rotr(x, 18) ^ (x >> 3)
}

func sigma1(x uint32) uint32 {
	return rotr(x, 17) ^ rotr(x, 19) ^ (x >> 10)
}

// Expand derives the 64-word message schedule of block. The first 16 words
// are the big-endian words of block, the rest are mixed from earlier words.
//
// block must be exactly BlockSize bytes long; anything else is a defect in
// the caller's blocking logic and Expand panics.
func Expand(block []byte) Schedule {
	if len(block) != BlockSize {
		panic(errors.Wrapf(ErrBlockSize, "expand: expected %d bytes, found %d", BlockSize, len(block)))
	}

	var w Schedule
	for i := 0; i < 16; i++ {
		w[i] = DecodeWord(block[i*4:])
	}
	for i := 16; i < ScheduleSize; i++ {
		w[i] = w[i-16] + sigma0(w[i-15]) + w[i-7] + sigma1(w[i-2])
	}
	return w
}
