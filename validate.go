package xdf

import (
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// Comment text legitimately contains tabs and CRLF pairs; a NUL byte or a
// dense sprinkling of other control characters means the caller fed a blob.
// The density check only kicks in once the sample is big enough to judge.
const binarySampleFloor = 64

// ValidateInput returns an error if the input is not valid UTF-8 or
// appears binary. Entry points run it before parsing so a stray blob fed
// as a documentation comment fails fast instead of producing XML noise.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	control := 0
	for _, b := range src {
		if b == 0x00 {
			return ErrBinaryInput
		}
		if controlByte(b) {
			control++
		}
	}
	// More than 2% control characters in a judgeable sample.
	if len(src) >= binarySampleFloor && control*50 > len(src) {
		return ErrBinaryInput
	}
	return nil
}

func controlByte(b byte) bool {
	switch b {
	case '\t', '\n', '\v', '\f', '\r':
		return false
	}
	return b < 0x20 || b == 0x7F
}
