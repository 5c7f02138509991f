package wikimark

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var (
	// ErrInvalidUTF8 reports invalid UTF-8 input.
	ErrInvalidUTF8 = errors.New("invalid utf-8 input")
	// ErrBinaryInput reports input that appears to be binary.
	ErrBinaryInput = errors.New("binary input detected")
)

// Inputs shorter than binarySampleMin are only rejected for NUL bytes.
const (
	binarySampleMin    = 64
	binaryControlRatio = 50
)

// ValidateInput rejects input that is not UTF-8 text. Any NUL byte marks
// the input as binary, as does a control rune share of 2% or more once the
// input reaches binarySampleMin bytes.
func ValidateInput(src []byte) error {
	if !utf8.Valid(src) {
		return ErrInvalidUTF8
	}
	if bytes.IndexByte(src, 0) >= 0 {
		return ErrBinaryInput
	}
	if len(src) < binarySampleMin {
		return nil
	}
	control := 0
	for _, r := range string(src) {
		if isControlRune(r) {
			control++
		}
	}
	if control*binaryControlRatio >= len(src) {
		return ErrBinaryInput
	}
	return nil
}

// isControlRune reports C0 controls and DEL, except the whitespace that
// markup keeps.
func isControlRune(r rune) bool {
	switch r {
	case '\n', '\r', '\t', '\v', '\f':
		return false
	case 0x7F:
		return true
	}
	return r < 0x20
}

// stripControl removes control runes in place. src must be valid UTF-8.
func stripControl(src []byte) []byte {
	out := src[:0]
	for len(src) > 0 {
		r, size := utf8.DecodeRune(src)
		if !isControlRune(r) {
			out = append(out, src[:size]...)
		}
		src = src[size:]
	}
	return out
}
