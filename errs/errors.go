// Package errs defines the sentinel error values returned by the seqpack
// codec. Callers discriminate failure kinds with errors.Is; detection sites
// wrap these sentinels with fmt.Errorf("%w: ...") to attach the offending
// value or character.
package errs

import "errors"

var (
	// ErrValueOutOfRange indicates an input element lies outside the
	// supported [1, 300] range. The whole encode is rejected before any
	// bits are written; there is no partial output.
	ErrValueOutOfRange = errors.New("value out of range")

	// ErrTooManyValues indicates the sequence length exceeds the 10-bit
	// count field ceiling of 1023 elements.
	ErrTooManyValues = errors.New("too many values for count field")

	// ErrInvalidCharacter indicates a decode input contains a character
	// outside the 64-symbol alphabet.
	ErrInvalidCharacter = errors.New("invalid symbol character")

	// ErrInvalidWidthCode indicates the 2-bit width code parsed from a
	// header is the reserved value 0b11. The encoder never produces it;
	// it is reachable only from hand-crafted or corrupted input.
	ErrInvalidWidthCode = errors.New("invalid width code")

	// ErrTruncated indicates the decode input ended before the header or
	// the declared count of elements could be read.
	ErrTruncated = errors.New("truncated input")
)
