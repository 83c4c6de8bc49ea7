// Package seqpack provides a compact, reversible string encoding for
// sequences of small bounded integers.
//
// Seqpack packs an ordered sequence of integers in the range 1-300 into a
// minimal-length string over a fixed 64-symbol alphabet (A-Z, a-z, 0-9, +,
// /). A single per-sequence bit width is chosen from the ladder {4, 7, 9}
// based on the sequence maximum, a small variable-length header records the
// element count and the chosen width, and every element is stored with
// exactly that many bits. The resulting bit string is padded to a multiple
// of 6 bits and each 6-bit group becomes one output character.
//
// # Basic Usage
//
//	import "github.com/arloliu/seqpack"
//
//	encoded, err := seqpack.Encode([]uint16{1, 2, 3})
//	if err != nil {
//	    return err
//	}
//
//	values, err := seqpack.Decode(encoded)
//	if err != nil {
//	    return err
//	}
//	// values == []uint16{1, 2, 3}
//
// Decode(Encode(s)) returns the original sequence: same values, same order,
// same length. Both operations are pure and allocate only local state, so
// they are safe to call concurrently without coordination.
//
// # Errors
//
// Failures are sentinel errors from the errs package, discriminable with
// errors.Is: errs.ErrValueOutOfRange and errs.ErrTooManyValues on encode,
// errs.ErrInvalidCharacter, errs.ErrInvalidWidthCode and errs.ErrTruncated
// on decode.
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the codec
// package. The format itself is defined across section (header layout and
// width ladder), encoding (bit-level reader/writer) and symbol (the 64-symbol
// alphabet).
package seqpack

import (
	"github.com/arloliu/seqpack/codec"
	"github.com/arloliu/seqpack/section"
)

// MinValue and MaxValue bound the supported element range; MaxCount is the
// largest encodable sequence length.
const (
	MinValue = section.MinValue
	MaxValue = section.MaxValue
	MaxCount = section.MaxCount
)

// Encode packs values into a symbol string.
//
// Every element must lie in [MinValue, MaxValue] and the sequence may hold
// at most MaxCount elements. An empty (or nil) sequence is valid and encodes
// to a short header-only string.
func Encode(values []uint16) (string, error) {
	return codec.Encode(values)
}

// Decode reverses Encode, returning the original sequence in its original
// order and length.
func Decode(encoded string) ([]uint16, error) {
	return codec.Decode(encoded)
}
