// Package codec implements the seqpack encode and decode pipelines on top of
// the section, encoding and symbol packages. Both operations are pure: each
// call owns its own buffers, so concurrent callers need no coordination.
package codec

import (
	"fmt"

	"github.com/arloliu/seqpack/encoding"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/section"
	"github.com/arloliu/seqpack/symbol"
)

// Encode packs values into a symbol string.
//
// Every element must lie in [section.MinValue, section.MaxValue] and the
// sequence may hold at most section.MaxCount elements; violations reject the
// whole input with errs.ErrValueOutOfRange or errs.ErrTooManyValues before
// any bits are written. An empty sequence is valid and encodes to a
// header-only string.
//
// The output length is always ceil(totalBits/6) characters, each drawn from
// symbol.Alphabet.
func Encode(values []uint16) (string, error) {
	for i, v := range values {
		if v < section.MinValue || v > section.MaxValue {
			return "", fmt.Errorf("%w: value %d at index %d outside [%d, %d]",
				errs.ErrValueOutOfRange, v, i, section.MinValue, section.MaxValue)
		}
	}

	hdr := section.Header{
		Count: len(values),
		Width: section.SelectWidth(values),
	}

	w := encoding.NewBitWriter()
	defer w.Finish()

	if err := hdr.Write(w); err != nil {
		return "", err
	}

	widthBits := hdr.Width.Bits()
	for _, v := range values {
		w.WriteBits(uint64(v), widthBits)
	}

	w.PadTo(symbol.GroupBits)

	return symbol.Pack(w.Bytes(), w.BitLen()), nil
}
