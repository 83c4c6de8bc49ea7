package codec

import (
	"fmt"

	"github.com/arloliu/seqpack/encoding"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/section"
	"github.com/arloliu/seqpack/symbol"
)

// Decode reverses Encode: it expands the symbol string into its bit string,
// parses the header, and reads back exactly count elements of the recovered
// width. Trailing padding bits are ignored, never interpreted as data.
//
// Failure kinds, all discriminable with errors.Is:
//   - errs.ErrInvalidCharacter: a character outside the alphabet
//   - errs.ErrInvalidWidthCode: the reserved header width code 0b11
//   - errs.ErrTruncated: input ends before the declared elements
func Decode(encoded string) ([]uint16, error) {
	data, bitLen, err := symbol.Unpack(encoded)
	if err != nil {
		return nil, err
	}

	r := encoding.NewBitReader(data, bitLen)

	hdr, err := section.ParseHeader(r)
	if err != nil {
		return nil, err
	}

	widthBits := hdr.Width.Bits()
	values := make([]uint16, 0, hdr.Count)
	for i := 0; i < hdr.Count; i++ {
		v, ok := r.ReadBits(widthBits)
		if !ok {
			return nil, fmt.Errorf("%w: %d of %d elements present", errs.ErrTruncated, i, hdr.Count)
		}
		values = append(values, uint16(v))
	}

	return values, nil
}
