// Package section defines the header layout of the seqpack format: the
// length-flag, the 6- or 10-bit count field, the 2-bit width code, and the
// width ladder that ties element widths to header codes.
package section

import (
	"fmt"

	"github.com/arloliu/seqpack/encoding"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
)

// Header is the variable-length field group prefixed to the element bits.
//
// On the wire it is 9 or 13 bits:
//
//	1 bit   length-flag   0 => 6-bit count field, 1 => 10-bit count field
//	6|10    count         element count, unsigned
//	2 bits  width-code    00 => 4 bits, 01 => 7 bits, 10 => 9 bits
//
// The count and width fully determine how many element bits follow; trailing
// padding carries no data and is never read back.
type Header struct {
	Count int
	Width format.Width
}

// BitLen returns the encoded size of the header in bits.
func (h Header) BitLen() int {
	if h.Count <= MaxShortCount {
		return CountFlagBits + ShortCountBits + WidthCodeBits
	}

	return CountFlagBits + LongCountBits + WidthCodeBits
}

// Write emits the header fields to the bit writer. It fails with
// errs.ErrTooManyValues when the count exceeds the 10-bit field ceiling;
// nothing is written in that case.
func (h Header) Write(w *encoding.BitWriter) error {
	if h.Count < 0 || h.Count > MaxCount {
		return fmt.Errorf("%w: %d elements, count field holds at most %d", errs.ErrTooManyValues, h.Count, MaxCount)
	}

	if h.Count <= MaxShortCount {
		w.WriteBits(0, CountFlagBits)
		w.WriteBits(uint64(h.Count), ShortCountBits)
	} else {
		w.WriteBits(1, CountFlagBits)
		w.WriteBits(uint64(h.Count), LongCountBits)
	}

	w.WriteBits(WidthCode(h.Width), WidthCodeBits)

	return nil
}

// ParseHeader reads a header from the bit reader, leaving the cursor at the
// first element bit.
//
// Returns errs.ErrTruncated if the input ends inside the header, or
// errs.ErrInvalidWidthCode for the reserved width code.
func ParseHeader(r *encoding.BitReader) (Header, error) {
	flag, ok := r.ReadBit()
	if !ok {
		return Header{}, fmt.Errorf("%w: missing length flag", errs.ErrTruncated)
	}

	countBits := ShortCountBits
	if flag == 1 {
		countBits = LongCountBits
	}

	count, ok := r.ReadBits(countBits)
	if !ok {
		return Header{}, fmt.Errorf("%w: missing count field", errs.ErrTruncated)
	}

	code, ok := r.ReadBits(WidthCodeBits)
	if !ok {
		return Header{}, fmt.Errorf("%w: missing width code", errs.ErrTruncated)
	}

	width, err := WidthFromCode(code)
	if err != nil {
		return Header{}, err
	}

	return Header{Count: int(count), Width: width}, nil
}
