package section

import (
	"fmt"

	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
)

// widthStep is one row of the width ladder: sequences whose maximum does not
// exceed maxValue use the given per-element width, identified in the header
// by code. Rows are ordered by ascending maxValue and scanned linearly, so
// the ladder and the header code mapping stay co-located.
type widthStep struct {
	maxValue uint16
	width    format.Width
	code     uint64
}

var widthTable = []widthStep{
	{maxValue: 9, width: format.Width4, code: 0b00},
	{maxValue: 99, width: format.Width7, code: 0b01},
	{maxValue: MaxValue, width: format.Width9, code: 0b10},
}

// SelectWidth returns the minimal width from the ladder sufficient for every
// element of values. An empty sequence has no maximum and gets the smallest
// width; the count field alone drives decoding in that case.
func SelectWidth(values []uint16) format.Width {
	if len(values) == 0 {
		return widthTable[0].width
	}

	maxVal := values[0]
	for _, v := range values[1:] {
		if v > maxVal {
			maxVal = v
		}
	}

	for _, step := range widthTable {
		if maxVal <= step.maxValue {
			return step.width
		}
	}

	// Values are validated against MaxValue before width selection, so the
	// last row always matches.
	return widthTable[len(widthTable)-1].width
}

// WidthCode returns the 2-bit header code for a ladder width.
func WidthCode(w format.Width) uint64 {
	for _, step := range widthTable {
		if step.width == w {
			return step.code
		}
	}

	panic(fmt.Sprintf("width %d is not on the ladder", w))
}

// WidthFromCode maps a parsed 2-bit header code back to its width. The
// reserved code 0b11 yields errs.ErrInvalidWidthCode.
func WidthFromCode(code uint64) (format.Width, error) {
	for _, step := range widthTable {
		if step.code == code {
			return step.width, nil
		}
	}

	return 0, fmt.Errorf("%w: %#02b", errs.ErrInvalidWidthCode, code)
}
