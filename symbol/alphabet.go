// Package symbol maps between a padded bit string and the codec's printable
// output: each 6-bit group becomes one character of a fixed 64-symbol
// alphabet.
package symbol

import (
	"fmt"
	"strings"

	"github.com/arloliu/seqpack/errs"
)

// Alphabet is the fixed 64-symbol output alphabet. The index of a character
// is the unsigned value of the 6-bit group it represents; the mapping is
// order- and case-sensitive.
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"

// GroupBits is the number of bits represented by one alphabet symbol.
const GroupBits = 6

// reverse maps a byte to its alphabet index, or -1 when the byte is not an
// alphabet symbol.
var reverse [256]int8

func init() {
	for i := range reverse {
		reverse[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		reverse[Alphabet[i]] = int8(i)
	}
}

// Pack maps the first bitLen bits of data (MSB-first) to a symbol string.
// bitLen must be a multiple of GroupBits and must not exceed 8*len(data);
// the bit writer guarantees both.
func Pack(data []byte, bitLen int) string {
	if bitLen%GroupBits != 0 {
		panic("bit length not a multiple of the symbol group size")
	}
	if bitLen > 8*len(data) {
		panic("bit length exceeds data")
	}

	var sb strings.Builder
	sb.Grow(bitLen / GroupBits)

	for pos := 0; pos < bitLen; pos += GroupBits {
		var group byte
		for i := 0; i < GroupBits; i++ {
			idx := pos + i
			group <<= 1
			if data[idx>>3]&(0x80>>(idx&7)) != 0 {
				group |= 1
			}
		}
		sb.WriteByte(Alphabet[group])
	}

	return sb.String()
}

// Unpack expands a symbol string back into the padded bit string it encodes.
// It returns the bit data (MSB-first, zero-filled final byte) and the bit
// length, which is always 6 bits per input character.
//
// Returns errs.ErrInvalidCharacter, identifying the offending character, if
// the input contains a byte outside the alphabet.
func Unpack(encoded string) ([]byte, int, error) {
	bitLen := len(encoded) * GroupBits
	data := make([]byte, (bitLen+7)/8)

	for i := 0; i < len(encoded); i++ {
		c := encoded[i]
		index := reverse[c]
		if index < 0 {
			return nil, 0, fmt.Errorf("%w: %q at position %d", errs.ErrInvalidCharacter, c, i)
		}

		pos := i * GroupBits
		for b := 0; b < GroupBits; b++ {
			if index&(1<<(GroupBits-1-b)) != 0 {
				idx := pos + b
				data[idx>>3] |= 0x80 >> (idx & 7)
			}
		}
	}

	return data, bitLen, nil
}
