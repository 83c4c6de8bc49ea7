package encoding

// BitReader reads an MSB-first bit string with a sequential cursor. It is
// bounded by an explicit bit length rather than the byte slice length, so
// zero bits that merely fill out the final byte are never readable as data.
type BitReader struct {
	data   []byte
	bitPos int
	bitLen int
}

// NewBitReader creates a reader over the first bitLen bits of data.
// bitLen must not exceed 8*len(data).
func NewBitReader(data []byte, bitLen int) *BitReader {
	if bitLen < 0 || bitLen > 8*len(data) {
		panic("bit length out of range")
	}

	return &BitReader{
		data:   data,
		bitLen: bitLen,
	}
}

// ReadBits reads numBits bits from the cursor position as an unsigned,
// right-aligned value. It returns false without advancing the cursor when
// fewer than numBits bits remain.
func (r *BitReader) ReadBits(numBits int) (uint64, bool) {
	if numBits < 0 || numBits > 64 {
		panic("numBits out of range")
	}
	if r.bitPos+numBits > r.bitLen {
		return 0, false
	}

	var result uint64
	for i := 0; i < numBits; i++ {
		idx := r.bitPos + i
		result <<= 1
		if r.data[idx>>3]&(0x80>>(idx&7)) != 0 {
			result |= 1
		}
	}

	r.bitPos += numBits

	return result, true
}

// ReadBit reads a single bit.
func (r *BitReader) ReadBit() (uint64, bool) {
	return r.ReadBits(1)
}

// Remaining returns the number of unread bits.
func (r *BitReader) Remaining() int {
	return r.bitLen - r.bitPos
}
