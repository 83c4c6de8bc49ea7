package encoding

import (
	"github.com/arloliu/seqpack/internal/pool"
)

// BitWriter accumulates an MSB-first bit string: the first bit written
// becomes the most significant bit of the first output byte.
//
// Bits are collected in a uint64 buffer and flushed to a pooled byte buffer
// when it fills up. The writer tracks the exact number of bits written so
// callers can distinguish data bits from the zero bits that fill out the
// final byte.
type BitWriter struct {
	bitBuf   uint64 // accumulates bits before flushing to the byte buffer
	bitCount int    // number of valid bits in bitBuf
	bitLen   int    // total bits written since creation

	buf *pool.ByteBuffer
}

// NewBitWriter creates a bit writer backed by a pooled byte buffer.
func NewBitWriter() *BitWriter {
	return &BitWriter{
		buf: pool.GetBitBuffer(),
	}
}

// WriteBits appends the numBits least significant bits of value, most
// significant bit first. numBits must be in [0, 64]; bits of value above
// numBits are ignored.
func (w *BitWriter) WriteBits(value uint64, numBits int) {
	if w.buf == nil {
		panic("bit writer already finished")
	}
	if numBits < 0 || numBits > 64 {
		panic("numBits out of range")
	}
	if numBits == 0 {
		return
	}

	if numBits < 64 {
		value &= (1 << numBits) - 1
	}

	w.bitLen += numBits

	available := 64 - w.bitCount
	if numBits <= available {
		w.bitBuf = (w.bitBuf << numBits) | value
		w.bitCount += numBits
		if w.bitCount == 64 {
			w.flushBits()
		}

		return
	}

	// Split across the buffer boundary: high bits fill the current buffer,
	// low bits start the next one.
	highBits := numBits - available
	w.bitBuf = (w.bitBuf << available) | (value >> highBits)
	w.bitCount = 64
	w.flushBits()

	w.bitBuf = value & ((1 << highBits) - 1)
	w.bitCount = highBits
}

// PadTo appends zero bits until the total bit length is a multiple of
// boundary. A bit length already on the boundary (including zero) is left
// unchanged, so the padding length is always in [0, boundary-1].
func (w *BitWriter) PadTo(boundary int) {
	if boundary <= 1 {
		return
	}

	pad := (boundary - w.bitLen%boundary) % boundary
	for pad > 0 {
		n := pad
		if n > 64 {
			n = 64
		}
		w.WriteBits(0, n)
		pad -= n
	}
}

// BitLen returns the total number of bits written, padding included.
func (w *BitWriter) BitLen() int {
	return w.bitLen
}

// Bytes returns the accumulated bits as a byte slice, flushing any pending
// bits first. Unused low-order bits of the final byte are zero. The returned
// slice references the internal buffer and is valid until Finish is called.
func (w *BitWriter) Bytes() []byte {
	if w.buf == nil {
		panic("bit writer already finished")
	}

	if w.bitCount > 0 {
		w.flushBits()
	}

	return w.buf.Bytes()
}

// Finish returns the internal buffer to the pool. The writer becomes
// unusable; callers must copy or consume the Bytes result before calling
// Finish.
func (w *BitWriter) Finish() {
	if w.buf == nil {
		return
	}

	pool.PutBitBuffer(w.buf)
	w.buf = nil
}

// flushBits writes the pending bit buffer to the byte buffer, left-aligned
// so the first bit written lands in the most significant position.
func (w *BitWriter) flushBits() {
	if w.bitCount == 0 {
		return
	}

	numBytes := (w.bitCount + 7) / 8
	aligned := w.bitBuf << (64 - w.bitCount)

	w.buf.Grow(numBytes)
	for i := 0; i < numBytes; i++ {
		shift := 56 - (i * 8)
		_ = w.buf.WriteByte(byte(aligned >> shift))
	}

	w.bitBuf = 0
	w.bitCount = 0
}
