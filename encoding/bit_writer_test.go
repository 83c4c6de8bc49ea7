package encoding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBitWriter_WriteBits(t *testing.T) {
	t.Run("Single bits are MSB first", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(1, 1)
		w.WriteBits(0, 1)
		w.WriteBits(1, 1)

		require.Equal(t, 3, w.BitLen())
		require.Equal(t, []byte{0b1010_0000}, w.Bytes())
	})

	t.Run("Multi-bit field", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0b101101, 6)

		require.Equal(t, 6, w.BitLen())
		require.Equal(t, []byte{0b1011_0100}, w.Bytes())
	})

	t.Run("Bits above numBits are masked", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0xFF, 4) // only the low 4 bits count

		require.Equal(t, []byte{0b1111_0000}, w.Bytes())
	})

	t.Run("Fields spanning byte boundaries", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0b1, 1)
		w.WriteBits(0b0000_0011, 9)

		require.Equal(t, 10, w.BitLen())
		require.Equal(t, []byte{0b1000_0000, 0b1100_0000}, w.Bytes())
	})

	t.Run("Split across the 64-bit buffer boundary", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		// Fill 60 bits, then write a 9-bit value straddling the flush point.
		for i := 0; i < 10; i++ {
			w.WriteBits(0b111111, 6)
		}
		w.WriteBits(0b1_0000_0001, 9)

		require.Equal(t, 69, w.BitLen())

		data := w.Bytes()
		require.Len(t, data, 9)

		r := NewBitReader(data, 69)
		head, ok := r.ReadBits(60)
		require.True(t, ok)
		require.Equal(t, uint64(1)<<60-1, head)

		tail, ok := r.ReadBits(9)
		require.True(t, ok)
		require.Equal(t, uint64(0b1_0000_0001), tail)
	})

	t.Run("Zero bits is a no-op", func(t *testing.T) {
		w := NewBitWriter()
		defer w.Finish()

		w.WriteBits(0xFFFF, 0)

		require.Equal(t, 0, w.BitLen())
		require.Empty(t, w.Bytes())
	})
}

func TestBitWriter_PadTo(t *testing.T) {
	tests := []struct {
		name      string
		writeBits int
		padded    int
	}{
		{"empty stays empty", 0, 0},
		{"one bit pads to six", 1, 6},
		{"five bits pad to six", 5, 6},
		{"six bits stay six", 6, 6},
		{"seven bits pad to twelve", 7, 12},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewBitWriter()
			defer w.Finish()

			w.WriteBits(0, tt.writeBits)
			w.PadTo(6)

			require.Equal(t, tt.padded, w.BitLen())
		})
	}
}

func TestBitWriter_FinishPanics(t *testing.T) {
	w := NewBitWriter()
	w.Finish()

	require.Panics(t, func() { w.WriteBits(1, 1) })
	require.Panics(t, func() { w.Bytes() })
	require.NotPanics(t, func() { w.Finish() })
}

func BenchmarkBitWriter(b *testing.B) {
	for n := 0; n < b.N; n++ {
		w := NewBitWriter()
		for i := 0; i < 1023; i++ {
			w.WriteBits(0b1_0010_1100, 9)
		}
		w.PadTo(6)
		_ = w.Bytes()
		w.Finish()
	}
}
