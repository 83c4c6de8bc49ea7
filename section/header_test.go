package section

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqpack/encoding"
	"github.com/arloliu/seqpack/errs"
	"github.com/arloliu/seqpack/format"
)

func roundTripHeader(t *testing.T, hdr Header) Header {
	t.Helper()

	w := encoding.NewBitWriter()
	defer w.Finish()

	require.NoError(t, hdr.Write(w))
	require.Equal(t, hdr.BitLen(), w.BitLen())

	r := encoding.NewBitReader(w.Bytes(), w.BitLen())
	parsed, err := ParseHeader(r)
	require.NoError(t, err)

	return parsed
}

func TestHeader_RoundTrip(t *testing.T) {
	tests := []struct {
		name string
		hdr  Header
	}{
		{"empty sequence", Header{Count: 0, Width: format.Width4}},
		{"small count", Header{Count: 3, Width: format.Width4}},
		{"short field ceiling", Header{Count: MaxShortCount, Width: format.Width7}},
		{"first long count", Header{Count: MaxShortCount + 1, Width: format.Width9}},
		{"long field ceiling", Header{Count: MaxCount, Width: format.Width9}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.hdr, roundTripHeader(t, tt.hdr))
		})
	}
}

func TestHeader_BitLen(t *testing.T) {
	short := Header{Count: MaxShortCount, Width: format.Width4}
	long := Header{Count: MaxShortCount + 1, Width: format.Width4}

	require.Equal(t, 9, short.BitLen())
	require.Equal(t, 13, long.BitLen())
}

func TestHeader_Write_TooManyValues(t *testing.T) {
	w := encoding.NewBitWriter()
	defer w.Finish()

	err := Header{Count: MaxCount + 1, Width: format.Width9}.Write(w)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrTooManyValues)
	require.Equal(t, 0, w.BitLen(), "nothing may be written on rejection")
}

func TestParseHeader_InvalidWidthCode(t *testing.T) {
	w := encoding.NewBitWriter()
	defer w.Finish()

	w.WriteBits(0, CountFlagBits)
	w.WriteBits(0, ShortCountBits)
	w.WriteBits(0b11, WidthCodeBits)

	r := encoding.NewBitReader(w.Bytes(), w.BitLen())
	_, err := ParseHeader(r)

	require.Error(t, err)
	require.ErrorIs(t, err, errs.ErrInvalidWidthCode)
}

func TestParseHeader_Truncated(t *testing.T) {
	t.Run("Missing length flag", func(t *testing.T) {
		r := encoding.NewBitReader(nil, 0)
		_, err := ParseHeader(r)

		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Missing count field", func(t *testing.T) {
		w := encoding.NewBitWriter()
		defer w.Finish()
		w.WriteBits(1, CountFlagBits) // long count field announced, nothing follows

		r := encoding.NewBitReader(w.Bytes(), w.BitLen())
		_, err := ParseHeader(r)

		require.ErrorIs(t, err, errs.ErrTruncated)
	})

	t.Run("Missing width code", func(t *testing.T) {
		w := encoding.NewBitWriter()
		defer w.Finish()
		w.WriteBits(0, CountFlagBits)
		w.WriteBits(5, ShortCountBits)

		r := encoding.NewBitReader(w.Bytes(), w.BitLen())
		_, err := ParseHeader(r)

		require.ErrorIs(t, err, errs.ErrTruncated)
	})
}
