package symbol

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arloliu/seqpack/errs"
)

func TestAlphabet(t *testing.T) {
	require.Len(t, Alphabet, 64)
	require.Equal(t, byte('A'), Alphabet[0])
	require.Equal(t, byte('/'), Alphabet[63])

	// Every symbol maps back to its own index.
	for i := 0; i < len(Alphabet); i++ {
		require.Equal(t, int8(i), reverse[Alphabet[i]])
	}
}

func TestPack(t *testing.T) {
	t.Run("Empty input", func(t *testing.T) {
		require.Equal(t, "", Pack(nil, 0))
	})

	t.Run("Known groups", func(t *testing.T) {
		// 000000 111111 -> index 0 ('A') and index 63 ('/')
		require.Equal(t, "A/", Pack([]byte{0b0000_0011, 0b1111_0000}, 12))
	})

	t.Run("Rejects unaligned bit length", func(t *testing.T) {
		require.Panics(t, func() { Pack([]byte{0}, 5) })
	})
}

func TestUnpack(t *testing.T) {
	t.Run("Known symbols", func(t *testing.T) {
		data, bitLen, err := Unpack("A/")

		require.NoError(t, err)
		require.Equal(t, 12, bitLen)
		require.Equal(t, []byte{0b0000_0011, 0b1111_0000}, data)
	})

	t.Run("Invalid character", func(t *testing.T) {
		_, _, err := Unpack("AB#C")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrInvalidCharacter)
		require.Contains(t, err.Error(), "'#'")
		require.Contains(t, err.Error(), "position 2")
	})

	t.Run("Empty input", func(t *testing.T) {
		data, bitLen, err := Unpack("")

		require.NoError(t, err)
		require.Equal(t, 0, bitLen)
		require.Empty(t, data)
	})
}

func TestPackUnpack_RoundTrip(t *testing.T) {
	data := []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x12, 0x34}
	bitLen := 8 * len(data) // 48 bits, a multiple of 6

	encoded := Pack(data, bitLen)
	require.Len(t, encoded, bitLen/GroupBits)
	for _, c := range encoded {
		require.True(t, strings.ContainsRune(Alphabet, c))
	}

	decoded, decodedBits, err := Unpack(encoded)
	require.NoError(t, err)
	require.Equal(t, bitLen, decodedBits)
	require.Equal(t, data, decoded)
}
