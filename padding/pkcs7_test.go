package padding

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func sequence(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i)
	}
	return b
}

func TestPKCS7PartialBlock(t *testing.T) {
	input := sequence(47)

	block, extra := PKCS7{}.PadBlock(input, 64)
	require.Nil(t, extra)
	require.Len(t, block, 64)
	require.Equal(t, input, block[:47])
	for i := 47; i < 64; i++ {
		require.Equal(t, byte(17), block[i])
	}
}

func TestPKCS7OneByteShort(t *testing.T) {
	input := sequence(63)

	block, extra := PKCS7{}.PadBlock(input, 64)
	require.Nil(t, extra)
	require.Equal(t, byte(1), block[63])
}

func TestPKCS7ExactBlockGetsExtraPadBlock(t *testing.T) {
	input := sequence(64)

	block, extra := PKCS7{}.PadBlock(input, 64)
	require.Equal(t, input, block)
	require.NotNil(t, extra)
	require.Len(t, extra, 64)
	for _, b := range extra {
		require.Equal(t, byte(64), b)
	}
}

func TestPKCS7ValidateRoundTrip(t *testing.T) {
	input := sequence(47)
	block, _ := PKCS7{}.PadBlock(input, 64)

	n, ok := PKCS7{}.ValidatePaddedBlock(block)
	require.True(t, ok)
	require.Equal(t, 17, n)
	require.Equal(t, input, block[:len(block)-n])
}

func TestPKCS7RejectsCorruptPadding(t *testing.T) {
	input := sequence(47)
	block, _ := PKCS7{}.PadBlock(input, 64)
	block[60] ^= 0xff

	_, ok := PKCS7{}.ValidatePaddedBlock(block)
	require.False(t, ok)
}

func TestPKCS7RejectsEmptyBlock(t *testing.T) {
	_, ok := PKCS7{}.ValidatePaddedBlock(nil)
	require.False(t, ok)
}
