package blowfish

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestKnownVectorAllZero(t *testing.T) {
	key := decodeHex(t, "0000000000000000")
	pt := decodeHex(t, "0000000000000000")

	k, err := NewKey(key)
	require.NoError(t, err)
	c := New(k)

	got := make([]byte, BlockSize)
	c.Encrypt(got, pt)
	require.Equal(t, "4ef997456198dd78", hex.EncodeToString(got))

	back := make([]byte, BlockSize)
	c.Decrypt(back, got)
	require.Equal(t, pt, back)
}

func TestKnownVectorAllOnes(t *testing.T) {
	key := decodeHex(t, "ffffffffffffffff")
	pt := decodeHex(t, "ffffffffffffffff")

	k, err := NewKey(key)
	require.NoError(t, err)
	c := New(k)

	got := make([]byte, BlockSize)
	c.Encrypt(got, pt)
	require.Equal(t, "51866fd5b85ecb8a", hex.EncodeToString(got))

	back := make([]byte, BlockSize)
	c.Decrypt(back, got)
	require.Equal(t, pt, back)
}

func TestRejectsShortKey(t *testing.T) {
	_, err := NewKey(make([]byte, 3))
	require.Error(t, err)
}

func TestRejectsLongKey(t *testing.T) {
	_, err := NewKey(make([]byte, 57))
	require.Error(t, err)
}

func TestRejectsNonMultipleOfFourKey(t *testing.T) {
	_, err := NewKey(make([]byte, 6))
	require.Error(t, err)
}

func TestRoundTripVariableKeyLengths(t *testing.T) {
	for _, n := range []int{4, 8, 16, 32, 56} {
		n := n
		key := make([]byte, n)
		for i := range key {
			key[i] = byte(i*3 + 1)
		}

		k, err := NewKey(key)
		require.NoError(t, err)
		c := New(k)

		pt := []byte{0x01, 0x23, 0x45, 0x67, 0x89, 0xab, 0xcd, 0xef}
		ct := make([]byte, BlockSize)
		c.Encrypt(ct, pt)
		require.NotEqual(t, pt, ct)

		back := make([]byte, BlockSize)
		c.Decrypt(back, ct)
		require.Equal(t, pt, back)
	}
}
