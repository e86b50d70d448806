package aes

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

// TestNISTVectorAES128 uses the FIPS-197 appendix worked example.
func TestNISTVectorAES128(t *testing.T) {
	key := decodeHex(t, "000102030405060708090a0b0c0d0e0f")
	plaintext := decodeHex(t, "00112233445566778899aabbccddeeff")
	want := decodeHex(t, "69c4e0d86a7b0430d8cdb78070b4c55a")

	k, err := NewKey(key)
	require.NoError(t, err)
	c := New(k)

	got := make([]byte, BlockSize)
	c.Encrypt(got, plaintext)
	require.Equal(t, want, got)

	back := make([]byte, BlockSize)
	c.Decrypt(back, got)
	require.Equal(t, plaintext, back)
}

func TestRejectsBadKeyLength(t *testing.T) {
	_, err := NewKey(make([]byte, 20))
	require.Error(t, err)
}

func TestAllVariantsRoundTrip(t *testing.T) {
	for _, n := range []int{16, 24, 32} {
		n := n
		key := make([]byte, n)
		for i := range key {
			key[i] = byte(i)
		}
		plaintext := make([]byte, BlockSize)
		for i := range plaintext {
			plaintext[i] = byte(i * 7)
		}

		k, err := NewKey(key)
		require.NoError(t, err)
		c := New(k)

		ciphertext := make([]byte, BlockSize)
		c.Encrypt(ciphertext, plaintext)
		require.NotEqual(t, plaintext, ciphertext)

		back := make([]byte, BlockSize)
		c.Decrypt(back, ciphertext)
		require.Equal(t, plaintext, back)
	}
}
