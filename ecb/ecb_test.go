package ecb

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aidos9/vox-cryptography/aes"
	"github.com/aidos9/vox-cryptography/padding"
)

func decodeHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	require.NoError(t, err)
	return b
}

func TestECBAES256ExactBlockAddsPaddingBlock(t *testing.T) {
	key := decodeHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	pt := decodeHex(t, "00112233445566778899aabbccddeeff")

	k, err := aes.NewKey(key)
	require.NoError(t, err)
	cipher := aes.New(k)

	enc := NewEncrypter(cipher)
	enc.Update(pt)
	got := enc.Finish(padding.PKCS7{})

	expected := []byte{
		0x8e, 0xa2, 0xb7, 0xca, 0x51, 0x67, 0x45, 0xbf, 0xea, 0xfc, 0x49, 0x90, 0x4b, 0x49,
		0x60, 0x89,
		0x9f, 0x3b, 0x75, 0x04, 0x92, 0x6f, 0x8b, 0xd3, 0x6e, 0x31, 0x18, 0xe9, 0x03, 0xa4,
		0xcd, 0x4a,
	}

	require.Equal(t, expected, got)
}

func TestECBAES256EncryptDecryptRoundTrip(t *testing.T) {
	key := decodeHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	pt := decodeHex(t, "00112233445566778899aabbccddeeff11")

	k, err := aes.NewKey(key)
	require.NoError(t, err)

	encCipher := aes.New(k)
	enc := NewEncrypter(encCipher)
	enc.Update(pt)
	ciphertext := enc.Finish(padding.PKCS7{})

	decCipher := aes.New(k)
	plaintext, err := Decrypt(decCipher, padding.PKCS7{}, ciphertext)
	require.NoError(t, err)
	require.Equal(t, pt, plaintext)
}

func TestECBRejectsInputNotMultipleOfBlockSize(t *testing.T) {
	key := decodeHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	k, err := aes.NewKey(key)
	require.NoError(t, err)
	cipher := aes.New(k)

	_, err = Decrypt(cipher, padding.PKCS7{}, make([]byte, 17))
	require.Error(t, err)
}

func TestECBDecryptRejectsCorruptPadding(t *testing.T) {
	key := decodeHex(t, "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f")
	pt := decodeHex(t, "0011223344")

	k, err := aes.NewKey(key)
	require.NoError(t, err)

	encCipher := aes.New(k)
	enc := NewEncrypter(encCipher)
	enc.Update(pt)
	ciphertext := enc.Finish(padding.PKCS7{})

	decCipher := aes.New(k)
	raw := make([]byte, len(ciphertext))
	copy(raw, ciphertext)
	raw[0] ^= 0xff

	_, err = Decrypt(decCipher, padding.PKCS7{}, raw)
	require.Error(t, err)
}
