package pbkdf2

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

func TestPBKDF2SHA1(t *testing.T) {
	password := []byte("my_password")
	salt := decodeHex(t, "b54bc5611be6de9720b8e9165de2c0f2")

	got := SHA1(password, salt, 4000, 160/8)
	require.Equal(t, "85909a5b4fa1b904d2e7c48661498b9773ce2503", hex.EncodeToString(got))
}

func TestPBKDF2SHA1ShortOutput(t *testing.T) {
	password := []byte("plnlrtfpijpuhqylxbgqiiyipieyxvfsavzgxbbcfusqkozwpngsyejqlmjsytrmd")
	salt := decodeHex(t, "a009c1a485912c6ae630d3e744240b04")

	got := SHA1(password, salt, 1000, 128/8)
	require.Equal(t, "17eb4014c8c461c300e9b61518b9a18b", hex.EncodeToString(got))
}

func TestPBKDF2SHA1LongInputs(t *testing.T) {
	password := []byte("this test should be longer than one block and a bit longer than 2 blocks. This means it must be 3 or more blocks, how about that! Well this last bit of text is just filling for space :)")
	salt := decodeHex(t, "a009c1a485912c6ae630d3e744240b04a009c1a485912c6ae630d3e744240b04a009c1a485912c6ae630d3e744240b04a009c1a485912c6ae630d3e744240b04a009c1a485912c6ae630d3e744240b04a009c1a485912c6ae630d3e744240b04")

	got := SHA1(password, salt, 20000, 160/8)
	require.Equal(t, "57514ed7177a1825d4629c12132623b2ba456aa6", hex.EncodeToString(got))
}

func TestPBKDF2MultiBlockOutputUsesCorrectBlockIndex(t *testing.T) {
	password := []byte("password")
	salt := []byte("salt")

	got := SHA256(password, salt, 1, 64)
	require.Len(t, got, 64)
	require.Equal(t, "120fb6cffcf8b32c43e7225256c4f837a86548c92ccc35480805987cb70be17b4dbf3a2f3dad3377264bb7b8e8330d4efc7451418617dabef683735361cdc18c", hex.EncodeToString(got))

	second := SHA256(password, salt, 1, 32)
	require.Equal(t, second, got[:32])
}
