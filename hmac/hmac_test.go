package hmac

import (
	"encoding/hex"
	"hash"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aidos9/vox-cryptography/sha256"
)

func TestHMACMD5(t *testing.T) {
	got := MD5([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, "80070713463e7749b90c2dc24911e275", hex.EncodeToString(got[:]))
}

func TestHMACSHA1(t *testing.T) {
	got := SHA1([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, "de7c9b85b8b78aa6bc8a7a36f70a90701c9db4d9", hex.EncodeToString(got[:]))
}

func TestHMACSHA256(t *testing.T) {
	got := SHA256([]byte("key"), []byte("The quick brown fox jumps over the lazy dog"))
	require.Equal(t, "f7bc83f430538424b13298e6aa6fb143ef4d59a14946175997479dbc2d1a3cd8", hex.EncodeToString(got[:]))
}

func TestHMACSHA256LargeKey(t *testing.T) {
	key := []byte("The quick brown fox jumps over the lazy dogThe quick brown fox jumps over the lazy dog")
	got := SHA256(key, []byte("message"))
	require.Equal(t, "5597b93a2843078cbb0c920ae41dfe20f1685e10c67e423c11ab91adfc319d12", hex.EncodeToString(got[:]))
}

func TestHMACStreamingMatchesOneShot(t *testing.T) {
	key := []byte("key")
	msg := []byte("The quick brown fox jumps over the lazy dog")

	one := SHA256(key, msg)

	h := New(func() hash.Hash { return sha256.New() }, key)
	h.Write(msg[:10])
	h.Write(msg[10:])
	require.Equal(t, one[:], h.Sum(nil))
}
