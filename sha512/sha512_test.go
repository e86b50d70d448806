package sha512

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectors512(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "cf83e1357eefb8bdf1542850d66d8007d620e4050b5715dc83f4a921d36ce9ce47d0d13c5d85f2b0ff8318d2877eec2f63b931bd47417a81a538327af927da3e"},
		{"abc", "ddaf35a193617abacc417349ae20413112e6fa4e89a97ea20a9eeee64b55d39a2192992a274fc1a836ba3c23a3feebbd454d4423643ce80e2a9ac94fa54ca49f"},
	}

	for _, c := range cases {
		got := Sum512([]byte(c.in))
		assert.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestVectors384(t *testing.T) {
	got := Sum384([]byte(""))
	assert.Equal(t, "38b060a751ac96384cd9327eb1b1e36a21fdb71114be07434c0cc7bf63f6e1da274edebfe76f65fbd51ad2f14898b95b", hex.EncodeToString(got[:]))
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("streaming across several writes exercises the buffering path, well past one block, so the second write crosses a 128-byte block boundary")
	h := New()
	h.Write(data[:10])
	h.Write(data[10:])

	want := Sum512(data)
	assert.Equal(t, want[:], h.Sum(nil))
}
