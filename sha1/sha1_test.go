package sha1

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "da39a3ee5e6b4b0d3255bfef95601890afd80709"},
		{"abc", "a9993e364706816aba3e25717850c26c9cd0d89d"},
		{"The quick brown fox jumps over the lazy dog", "2fd4e1c67a2d28fced849ee1bb76e7391b93eb12"},
	}

	for _, c := range cases {
		got := Sum([]byte(c.in))
		assert.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("streaming across several writes exercises the buffering path")
	h := New()
	h.Write(data[:10])
	h.Write(data[10:])

	want := Sum(data)
	assert.Equal(t, want[:], h.Sum(nil))
}
