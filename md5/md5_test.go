package md5

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
		{"", "d41d8cd98f00b204e9800998ecf8427e"},
		{"The quick brown fox jumps over the lazy dog", "9e107d9d372bb6826bd81d3542a419d6"},
		{"The quick brown fox jumps over the lazy dog.", "e4d909c290d0fb1ca068ffaddf22cbd0"},
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
