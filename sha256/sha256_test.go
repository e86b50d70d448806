package sha256

import (
	"encoding/hex"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVectors256(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855"},
		{"abc", "ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad"},
	}

	for _, c := range cases {
		got := Sum256([]byte(c.in))
		assert.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestVectors224(t *testing.T) {
	got := Sum224([]byte(""))
	assert.Equal(t, "d14a028c2a3a2bc9476102bb288234c415a2b01f828ea62ac5b3e42f", hex.EncodeToString(got[:]))
}

func TestLongMessage(t *testing.T) {
	// a * 1,000,000, a well-known SHA-256 stress vector
	got := Sum256([]byte(strings.Repeat("a", 1000000)))
	assert.Equal(t, "cdc76e5c9914fb9281a1c7e284d73e67f1809a48a497200e046d39ccc7112cd0", hex.EncodeToString(got[:]))
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("streaming across several writes exercises the buffering path")
	h := New()
	h.Write(data[:10])
	h.Write(data[10:])

	want := Sum256(data)
	assert.Equal(t, want[:], h.Sum(nil))
}
