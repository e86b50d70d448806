package blake2b

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVectors(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", "786a02f742015903c6c6fd852552d272912f4740e15847618a86e217f71f5419d25e1031afee585313896444934eb04b903a685b1448b755d56f701afe9be2ce"},
		{"abc", "ba80a53f981c4d0d6a2797b69f12f6e94c212f14685ac4b74b12bb6fdbffa2d17d87c5392aab792dc252d5de4533cc9518d38aa8dbf1925ab92386edd4009923"},
	}

	for _, c := range cases {
		got := Sum512([]byte(c.in))
		assert.Equal(t, c.want, hex.EncodeToString(got[:]))
	}
}

func TestBuilderRejectsBadOutputLength(t *testing.T) {
	_, err := NewBuilder().WithOutputLength(0).Build()
	assert.Error(t, err)

	_, err = NewBuilder().WithOutputLength(65).Build()
	assert.Error(t, err)

	_, err = NewBuilder().WithOutputLength(1).Build()
	assert.NoError(t, err)
}

func TestBuilderRejectsOversizedKey(t *testing.T) {
	_, err := NewBuilder().WithKey(make([]byte, 65)).Build()
	assert.Error(t, err)
}

func TestKeyedDigestDiffersFromUnkeyed(t *testing.T) {
	unkeyed, err := NewBuilder().Build()
	require.NoError(t, err)
	unkeyed.Write([]byte("message"))

	keyed, err := NewBuilder().WithKey([]byte("secret")).Build()
	require.NoError(t, err)
	keyed.Write([]byte("message"))

	assert.NotEqual(t, unkeyed.Sum(nil), keyed.Sum(nil))
}

func TestStreamingMatchesOneShot(t *testing.T) {
	data := []byte("streaming across several writes exercises the buffering path, well past one block of one hundred twenty eight bytes, so the second write crosses a block boundary")
	h := New()
	h.Write(data[:10])
	h.Write(data[10:])

	want := Sum512(data)
	assert.Equal(t, want[:], h.Sum(nil))
}
