package blake2b

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"
	xblake2b "golang.org/x/crypto/blake2b"
)

// TestCrossValidateAgainstReferenceImplementation checks this from-scratch
// implementation against golang.org/x/crypto/blake2b across random inputs
// and keys, independently of any fixed test vector.
func TestCrossValidateAgainstReferenceImplementation(t *testing.T) {
	r := rand.New(rand.NewSource(1))

	for i := 0; i < 64; i++ {
		msg := make([]byte, r.Intn(400))
		r.Read(msg)

		key := make([]byte, r.Intn(MaxKeyLength+1))
		r.Read(key)

		var want []byte
		if len(key) > 0 {
			ref, rerr := xblake2b.New512(key)
			require.NoError(t, rerr)
			ref.Write(msg)
			want = ref.Sum(nil)
		} else {
			sum := xblake2b.Sum512(msg)
			want = sum[:]
		}

		builder := NewBuilder()
		if len(key) > 0 {
			builder = builder.WithKey(key)
		}
		h, berr := builder.Build()
		require.NoError(t, berr)
		h.Write(msg)
		got := h.Sum(nil)

		require.Equal(t, want, got)
	}
}
