package blowfish

import (
	"math/rand"
	"testing"

	refblowfish "golang.org/x/crypto/blowfish"
	"github.com/stretchr/testify/require"
)

// TestCrossValidateAgainstReference checks random keys and blocks against
// golang.org/x/crypto/blowfish, used here purely as an independent oracle
// and never by the implementation above.
func TestCrossValidateAgainstReference(t *testing.T) {
	rng := rand.New(rand.NewSource(9))

	for trial := 0; trial < 64; trial++ {
		keyLen := 4 + 4*rng.Intn((KeyMax-KeyMin)/4+1)
		key := make([]byte, keyLen)
		rng.Read(key)

		pt := make([]byte, BlockSize)
		rng.Read(pt)

		k, err := NewKey(key)
		require.NoError(t, err)
		ours := New(k)

		theirs, err := refblowfish.NewCipher(key)
		require.NoError(t, err)

		gotOurs := make([]byte, BlockSize)
		ours.Encrypt(gotOurs, pt)

		gotTheirs := make([]byte, BlockSize)
		theirs.Encrypt(gotTheirs, pt)

		require.Equal(t, gotTheirs, gotOurs, "trial %d with key length %d", trial, keyLen)

		backOurs := make([]byte, BlockSize)
		ours.Decrypt(backOurs, gotOurs)
		require.Equal(t, pt, backOurs)
	}
}
