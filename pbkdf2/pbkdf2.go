// Package pbkdf2 implements RFC 8018's PBKDF2 key derivation function,
// generalized over any HMAC-capable hash rather than one fixed algorithm.
package pbkdf2

import (
	"encoding/binary"
	"hash"

	"github.com/aidos9/vox-cryptography/hmac"
)

// Key derives a keyLen-byte key from password and salt using iterations
// rounds of HMAC built from newHash, per RFC 8018 section 5.2.
//
// A common PBKDF2 bug restarts the trailing partial block at iteration 1
// instead of continuing the true block counter; this implementation always
// uses the true running block index, so every derived block uses the
// salt || BE32(blockIndex) the standard requires.
func Key(newHash func() hash.Hash, password, salt []byte, iterations, keyLen int) []byte {
	outSize := newHash().Size()

	out := make([]byte, 0, keyLen)
	completed := 0
	blockIndex := uint32(1)

	for keyLen-completed > outSize {
		out = append(out, block(newHash, password, salt, blockIndex, iterations)...)
		completed += outSize
		blockIndex++
	}

	if keyLen-completed > 0 {
		last := block(newHash, password, salt, blockIndex, iterations)
		out = append(out, last[:keyLen-completed]...)
	}

	return out
}

// block computes F(password, salt, iterations, blockIndex) as defined by
// RFC 8018: U1 = HMAC(password, salt || BE32(blockIndex)), U_n = HMAC(password, U_{n-1}),
// and the result is the XOR of U1..U_iterations.
func block(newHash func() hash.Hash, password, salt []byte, blockIndex uint32, iterations int) []byte {
	seed := make([]byte, len(salt)+4)
	copy(seed, salt)
	binary.BigEndian.PutUint32(seed[len(salt):], blockIndex)

	h := hmac.New(newHash, password)
	h.Write(seed)
	u := h.Sum(nil)

	out := append([]byte(nil), u...)

	for n := 2; n <= iterations; n++ {
		h = hmac.New(newHash, password)
		h.Write(u)
		u = h.Sum(nil)

		for i := range out {
			out[i] ^= u[i]
		}
	}

	return out
}
