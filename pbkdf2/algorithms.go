package pbkdf2

import (
	"hash"

	"github.com/aidos9/vox-cryptography/sha1"
	"github.com/aidos9/vox-cryptography/sha256"
	"github.com/aidos9/vox-cryptography/sha512"
)

// SHA1 derives a keyLen-byte key using HMAC-SHA1.
func SHA1(password, salt []byte, iterations, keyLen int) []byte {
	return Key(func() hash.Hash { return sha1.New() }, password, salt, iterations, keyLen)
}

// SHA256 derives a keyLen-byte key using HMAC-SHA256.
func SHA256(password, salt []byte, iterations, keyLen int) []byte {
	return Key(func() hash.Hash { return sha256.New() }, password, salt, iterations, keyLen)
}

// SHA512 derives a keyLen-byte key using HMAC-SHA512.
func SHA512(password, salt []byte, iterations, keyLen int) []byte {
	return Key(func() hash.Hash { return sha512.New() }, password, salt, iterations, keyLen)
}
