package hmac

import (
	"hash"

	"github.com/aidos9/vox-cryptography/md5"
	"github.com/aidos9/vox-cryptography/sha1"
	"github.com/aidos9/vox-cryptography/sha256"
	"github.com/aidos9/vox-cryptography/sha512"
)

// MD5 returns the one-shot HMAC-MD5 of msg under key.
func MD5(key, msg []byte) [md5.Size]byte {
	h := New(func() hash.Hash { return md5.New() }, key)
	h.Write(msg)
	var out [md5.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA1 returns the one-shot HMAC-SHA1 of msg under key.
func SHA1(key, msg []byte) [sha1.Size]byte {
	h := New(func() hash.Hash { return sha1.New() }, key)
	h.Write(msg)
	var out [sha1.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA224 returns the one-shot HMAC-SHA224 of msg under key.
func SHA224(key, msg []byte) [sha256.Size224]byte {
	h := New(func() hash.Hash { return sha256.New224() }, key)
	h.Write(msg)
	var out [sha256.Size224]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA256 returns the one-shot HMAC-SHA256 of msg under key.
func SHA256(key, msg []byte) [sha256.Size]byte {
	h := New(func() hash.Hash { return sha256.New() }, key)
	h.Write(msg)
	var out [sha256.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA384 returns the one-shot HMAC-SHA384 of msg under key.
func SHA384(key, msg []byte) [sha512.Size384]byte {
	h := New(func() hash.Hash { return sha512.New384() }, key)
	h.Write(msg)
	var out [sha512.Size384]byte
	copy(out[:], h.Sum(nil))
	return out
}

// SHA512 returns the one-shot HMAC-SHA512 of msg under key.
func SHA512(key, msg []byte) [sha512.Size]byte {
	h := New(func() hash.Hash { return sha512.New() }, key)
	h.Write(msg)
	var out [sha512.Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
