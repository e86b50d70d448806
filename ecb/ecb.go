// Package ecb implements electronic codebook mode over any blockcipher.Cipher,
// with padding supplied by the padding package.
package ecb

import (
	"github.com/aidos9/vox-cryptography/blockcipher"
	"github.com/aidos9/vox-cryptography/cryptoerr"
	"github.com/aidos9/vox-cryptography/padding"
	"github.com/pkg/errors"
)

// Encrypter streams plaintext through ECB encryption. It buffers the
// trailing partial block (and, if the stream ends on an exact block
// boundary, the whole final block) until Finish applies padding and
// encrypts what remains.
type Encrypter struct {
	cipher blockcipher.Cipher
	buf    []byte
	out    []byte
}

// NewEncrypter returns an Encrypter driving cipher.
func NewEncrypter(cipher blockcipher.Cipher) *Encrypter {
	return &Encrypter{cipher: cipher}
}

// Update feeds more plaintext in. It encrypts every full block it can, but
// always keeps the last block (full or partial) buffered so Finish can tell
// whether the stream ended on an exact block boundary.
func (e *Encrypter) Update(data []byte) {
	bs := e.cipher.BlockSize()
	e.buf = append(e.buf, data...)

	for len(e.buf) > bs {
		block := make([]byte, bs)
		e.cipher.Encrypt(block, e.buf[:bs])
		e.out = append(e.out, block...)
		e.buf = e.buf[bs:]
	}
}

// Finish pads the remaining buffered data with pad and encrypts it,
// returning the complete ciphertext accumulated across all calls to Update.
func (e *Encrypter) Finish(pad padding.Padding) []byte {
	bs := e.cipher.BlockSize()

	block, extra := pad.PadBlock(e.buf, bs)

	ct := make([]byte, bs)
	e.cipher.Encrypt(ct, block)
	e.out = append(e.out, ct...)

	if extra != nil {
		ct2 := make([]byte, bs)
		e.cipher.Encrypt(ct2, extra)
		e.out = append(e.out, ct2...)
	}

	return e.out
}

// Decrypt decrypts a complete ECB ciphertext and strips its padding.
// input's length must be a multiple of cipher's block size.
func Decrypt(cipher blockcipher.Cipher, pad padding.Padding, input []byte) ([]byte, error) {
	bs := cipher.BlockSize()
	if len(input)%bs != 0 {
		return nil, errors.Wrap(cryptoerr.BadBlockSize(len(input), bs), "ecb: decrypt")
	}

	out := make([]byte, 0, len(input))
	block := make([]byte, bs)
	for i := 0; i < len(input); i += bs {
		cipher.Decrypt(block, input[i:i+bs])
		out = append(out, block...)
	}

	var last []byte
	if len(out) >= bs {
		last = out[len(out)-bs:]
	}
	n, ok := pad.ValidatePaddedBlock(last)
	if !ok {
		return nil, errors.Wrap(cryptoerr.New(cryptoerr.InvalidPadding), "ecb: decrypt")
	}

	return out[:len(out)-n], nil
}
