// Package blowfish implements Bruce Schneier's Blowfish block cipher,
// built from scratch rather than imported from golang.org/x/crypto/blowfish.
package blowfish

import (
	"encoding/binary"

	"github.com/aidos9/vox-cryptography/cryptoerr"
	"github.com/pkg/errors"
)

// BlockSize is Blowfish's fixed 8-byte block size.
const BlockSize = 8

// KeyMin and KeyMax bound Blowfish's variable key length, in bytes.
const (
	KeyMin = 4
	KeyMax = 56
)

// Key is a validated Blowfish key, ready to be expanded into round keys.
type Key struct {
	bytes []byte
}

// NewKey validates key, which must be between KeyMin and KeyMax bytes and a
// multiple of 4.
func NewKey(key []byte) (*Key, error) {
	if len(key) < KeyMin {
		return nil, errors.Wrap(cryptoerr.KeyTooShort(len(key), KeyMin), "blowfish: invalid key")
	}
	if len(key) > KeyMax {
		return nil, errors.Wrap(cryptoerr.KeyTooLong(len(key), KeyMax), "blowfish: invalid key")
	}
	if len(key)%4 != 0 {
		return nil, errors.Wrap(cryptoerr.New(cryptoerr.InvalidKey), "blowfish: key length must be a multiple of 4")
	}

	return &Key{bytes: key}, nil
}

// roundKeys XORs the raw key bytes, cycled as needed, into a copy of the
// standard P-array.
func (k *Key) roundKeys() [18]uint32 {
	keys := pArray

	for i := range keys {
		r := i * 4
		keys[i] ^= uint32(k.bytes[r%len(k.bytes)])<<24 |
			uint32(k.bytes[(r+1)%len(k.bytes)])<<16 |
			uint32(k.bytes[(r+2)%len(k.bytes)])<<8 |
			uint32(k.bytes[(r+3)%len(k.bytes)])
	}

	return keys
}

// Blowfish is a configured block cipher instance: BlockSize()/Encrypt()/
// Decrypt() implement blockcipher.Cipher.
type Blowfish struct {
	roundKeys [18]uint32
	sBoxes    [4][256]uint32
}

// New derives the key-dependent round keys and S-boxes for key and returns a
// ready-to-use cipher.
func New(key *Key) *Blowfish {
	b := &Blowfish{
		roundKeys: key.roundKeys(),
		sBoxes:    sBoxes,
	}
	b.expandKey()
	return b
}

// expandKey runs Blowfish's self-encryption key schedule: the all-zero block
// is repeatedly encrypted under the in-progress state, with each resulting
// pair of words overwriting the next two entries of the round keys and then
// the four S-boxes, in order.
func (b *Blowfish) expandKey() {
	var l, r uint32

	for i := 0; i < 18; i += 2 {
		l, r = b.encryptBlock(l, r)
		b.roundKeys[i] = l
		b.roundKeys[i+1] = r
	}

	for i := 0; i < 4; i++ {
		for c := 0; c < 256; c += 2 {
			l, r = b.encryptBlock(l, r)
			b.sBoxes[i][c] = l
			b.sBoxes[i][c+1] = r
		}
	}
}

// BlockSize returns Blowfish's fixed 8-byte block size.
func (*Blowfish) BlockSize() int { return BlockSize }

// Encrypt encrypts one 8-byte block.
func (b *Blowfish) Encrypt(dst, src []byte) {
	l := binary.BigEndian.Uint32(src[0:4])
	r := binary.BigEndian.Uint32(src[4:8])

	l, r = b.encryptBlock(l, r)

	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}

// Decrypt decrypts one 8-byte block.
func (b *Blowfish) Decrypt(dst, src []byte) {
	l := binary.BigEndian.Uint32(src[0:4])
	r := binary.BigEndian.Uint32(src[4:8])

	l, r = b.decryptBlock(l, r)

	binary.BigEndian.PutUint32(dst[0:4], l)
	binary.BigEndian.PutUint32(dst[4:8], r)
}

func (b *Blowfish) encryptBlock(l, r uint32) (uint32, uint32) {
	for i := 0; i < 16; i++ {
		l, r = b.round(i, l, r)
	}

	l, r = r, l

	r ^= b.roundKeys[16]
	l ^= b.roundKeys[17]

	return l, r
}

func (b *Blowfish) decryptBlock(l, r uint32) (uint32, uint32) {
	for i := 0; i < 16; i++ {
		l, r = b.round(17-i, l, r)
	}

	l, r = r, l

	r ^= b.roundKeys[1]
	l ^= b.roundKeys[0]

	return l, r
}

func (b *Blowfish) round(round int, l, r uint32) (uint32, uint32) {
	l ^= b.roundKeys[round]
	f := b.fFunction(byte(l>>24), byte(l>>16), byte(l>>8), byte(l))
	r ^= f
	return r, l
}

// fFunction implements (S0[w] + S1[x]) ^ S2[y] + S3[z], with 32-bit wraparound.
func (b *Blowfish) fFunction(w, x, y, z byte) uint32 {
	return (b.sBoxes[0][w]+b.sBoxes[1][x])^b.sBoxes[2][y] + b.sBoxes[3][z]
}
