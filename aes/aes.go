// Package aes implements the Rijndael/AES block cipher for 128, 192 and
// 256-bit keys, built from scratch rather than imported from crypto/aes.
package aes

import (
	"github.com/aidos9/vox-cryptography/cryptoerr"
	"github.com/pkg/errors"
)

// BlockSize is AES's fixed 16-byte block size, regardless of key length.
const BlockSize = 16

// Variant identifies an AES key size and carries the parameters (word
// count, round count) that follow from it.
type Variant int

const (
	Variant128 Variant = iota
	Variant192
	Variant256
)

// Bits returns the key size in bits.
func (v Variant) Bits() int {
	switch v {
	case Variant128:
		return 128
	case Variant192:
		return 192
	default:
		return 256
	}
}

// wordsRequired is the key length in 32-bit words (Nk in FIPS-197).
func (v Variant) wordsRequired() int { return v.Bits() / 32 }

// RoundsRequired is the number of round-key additions performed, including
// the initial whitening step (Nr+1 in FIPS-197 terms).
func (v Variant) RoundsRequired() int {
	switch v {
	case Variant128:
		return 11
	case Variant192:
		return 13
	default:
		return 15
	}
}

func variantForKeyLen(n int) (Variant, error) {
	switch n {
	case 16:
		return Variant128, nil
	case 24:
		return Variant192, nil
	case 32:
		return Variant256, nil
	default:
		return 0, errors.Wrap(cryptoerr.New(cryptoerr.InvalidKey), "aes: key length must be 16, 24 or 32 bytes")
	}
}

// Key is an expanded AES round-key schedule.
type Key struct {
	variant Variant
	words   []uint32
}

// NewKey expands a raw 16, 24 or 32-byte key into a full round-key schedule.
func NewKey(key []byte) (*Key, error) {
	variant, err := variantForKeyLen(len(key))
	if err != nil {
		return nil, err
	}

	nk := variant.wordsRequired()
	w := variant.RoundsRequired() * 4

	words := make([]uint32, w)
	for i := 0; i < nk; i++ {
		words[i] = uint32(key[4*i])<<24 | uint32(key[4*i+1])<<16 | uint32(key[4*i+2])<<8 | uint32(key[4*i+3])
	}

	for i := nk; i < w; i++ {
		temp := words[i-1]
		switch {
		case i%nk == 0:
			temp = subWord(rotWord(words[i-1])) ^ roundConstants[i/nk-1]
		case nk > 6 && i%nk == 4:
			temp = subWord(words[i-1])
		}
		words[i] = words[i-nk] ^ temp
	}

	return &Key{variant: variant, words: words}, nil
}

func rotWord(w uint32) uint32 {
	return w<<8 | w>>24
}

func subWord(w uint32) uint32 {
	return uint32(sBox[(w>>24)&0xff])<<24 |
		uint32(sBox[(w>>16)&0xff])<<16 |
		uint32(sBox[(w>>8)&0xff])<<8 |
		uint32(sBox[w&0xff])
}

// roundKeyWord returns the i-th 32-bit word of the expanded schedule.
func (k *Key) roundKeyWord(i int) uint32 { return k.words[i] }

// AES is a configured block cipher instance: BlockSize()/Encrypt()/Decrypt()
// implement blockcipher.Cipher.
type AES struct {
	key *Key
}

// New returns a Cipher using the given expanded key.
func New(key *Key) *AES { return &AES{key: key} }

// BlockSize returns AES's fixed 16-byte block size.
func (*AES) BlockSize() int { return BlockSize }

// state is stored column-major: state[column][row], matching FIPS-197.
type state [4][4]byte

func loadState(block []byte) state {
	var s state
	for i := 0; i < 4; i++ {
		copy(s[i][:], block[4*i:4*i+4])
	}
	return s
}

func (s state) flatten(dst []byte) {
	for i := 0; i < 4; i++ {
		copy(dst[4*i:4*i+4], s[i][:])
	}
}

func (s *state) addRoundKey(key *Key, round int) {
	for i := 0; i < 4; i++ {
		w := key.roundKeyWord(round*4 + i)
		s[i][0] ^= byte(w >> 24)
		s[i][1] ^= byte(w >> 16)
		s[i][2] ^= byte(w >> 8)
		s[i][3] ^= byte(w)
	}
}

func (s *state) subBytes() {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = sBox[s[c][r]]
		}
	}
}

func (s *state) invSubBytes() {
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			s[c][r] = invSBox[s[c][r]]
		}
	}
}

// shiftRows cyclically shifts row r left by r columns.
func (s *state) shiftRows() {
	for r := 1; r < 4; r++ {
		a, b, c, d := s[0][r], s[1][r], s[2][r], s[3][r]
		switch r {
		case 1:
			s[0][r], s[1][r], s[2][r], s[3][r] = b, c, d, a
		case 2:
			s[0][r], s[1][r], s[2][r], s[3][r] = c, d, a, b
		case 3:
			s[0][r], s[1][r], s[2][r], s[3][r] = d, a, b, c
		}
	}
}

func (s *state) invShiftRows() {
	for r := 1; r < 4; r++ {
		a, b, c, d := s[0][r], s[1][r], s[2][r], s[3][r]
		switch r {
		case 1:
			s[0][r], s[1][r], s[2][r], s[3][r] = d, a, b, c
		case 2:
			s[0][r], s[1][r], s[2][r], s[3][r] = c, d, a, b
		case 3:
			s[0][r], s[1][r], s[2][r], s[3][r] = b, c, d, a
		}
	}
}

func xtime(b byte) byte {
	h := b >> 7
	b <<= 1
	return b ^ (h * 0x1b)
}

func (s *state) mixColumns() {
	for c := 0; c < 4; c++ {
		a := s[c]
		var b [4]byte
		for i := 0; i < 4; i++ {
			b[i] = xtime(a[i])
		}
		s[c][0] = b[0] ^ a[3] ^ a[2] ^ b[1] ^ a[1]
		s[c][1] = b[1] ^ a[0] ^ a[3] ^ b[2] ^ a[2]
		s[c][2] = b[2] ^ a[1] ^ a[0] ^ b[3] ^ a[3]
		s[c][3] = b[3] ^ a[2] ^ a[1] ^ b[0] ^ a[0]
	}
}

// galoisMul multiplies two bytes in GF(2^8) with AES's reduction polynomial.
func galoisMul(a, b byte) byte {
	var p byte
	for a != 0 && b != 0 {
		if b&1 != 0 {
			p ^= a
		}
		a = xtime(a)
		b >>= 1
	}
	return p
}

func (s *state) invMixColumns() {
	for c := 0; c < 4; c++ {
		a := s[c]
		s[c][0] = galoisMul(14, a[0]) ^ galoisMul(11, a[1]) ^ galoisMul(13, a[2]) ^ galoisMul(9, a[3])
		s[c][1] = galoisMul(9, a[0]) ^ galoisMul(14, a[1]) ^ galoisMul(11, a[2]) ^ galoisMul(13, a[3])
		s[c][2] = galoisMul(13, a[0]) ^ galoisMul(9, a[1]) ^ galoisMul(14, a[2]) ^ galoisMul(11, a[3])
		s[c][3] = galoisMul(11, a[0]) ^ galoisMul(13, a[1]) ^ galoisMul(9, a[2]) ^ galoisMul(14, a[3])
	}
}

// Encrypt encrypts one 16-byte block.
func (a *AES) Encrypt(dst, src []byte) {
	s := loadState(src)
	nr := a.key.variant.RoundsRequired()

	s.addRoundKey(a.key, 0)
	for round := 1; round < nr-1; round++ {
		s.subBytes()
		s.shiftRows()
		s.mixColumns()
		s.addRoundKey(a.key, round)
	}
	s.subBytes()
	s.shiftRows()
	s.addRoundKey(a.key, nr-1)

	s.flatten(dst)
}

// Decrypt decrypts one 16-byte block.
func (a *AES) Decrypt(dst, src []byte) {
	s := loadState(src)
	nr := a.key.variant.RoundsRequired()

	s.addRoundKey(a.key, nr-1)
	s.invShiftRows()
	s.invSubBytes()
	for round := nr - 2; round >= 1; round-- {
		s.addRoundKey(a.key, round)
		s.invMixColumns()
		s.invShiftRows()
		s.invSubBytes()
	}
	s.addRoundKey(a.key, 0)

	s.flatten(dst)
}
