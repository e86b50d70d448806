// Package sha1 implements the SHA-1 message digest, built from scratch on
// top of the shared streamhash engine rather than the standard library's
// crypto/sha1.
package sha1

import (
	"encoding/binary"

	"github.com/aidos9/vox-cryptography/internal/streamhash"
)

const (
	// Size is the length, in bytes, of a SHA-1 checksum.
	Size = 20
	// BlockSize is the block size, in bytes, of the SHA-1 compression
	// function's input chunks.
	BlockSize = 64
)

var initState = [5]uint32{0x67452301, 0xEFCDAB89, 0x98BADCFE, 0x10325476, 0xC3D2E1F0}

type core struct {
	h [5]uint32
}

func newCore() *core {
	c := &core{}
	c.Reset()
	return c
}

func (c *core) Reset()               { c.h = initState }
func (c *core) ChunkSize() int       { return BlockSize }
func (c *core) LengthFieldSize() int { return 8 }

func (c *core) PutLength(dst []byte, bitLen uint64) {
	binary.BigEndian.PutUint64(dst, bitLen)
}

func rotl32(x uint32, n uint) uint32 { return x<<n | x>>(32-n) }

func (c *core) Compress(block []byte) {
	var w [80]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 80; i++ {
		w[i] = rotl32(w[i-3]^w[i-8]^w[i-14]^w[i-16], 1)
	}

	a, b, cc, d, e := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4]

	for i := 0; i < 80; i++ {
		var f, k uint32
		switch {
		case i < 20:
			f = (b & cc) | (^b & d)
			k = 0x5A827999
		case i < 40:
			f = b ^ cc ^ d
			k = 0x6ED9EBA1
		case i < 60:
			f = (b & cc) | (b & d) | (cc & d)
			k = 0x8F1BBCDC
		default:
			f = b ^ cc ^ d
			k = 0xCA62C1D6
		}

		tmp := rotl32(a, 5) + f + e + k + w[i]
		e = d
		d = cc
		cc = rotl32(b, 30)
		b = a
		a = tmp
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
}

func (c *core) Append(dst []byte) []byte {
	var tmp [Size]byte
	for i, v := range c.h {
		binary.BigEndian.PutUint32(tmp[4*i:], v)
	}
	return append(dst, tmp[:]...)
}

func (c *core) Clone() streamhash.Core {
	cp := *c
	return &cp
}

// Hash is a streaming SHA-1 digest.
type Hash struct {
	*streamhash.Engine
}

// New returns a new, empty SHA-1 Hash.
func New() *Hash {
	return &Hash{streamhash.NewEngine(newCore())}
}

// Size returns SHA-1's fixed output size.
func (h *Hash) Size() int { return Size }

// BlockSize returns SHA-1's compression block size.
func (h *Hash) BlockSize() int { return BlockSize }

// Sum returns the SHA-1 checksum of data.
func Sum(data []byte) [Size]byte {
	h := New()
	h.Write(data)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
