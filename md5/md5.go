// Package md5 implements the MD5 message digest, built from scratch on
// top of the shared streamhash engine rather than the standard library's
// crypto/md5.
package md5

import (
	"encoding/binary"

	"github.com/aidos9/vox-cryptography/internal/streamhash"
)

const (
	// Size is the length, in bytes, of an MD5 checksum.
	Size = 16
	// BlockSize is the block size, in bytes, of the MD5 compression
	// function's input chunks.
	BlockSize = 64
)

var initState = [4]uint32{0x67452301, 0xefcdab89, 0x98badcfe, 0x10325476}

var roundShifts = [64]uint32{
	7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22, 7, 12, 17, 22,
	5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20, 5, 9, 14, 20,
	4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23, 4, 11, 16, 23,
	6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21, 6, 10, 15, 21,
}

var roundConstants = [64]uint32{
	0xd76aa478, 0xe8c7b756, 0x242070db, 0xc1bdceee,
	0xf57c0faf, 0x4787c62a, 0xa8304613, 0xfd469501,
	0x698098d8, 0x8b44f7af, 0xffff5bb1, 0x895cd7be,
	0x6b901122, 0xfd987193, 0xa679438e, 0x49b40821,
	0xf61e2562, 0xc040b340, 0x265e5a51, 0xe9b6c7aa,
	0xd62f105d, 0x02441453, 0xd8a1e681, 0xe7d3fbc8,
	0x21e1cde6, 0xc33707d6, 0xf4d50d87, 0x455a14ed,
	0xa9e3e905, 0xfcefa3f8, 0x676f02d9, 0x8d2a4c8a,
	0xfffa3942, 0x8771f681, 0x6d9d6122, 0xfde5380c,
	0xa4beea44, 0x4bdecfa9, 0xf6bb4b60, 0xbebfbc70,
	0x289b7ec6, 0xeaa127fa, 0xd4ef3085, 0x04881d05,
	0xd9d4d039, 0xe6db99e5, 0x1fa27cf8, 0xc4ac5665,
	0xf4292244, 0x432aff97, 0xab9423a7, 0xfc93a039,
	0x655b59c3, 0x8f0ccc92, 0xffeff47d, 0x85845dd1,
	0x6fa87e4f, 0xfe2ce6e0, 0xa3014314, 0x4e0811a1,
	0xf7537e82, 0xbd3af235, 0x2ad7d2bb, 0xeb86d391,
}

type core struct {
	h [4]uint32
}

func newCore() *core {
	c := &core{}
	c.Reset()
	return c
}

func (c *core) Reset()              { c.h = initState }
func (c *core) ChunkSize() int      { return BlockSize }
func (c *core) LengthFieldSize() int { return 8 }

func (c *core) PutLength(dst []byte, bitLen uint64) {
	binary.LittleEndian.PutUint64(dst, bitLen)
}

func (c *core) Compress(block []byte) {
	var msg [16]uint32
	for i := 0; i < 16; i++ {
		msg[i] = binary.LittleEndian.Uint32(block[4*i:])
	}

	a, b, cc, d := c.h[0], c.h[1], c.h[2], c.h[3]

	for i := 0; i < 64; i++ {
		var f uint32
		var g int

		switch {
		case i < 16:
			f = (b & cc) | (^b & d)
			g = i
		case i < 32:
			f = (d & b) | (^d & cc)
			g = (5*i + 1) % 16
		case i < 48:
			f = b ^ cc ^ d
			g = (3*i + 5) % 16
		default:
			f = cc ^ (b | ^d)
			g = (7 * i) % 16
		}

		f = f + a + roundConstants[i] + msg[g]
		a = d
		d = cc
		cc = b
		b = b + (f<<roundShifts[i] | f>>(32-roundShifts[i]))
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
}

func (c *core) Append(dst []byte) []byte {
	var tmp [Size]byte
	for i, v := range c.h {
		binary.LittleEndian.PutUint32(tmp[4*i:], v)
	}
	return append(dst, tmp[:]...)
}

func (c *core) Clone() streamhash.Core {
	cp := *c
	return &cp
}

// Hash is a streaming MD5 digest.
type Hash struct {
	*streamhash.Engine
}

// New returns a new, empty MD5 Hash.
func New() *Hash {
	return &Hash{streamhash.NewEngine(newCore())}
}

// Size returns MD5's fixed output size.
func (h *Hash) Size() int { return Size }

// BlockSize returns MD5's compression block size.
func (h *Hash) BlockSize() int { return BlockSize }

// Sum returns the MD5 checksum of data.
func Sum(data []byte) [Size]byte {
	h := New()
	h.Write(data)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}
