// Package sha256 implements SHA-224 and SHA-256, built from scratch on top
// of the shared streamhash engine rather than the standard library's
// crypto/sha256.
package sha256

import (
	"encoding/binary"

	"github.com/aidos9/vox-cryptography/internal/streamhash"
)

const (
	// Size is the output size, in bytes, of a SHA-256 checksum.
	Size = 32
	// Size224 is the output size, in bytes, of a SHA-224 checksum.
	Size224 = 28
	// BlockSize is the block size, in bytes, shared by SHA-224 and SHA-256.
	BlockSize = 64
)

var init256 = [8]uint32{
	0x6a09e667, 0xbb67ae85, 0x3c6ef372, 0xa54ff53a,
	0x510e527f, 0x9b05688c, 0x1f83d9ab, 0x5be0cd19,
}

var init224 = [8]uint32{
	0xc1059ed8, 0x367cd507, 0x3070dd17, 0xf70e5939,
	0xffc00b31, 0x68581511, 0x64f98fa7, 0xbefa4fa4,
}

var roundConstants = [64]uint32{
	0x428a2f98, 0x71374491, 0xb5c0fbcf, 0xe9b5dba5,
	0x3956c25b, 0x59f111f1, 0x923f82a4, 0xab1c5ed5,
	0xd807aa98, 0x12835b01, 0x243185be, 0x550c7dc3,
	0x72be5d74, 0x80deb1fe, 0x9bdc06a7, 0xc19bf174,
	0xe49b69c1, 0xefbe4786, 0x0fc19dc6, 0x240ca1cc,
	0x2de92c6f, 0x4a7484aa, 0x5cb0a9dc, 0x76f988da,
	0x983e5152, 0xa831c66d, 0xb00327c8, 0xbf597fc7,
	0xc6e00bf3, 0xd5a79147, 0x06ca6351, 0x14292967,
	0x27b70a85, 0x2e1b2138, 0x4d2c6dfc, 0x53380d13,
	0x650a7354, 0x766a0abb, 0x81c2c92e, 0x92722c85,
	0xa2bfe8a1, 0xa81a664b, 0xc24b8b70, 0xc76c51a3,
	0xd192e819, 0xd6990624, 0xf40e3585, 0x106aa070,
	0x19a4c116, 0x1e376c08, 0x2748774c, 0x34b0bcb5,
	0x391c0cb3, 0x4ed8aa4a, 0x5b9cca4f, 0x682e6ff3,
	0x748f82ee, 0x78a5636f, 0x84c87814, 0x8cc70208,
	0x90befffa, 0xa4506ceb, 0xbef9a3f7, 0xc67178f2,
}

func rotr32(x uint32, n uint) uint32 { return x>>n | x<<(32-n) }

type core struct {
	h       [8]uint32
	outSize int
}

func newCore(init [8]uint32, outSize int) *core {
	c := &core{outSize: outSize}
	c.h = init
	return c
}

func (c *core) Reset() {
	if c.outSize == Size224 {
		c.h = init224
	} else {
		c.h = init256
	}
}

func (c *core) ChunkSize() int       { return BlockSize }
func (c *core) LengthFieldSize() int { return 8 }

func (c *core) PutLength(dst []byte, bitLen uint64) {
	binary.BigEndian.PutUint64(dst, bitLen)
}

func (c *core) Compress(block []byte) {
	var w [64]uint32
	for i := 0; i < 16; i++ {
		w[i] = binary.BigEndian.Uint32(block[4*i:])
	}
	for i := 16; i < 64; i++ {
		s0 := rotr32(w[i-15], 7) ^ rotr32(w[i-15], 18) ^ (w[i-15] >> 3)
		s1 := rotr32(w[i-2], 17) ^ rotr32(w[i-2], 19) ^ (w[i-2] >> 10)
		w[i] = w[i-16] + s0 + w[i-7] + s1
	}

	a, b, cc, d, e, f, g, hh := c.h[0], c.h[1], c.h[2], c.h[3], c.h[4], c.h[5], c.h[6], c.h[7]

	for i := 0; i < 64; i++ {
		s1 := rotr32(e, 6) ^ rotr32(e, 11) ^ rotr32(e, 25)
		ch := (e & f) ^ (^e & g)
		t1 := hh + s1 + ch + roundConstants[i] + w[i]
		s0 := rotr32(a, 2) ^ rotr32(a, 13) ^ rotr32(a, 22)
		maj := (a & b) ^ (a & cc) ^ (b & cc)
		t2 := s0 + maj

		hh = g
		g = f
		f = e
		e = d + t1
		d = cc
		cc = b
		b = a
		a = t1 + t2
	}

	c.h[0] += a
	c.h[1] += b
	c.h[2] += cc
	c.h[3] += d
	c.h[4] += e
	c.h[5] += f
	c.h[6] += g
	c.h[7] += hh
}

func (c *core) Append(dst []byte) []byte {
	var tmp [32]byte
	for i, v := range c.h {
		binary.BigEndian.PutUint32(tmp[4*i:], v)
	}
	return append(dst, tmp[:c.outSize]...)
}

func (c *core) Clone() streamhash.Core {
	cp := *c
	return &cp
}

// Hash is a streaming SHA-224/SHA-256 digest.
type Hash struct {
	*streamhash.Engine
	size int
}

// New returns a new, empty SHA-256 Hash.
func New() *Hash {
	return &Hash{streamhash.NewEngine(newCore(init256, Size)), Size}
}

// New224 returns a new, empty SHA-224 Hash.
func New224() *Hash {
	return &Hash{streamhash.NewEngine(newCore(init224, Size224)), Size224}
}

// Size returns the digest's output size.
func (h *Hash) Size() int { return h.size }

// BlockSize returns the shared SHA-224/256 compression block size.
func (h *Hash) BlockSize() int { return BlockSize }

// Sum256 returns the SHA-256 checksum of data.
func Sum256(data []byte) [Size]byte {
	h := New()
	h.Write(data)
	var out [Size]byte
	copy(out[:], h.Sum(nil))
	return out
}

// Sum224 returns the SHA-224 checksum of data.
func Sum224(data []byte) [Size224]byte {
	h := New224()
	h.Write(data)
	var out [Size224]byte
	copy(out[:], h.Sum(nil))
	return out
}
