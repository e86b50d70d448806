// Package hmac implements the keyed-hash message authentication code
// (FIPS 198-1) over any hash.Hash, rather than wiring the ipad/opad
// construction into each digest individually.
package hmac

import "hash"

const (
	ipad = 0x36
	opad = 0x5c
)

type digest struct {
	inner, outer hash.Hash
	ipad, opad   []byte
}

// New returns a hash.Hash computing the HMAC of whatever is written to it,
// using newHash for both the inner and outer digests and key as the MAC key.
// Keys longer than the block size are hashed down first, exactly as FIPS
// 198-1 requires.
func New(newHash func() hash.Hash, key []byte) hash.Hash {
	d := &digest{inner: newHash(), outer: newHash()}
	blockSize := d.inner.BlockSize()

	if len(key) > blockSize {
		d.inner.Write(key)
		key = d.inner.Sum(nil)
		d.inner.Reset()
	}

	d.ipad = make([]byte, blockSize)
	d.opad = make([]byte, blockSize)
	copy(d.ipad, key)
	copy(d.opad, key)
	for i := range d.ipad {
		d.ipad[i] ^= ipad
		d.opad[i] ^= opad
	}

	d.inner.Write(d.ipad)
	return d
}

func (d *digest) Write(p []byte) (int, error) { return d.inner.Write(p) }

func (d *digest) Sum(in []byte) []byte {
	innerSum := d.inner.Sum(nil)

	d.outer.Reset()
	d.outer.Write(d.opad)
	d.outer.Write(innerSum)
	return d.outer.Sum(in)
}

func (d *digest) Reset() {
	d.inner.Reset()
	d.inner.Write(d.ipad)
}

func (d *digest) Size() int { return d.outer.Size() }

func (d *digest) BlockSize() int { return d.inner.BlockSize() }
