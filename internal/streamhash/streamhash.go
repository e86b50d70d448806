// Package streamhash implements the generic absorb/compress/finalize
// engine shared by every Merkle-Damgård hash in this module (MD5, SHA-1,
// SHA-256/224, SHA-512/384). Each concrete algorithm supplies a Core that
// knows its chunk size, length-field width and endianness, and compression
// function; this package owns the buffering, the 0x80 padding, and the
// two-way split between "length fits in the final chunk" and "length
// needs an extra chunk" that every one of these algorithms shares.
package streamhash

// Core is implemented once per hash algorithm. Engine drives it.
type Core interface {
	// ChunkSize is the number of bytes consumed by one Compress call.
	ChunkSize() int
	// LengthFieldSize is the width, in bytes, of the trailing bit-length
	// field (8 for MD5/SHA-1/SHA-256, 16 for SHA-512).
	LengthFieldSize() int
	// PutLength encodes bitLen into dst (len(dst) == LengthFieldSize()) in
	// the algorithm's byte order.
	PutLength(dst []byte, bitLen uint64)
	// Compress absorbs exactly one ChunkSize()-byte block into the state.
	Compress(block []byte)
	// Append writes the current digest state, in the algorithm's byte
	// order and truncated to its output size, onto dst and returns it.
	Append(dst []byte) []byte
	// Reset returns the core to its algorithm-defined initial state.
	Reset()
	// Clone returns an independent copy of the core's state, so Sum can
	// finalize without disturbing a Hash that is still being written to.
	Clone() Core
}

// Engine implements the streaming buffer-then-compress loop common to
// every Core. It does not itself implement hash.Hash; the per-algorithm
// packages wrap it to add Size()/BlockSize(), and the digest's byte order
// and truncation come from the Core's Append.
type Engine struct {
	core    Core
	buf     []byte // holds at most ChunkSize()-1 unconsumed bytes
	nbuf    int
	length  uint64 // total bytes absorbed, for the trailing length field
}

// NewEngine wraps core in a streaming Engine.
func NewEngine(core Core) *Engine {
	e := &Engine{core: core}
	e.buf = make([]byte, core.ChunkSize())
	return e
}

// Reset clears all absorbed state, including the wrapped Core.
func (e *Engine) Reset() {
	e.nbuf = 0
	e.length = 0
	e.core.Reset()
}

// ChunkSize returns the algorithm's compression block size.
func (e *Engine) ChunkSize() int { return e.core.ChunkSize() }

// Write absorbs p, compressing every full chunk as it fills and buffering
// the remainder. It never errors; io.Writer-shaped callers can rely on that.
func (e *Engine) Write(p []byte) (n int, err error) {
	n = len(p)
	e.length += uint64(n)

	if e.nbuf > 0 {
		filled := copy(e.buf[e.nbuf:], p)
		e.nbuf += filled
		p = p[filled:]
		if e.nbuf == len(e.buf) {
			e.core.Compress(e.buf)
			e.nbuf = 0
		}
	}

	chunk := e.core.ChunkSize()
	for len(p) >= chunk {
		e.core.Compress(p[:chunk])
		p = p[chunk:]
	}

	if len(p) > 0 {
		e.nbuf = copy(e.buf, p)
	}
	return n, nil
}

// Sum pads, appends the bit-length trailer, compresses whatever final
// chunk(s) that produces and appends the resulting digest to dst. It
// operates on a copy of the engine's state so the caller can keep writing.
func (e *Engine) Sum(dst []byte) []byte {
	dup := *e
	dup.buf = append([]byte(nil), e.buf...)
	dup.core = e.core.Clone()

	chunk := dup.core.ChunkSize()
	lenField := dup.core.LengthFieldSize()
	bitLen := dup.length * 8

	// Start the final block: the absorbed tail, then a single 0x80 byte.
	tail := append([]byte(nil), dup.buf[:dup.nbuf]...)
	tail = append(tail, 0x80)

	if len(tail) <= chunk-lenField {
		// Length field fits in this same chunk: zero-pad up to the field,
		// write the length, compress once.
		block := make([]byte, chunk)
		copy(block, tail)
		dup.core.PutLength(block[chunk-lenField:], bitLen)
		dup.core.Compress(block)
	} else {
		// No room: finish this chunk with zeros, compress, then emit one
		// more chunk that is all zeros except the trailing length field.
		block := make([]byte, chunk)
		copy(block, tail)
		dup.core.Compress(block)

		final := make([]byte, chunk)
		dup.core.PutLength(final[chunk-lenField:], bitLen)
		dup.core.Compress(final)
	}

	return dup.core.Append(dst)
}
