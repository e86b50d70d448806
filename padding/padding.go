// Package padding implements block-padding schemes for modes of operation
// like ecb that require whole blocks of input.
package padding

// Padding pads a final, possibly partial block up to a fixed size, and
// validates that padding after decryption.
type Padding interface {
	// PadBlock pads input, whose length must be at most blockSize, up to
	// blockSize. If input is already exactly blockSize long, extra is a
	// full block of padding to be encrypted and appended after block;
	// otherwise extra is nil and the padding is folded into block.
	PadBlock(input []byte, blockSize int) (block, extra []byte)

	// ValidatePaddedBlock inspects a decrypted final block and returns the
	// number of trailing padding bytes to strip, or ok=false if the
	// padding is malformed.
	ValidatePaddedBlock(block []byte) (n int, ok bool)
}
