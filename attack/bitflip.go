package attack

import (
	"bytes"
	"fmt"

	"github.com/VictiniX888/cryptopals/crypto"
	"github.com/VictiniX888/cryptopals/oracle"
)

// FlipCBC returns a copy of the CBC ciphertext ct that decrypts with the
// plaintext bytes at offset changed from known to want. The target must lie
// inside one block that is not the first; the block before it decrypts to
// garbage.
func FlipCBC(ct []byte, offset int, known, want []byte) ([]byte, error) {
	if len(known) != len(want) {
		return nil, fmt.Errorf("%w: known has %d bytes, want has %d", crypto.ErrMalformedInput, len(known), len(want))
	}
	if len(want) == 0 {
		return bytes.Clone(ct), nil
	}
	if offset < blockSize {
		return nil, fmt.Errorf("%w: offset %d is in the first block", crypto.ErrMalformedInput, offset)
	}
	if offset/blockSize != (offset+len(want)-1)/blockSize {
		return nil, fmt.Errorf("%w: %d bytes at offset %d span two blocks", crypto.ErrMalformedInput, len(want), offset)
	}
	if offset+len(want) > len(ct) {
		return nil, fmt.Errorf("%w: target ends past the %d-byte ciphertext", crypto.ErrMalformedInput, len(ct))
	}

	// Decryption XORs each block with the previous ciphertext block, so
	// flipping a bit there flips the same bit of the target.
	diff := crypto.XOR(nil, known, want)
	out := bytes.Clone(ct)
	at := out[offset-blockSize : offset-blockSize+len(diff)]
	crypto.XOR(at, at, diff)
	return out, nil
}

// ForgeCBC makes o encrypt a message whose suffix starts with want instead
// of the bytes it really starts with. o computes CBC(prefix || input ||
// suffix) for a prefix of prefixLen bytes and a known suffix. Only letters
// are submitted, so an oracle that escapes its input keeps the layout.
func ForgeCBC(o oracle.Encrypter, prefixLen int, suffix, want []byte) ([]byte, error) {
	if len(want) > blockSize || len(want) > len(suffix) {
		return nil, fmt.Errorf("%w: cannot inject %d bytes into a %d-byte suffix", crypto.ErrMalformedInput, len(want), len(suffix))
	}

	// Align the input to a block boundary, then add one sacrificial block
	// that absorbs the flips.
	fill := (blockSize - prefixLen%blockSize) % blockSize
	input := bytes.Repeat([]byte{'A'}, fill+blockSize)
	ct := o.Encrypt(input)
	offset := prefixLen + len(input)
	return FlipCBC(ct, offset, suffix[:len(want)], want)
}
