package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
)

// NonceSize is the length of a CTR nonce: half of the AES block. The other
// half holds the block counter.
const NonceSize = aes.BlockSize / 2

// CTRStream is a cipher.Stream producing the keystream
// E(nonce || le64(0)), E(nonce || le64(1)), ...
type CTRStream struct {
	block cipher.Block

	// in is the next block that, when encrypted, becomes the keystream. Its
	// first half is the nonce, its second half the little-endian counter.
	in []byte

	// counter is the block index encoded in the second half of in.
	counter uint64

	// out is the next keystream block.
	out []byte

	// off is the number of bytes in out that have been consumed.
	off int
}

// NewCTR returns a stream for the given nonce, starting at counter 0.
// Reusing a nonce with the same key for two messages leaks their XOR; the
// stream does not guard against it.
func NewCTR(block cipher.Block, nonce []byte) *CTRStream {
	bs := block.BlockSize()
	if bs != aes.BlockSize {
		panic(fmt.Sprintf("block.BlockSize() is %d; must be %d", bs, aes.BlockSize))
	}
	if len(nonce) != NonceSize {
		panic(fmt.Sprintf("len(nonce) is %d; must be %d", len(nonce), NonceSize))
	}
	in := make([]byte, bs)
	copy(in, nonce)
	cs := &CTRStream{
		block: block,
		in:    in,
		out:   make([]byte, bs),
	}
	cs.load()
	return cs
}

func (cs *CTRStream) XORKeyStream(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("len(dst) (%d) less than len(src) (%d)", len(dst), len(src)))
	}

	bs := len(cs.in)
	for len(src) > 0 {
		if cs.off == bs {
			cs.counter++
			cs.load()
		}
		n := bs - cs.off
		if len(src) < n {
			n = len(src)
		}
		XOR(dst[:n], src[:n], cs.out[cs.off:cs.off+n])
		dst = dst[n:]
		src = src[n:]
		cs.off += n
	}
}

// Seek advances the stream by offset bytes.
func (cs *CTRStream) Seek(offset int) {
	if offset < 0 {
		panic(fmt.Sprintf("cannot seek backward with offset %d", offset))
	}
	bs := len(cs.in)
	pos := cs.counter*uint64(bs) + uint64(cs.off) + uint64(offset)
	cs.counter = pos / uint64(bs)
	cs.load()
	cs.off = int(pos % uint64(bs))
}

// load encrypts the current counter block into out and resets off.
func (cs *CTRStream) load() {
	binary.LittleEndian.PutUint64(cs.in[NonceSize:], cs.counter)
	cs.block.Encrypt(cs.out, cs.in)
	cs.off = 0
}

// EncryptCTR XORs pt with the AES-CTR keystream for key and nonce. The
// output has the same length as pt.
func EncryptCTR(pt, key, nonce []byte) ([]byte, error) {
	if len(nonce) != NonceSize {
		return nil, fmt.Errorf("%w: nonce length %d, want %d", ErrMalformedInput, len(nonce), NonceSize)
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	out := make([]byte, len(pt))
	NewCTR(c, nonce).XORKeyStream(out, pt)
	return out, nil
}

// DecryptCTR is EncryptCTR; the mode is its own inverse.
func DecryptCTR(ct, key, nonce []byte) ([]byte, error) {
	return EncryptCTR(ct, key, nonce)
}
