package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

type ecbCrypter struct {
	blockSize int
	crypt     func(dst, src []byte)
}

func NewECBEncrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Encrypt,
	}
}

func NewECBDecrypter(c cipher.Block) cipher.BlockMode {
	return &ecbCrypter{
		blockSize: c.BlockSize(),
		crypt:     c.Decrypt,
	}
}

func (cr *ecbCrypter) BlockSize() int {
	return cr.blockSize
}

func (cr *ecbCrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.blockSize
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", n, bs))
	}

	for i := 0; i < n; i += bs {
		cr.crypt(dst[i:i+bs], src[i:i+bs])
	}
}

// EncryptECB pads pt and encrypts it with AES in ECB mode.
func EncryptECB(pt, key []byte) ([]byte, error) {
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	ct := Pad(nil, pt, aes.BlockSize)
	NewECBEncrypter(c).CryptBlocks(ct, ct)
	return ct, nil
}

// DecryptECB decrypts ct with AES in ECB mode. Padding is left in place;
// callers that expect it strip it with Unpad.
func DecryptECB(ct, key []byte) ([]byte, error) {
	if len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d not a multiple of %d", ErrMalformedInput, len(ct), aes.BlockSize)
	}
	c, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewECBDecrypter(c).CryptBlocks(pt, ct)
	return pt, nil
}

// DetectECB reports whether any 16-byte block of ct repeats.
func DetectECB(ct []byte) bool {
	return RepeatedBlocks(ct, aes.BlockSize) > 0
}

// RepeatedBlocks counts the pairs of equal blocks in ct.
func RepeatedBlocks(ct []byte, blockSize int) int {
	if len(ct)%blockSize != 0 {
		panic(fmt.Sprintf("ciphertext length (%d) not a multiple of block size", len(ct)))
	}
	seen := make(map[string]int)
	pairs := 0
	s := string(ct)
	for i := 0; i < len(ct); i += blockSize {
		b := s[i : i+blockSize]
		pairs += seen[b]
		seen[b]++
	}
	return pairs
}
