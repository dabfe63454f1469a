package crypto

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
)

type cbcEncrypter struct {
	c  cipher.Block
	cb []byte
}

func NewCBCEncrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != c.BlockSize() {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), c.BlockSize()))
	}
	cb := make([]byte, len(iv))
	copy(cb, iv)
	return &cbcEncrypter{
		c:  c,
		cb: cb,
	}
}

func (cr *cbcEncrypter) BlockSize() int {
	return cr.c.BlockSize()
}

func (cr *cbcEncrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	tmp := make([]byte, bs)
	for i := 0; i < n; i += bs {
		XOR(tmp, src[i:i+bs], cr.cb)
		cr.c.Encrypt(dst[i:i+bs], tmp)
		copy(cr.cb, dst[i:i+bs])
	}
}

type cbcDecrypter struct {
	c  cipher.Block
	cb []byte
}

func NewCBCDecrypter(c cipher.Block, iv []byte) cipher.BlockMode {
	if len(iv) != c.BlockSize() {
		panic(fmt.Sprintf("iv length is not block size: len(iv) = %d, block size = %d", len(iv), c.BlockSize()))
	}
	cb := make([]byte, len(iv))
	copy(cb, iv)
	return &cbcDecrypter{
		c:  c,
		cb: cb,
	}
}

func (cr *cbcDecrypter) BlockSize() int {
	return cr.c.BlockSize()
}

// CryptBlocks decrypts src into dst. dst and src may overlap exactly.
func (cr *cbcDecrypter) CryptBlocks(dst, src []byte) {
	if len(dst) < len(src) {
		panic(fmt.Sprintf("dst is shorter than src: len(dst) = %d, len(src) = %d", len(dst), len(src)))
	}
	n := len(src)
	bs := cr.c.BlockSize()
	if n%bs != 0 {
		panic(fmt.Sprintf("src not a multiple of block size: len(src) = %d, block size = %d", len(src), bs))
	}

	dec := make([]byte, bs)
	next := make([]byte, bs)
	for i := 0; i < n; i += bs {
		copy(next, src[i:i+bs])
		cr.c.Decrypt(dec, next)
		XOR(dst[i:i+bs], dec, cr.cb)
		cr.cb, next = next, cr.cb
	}
}

// EncryptCBC pads pt and encrypts it with AES in CBC mode.
func EncryptCBC(pt, key, iv []byte) ([]byte, error) {
	c, err := newCBCCipher(key, iv)
	if err != nil {
		return nil, err
	}
	ct := Pad(nil, pt, aes.BlockSize)
	NewCBCEncrypter(c, iv).CryptBlocks(ct, ct)
	return ct, nil
}

// DecryptCBC decrypts ct with AES in CBC mode and strips the padding. A
// padding failure is reported as ErrInvalidPadding; this is the signal a
// padding oracle leaks.
func DecryptCBC(ct, key, iv []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d not a positive multiple of %d", ErrMalformedInput, len(ct), aes.BlockSize)
	}
	c, err := newCBCCipher(key, iv)
	if err != nil {
		return nil, err
	}
	pt := make([]byte, len(ct))
	NewCBCDecrypter(c, iv).CryptBlocks(pt, ct)
	return Unpad(pt)
}

func newCBCCipher(key, iv []byte) (cipher.Block, error) {
	if len(iv) != aes.BlockSize {
		return nil, fmt.Errorf("%w: iv length %d, want %d", ErrMalformedInput, len(iv), aes.BlockSize)
	}
	return aes.NewCipher(key)
}
