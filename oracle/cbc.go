package oracle

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"io"

	"github.com/VictiniX888/cryptopals/crypto"
)

// CBCPadding encrypts messages under AES-CBC with a fixed key and IV and
// answers whether a ciphertext decrypts with valid padding.
type CBCPadding struct {
	block cipher.Block
	iv    []byte
}

func NewCBCPadding(rng io.Reader) (*CBCPadding, error) {
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	iv, err := randomBytes(rng, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return &CBCPadding{block: c, iv: iv}, nil
}

// IV returns a copy of the oracle's IV, which is public.
func (o *CBCPadding) IV() []byte {
	return append([]byte(nil), o.iv...)
}

// Encrypt pads and encrypts pt.
func (o *CBCPadding) Encrypt(pt []byte) []byte {
	ct := crypto.Pad(nil, pt, aes.BlockSize)
	crypto.NewCBCEncrypter(o.block, o.iv).CryptBlocks(ct, ct)
	return ct
}

func (o *CBCPadding) ValidPadding(ct []byte) bool {
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return false
	}
	pt := make([]byte, len(ct))
	crypto.NewCBCDecrypter(o.block, o.iv).CryptBlocks(pt, ct)
	return crypto.ValidPadding(pt)
}

const (
	CommentPrefix = "comment1=cooking%20MCs;userdata="
	CommentSuffix = ";comment2=%20like%20a%20pound%20of%20bacon"
)

// Comments wraps user data in a fixed comment string and encrypts it under
// AES-CBC. Decryption checks for an admin marker the user could not have
// typed, since ';' and '=' are escaped on the way in.
type Comments struct {
	block cipher.Block
	iv    []byte
}

func NewComments(rng io.Reader) (*Comments, error) {
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	iv, err := randomBytes(rng, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return &Comments{block: c, iv: iv}, nil
}

// Encrypt returns the encryption of CommentPrefix || escaped userdata ||
// CommentSuffix.
func (o *Comments) Encrypt(userdata []byte) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(CommentPrefix)
	buf.WriteString(Escape(string(userdata), ";="))
	buf.WriteString(CommentSuffix)
	ct := crypto.Pad(nil, buf.Bytes(), aes.BlockSize)
	crypto.NewCBCEncrypter(o.block, o.iv).CryptBlocks(ct, ct)
	return ct
}

// Decrypt returns the comment string inside ct.
func (o *Comments) Decrypt(ct []byte) ([]byte, error) {
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return nil, crypto.ErrMalformedInput
	}
	pt := make([]byte, len(ct))
	crypto.NewCBCDecrypter(o.block, o.iv).CryptBlocks(pt, ct)
	return crypto.Unpad(pt)
}

// IsAdmin reports whether ct decrypts to a comment string containing the
// field admin=true.
func (o *Comments) IsAdmin(ct []byte) (bool, error) {
	pt, err := o.Decrypt(ct)
	if err != nil {
		return false, err
	}
	return bytes.Contains(pt, []byte(";admin=true;")), nil
}
