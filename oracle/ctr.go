package oracle

import (
	"crypto/cipher"
	"io"

	"github.com/VictiniX888/cryptopals/crypto"
)

// FixedNonceCTR encrypts every message under AES-CTR with the same key and
// an all-zero nonce, so all ciphertexts share one keystream.
type FixedNonceCTR struct {
	block cipher.Block
}

func NewFixedNonceCTR(rng io.Reader) (*FixedNonceCTR, error) {
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	return &FixedNonceCTR{block: c}, nil
}

func (o *FixedNonceCTR) Encrypt(pt []byte) []byte {
	ct := make([]byte, len(pt))
	crypto.NewCTR(o.block, make([]byte, crypto.NonceSize)).XORKeyStream(ct, pt)
	return ct
}
