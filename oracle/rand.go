package oracle

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
	"fmt"
	"io"
)

func randomBytes(rng io.Reader, n int) ([]byte, error) {
	buf := make([]byte, n)
	if _, err := io.ReadFull(rng, buf); err != nil {
		return nil, fmt.Errorf("reading %d random bytes: %w", n, err)
	}
	return buf, nil
}

// randomIntn returns a number in [0, n). The modulo bias is irrelevant for
// choosing junk lengths.
func randomIntn(rng io.Reader, n int) (int, error) {
	var buf [8]byte
	if _, err := io.ReadFull(rng, buf[:]); err != nil {
		return 0, fmt.Errorf("reading random number: %w", err)
	}
	return int(binary.LittleEndian.Uint64(buf[:]) % uint64(n)), nil
}

// randomCipher returns AES-128 under a fresh key.
func randomCipher(rng io.Reader) (cipher.Block, error) {
	key, err := randomBytes(rng, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	return aes.NewCipher(key)
}
