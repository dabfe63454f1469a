// Package crypto implements the block cipher modes and PKCS#7 padding that
// the attacks in this module are run against. The block permutation itself
// comes from crypto/aes; everything layered on top of it is deliberately
// naive.
package crypto

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidPadding is returned when a buffer does not end in valid
	// PKCS#7 padding.
	ErrInvalidPadding = errors.New("invalid padding")

	// ErrMalformedInput is returned when a ciphertext, IV or nonce has a
	// length the mode cannot accept.
	ErrMalformedInput = errors.New("malformed input")
)

// Mode classifies how an oracle encrypts its input. Only ECB is
// distinguishable from outside; CBC and CTR are both NonECB.
type Mode int

const (
	NonECB Mode = iota
	ECB
)

func (m Mode) String() string {
	if m == ECB {
		return "ECB"
	}
	return "non-ECB"
}

func XOR(buf, x, y []byte) []byte {
	if len(x) != len(y) {
		panic(fmt.Sprintf("buffers have different length: len(x) = %d, len(y) = %d", len(x), len(y)))
	}
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i := range x {
		buf[i] = x[i] ^ y[i]
	}
	return buf
}

// XORByte sets buf to x with every byte XORed with y.
func XORByte(buf, x []byte, y byte) []byte {
	n := len(x)
	if cap(buf) < n {
		buf = make([]byte, n)
	} else {
		buf = buf[:n]
	}
	for i, b := range x {
		buf[i] = b ^ y
	}
	return buf
}

// Blocks splits buf into consecutive slices of blockSize bytes. The slices
// alias buf. A trailing partial block is dropped.
func Blocks(buf []byte, blockSize int) [][]byte {
	blocks := make([][]byte, 0, len(buf)/blockSize)
	for i := 0; i+blockSize <= len(buf); i += blockSize {
		blocks = append(blocks, buf[i:i+blockSize])
	}
	return blocks
}
