// Package oracle builds the black boxes the attacks run against. Every
// oracle closes over a random key, and sometimes a prefix, suffix or IV,
// fixed when it is constructed. None of them expose the key.
//
// All oracles in this package are safe for concurrent use.
package oracle

import (
	"sync/atomic"
)

// Encrypter is an encryption oracle: it encrypts attacker-chosen bytes,
// possibly surrounded by hidden data, and returns the ciphertext.
// Implementations must not retain or modify pt.
type Encrypter interface {
	Encrypt(pt []byte) []byte
}

// EncrypterFunc adapts a function to the Encrypter interface.
type EncrypterFunc func(pt []byte) []byte

func (f EncrypterFunc) Encrypt(pt []byte) []byte { return f(pt) }

// PaddingOracle reports whether a ciphertext decrypts to a buffer with
// valid padding. Implementations must not retain or modify ct.
type PaddingOracle interface {
	ValidPadding(ct []byte) bool
}

// PaddingOracleFunc adapts a function to the PaddingOracle interface.
type PaddingOracleFunc func(ct []byte) bool

func (f PaddingOracleFunc) ValidPadding(ct []byte) bool { return f(ct) }

// Counter counts calls made through the oracles it wraps.
type Counter struct {
	calls atomic.Int64
}

// Encrypter returns e wrapped so each call is counted.
func (c *Counter) Encrypter(e Encrypter) Encrypter {
	return EncrypterFunc(func(pt []byte) []byte {
		c.calls.Add(1)
		return e.Encrypt(pt)
	})
}

// PaddingOracle returns p wrapped so each call is counted.
func (c *Counter) PaddingOracle(p PaddingOracle) PaddingOracle {
	return PaddingOracleFunc(func(ct []byte) bool {
		c.calls.Add(1)
		return p.ValidPadding(ct)
	})
}

// Calls returns the number of calls counted so far.
func (c *Counter) Calls() int64 {
	return c.calls.Load()
}
