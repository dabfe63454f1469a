package attack

import (
	"github.com/VictiniX888/cryptopals/crypto"
)

// RecoverKeystream returns the keystream that turned known into ct, as far
// as both reach. Any other ciphertext made with the same key and nonce can
// be decrypted with it by ApplyKeystream.
func RecoverKeystream(ct, known []byte) []byte {
	n := min(len(ct), len(known))
	return crypto.XOR(nil, ct[:n], known[:n])
}

// ApplyKeystream XORs ct with ks, truncating to the shorter of the two.
func ApplyKeystream(ct, ks []byte) []byte {
	n := min(len(ct), len(ks))
	return crypto.XOR(nil, ct[:n], ks[:n])
}
