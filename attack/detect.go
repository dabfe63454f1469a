package attack

import (
	"bytes"
	"fmt"

	"github.com/VictiniX888/cryptopals/crypto"
	"github.com/VictiniX888/cryptopals/oracle"
)

// DetectMode guesses whether o encrypts in ECB mode. It submits three blocks
// of zeros. If the oracle adds no more than one block of junk in front, the
// second and third ciphertext blocks cover plaintext made only of zeros and
// are equal exactly when each block is encrypted on its own.
func DetectMode(o oracle.Encrypter) (crypto.Mode, error) {
	ct := o.Encrypt(make([]byte, 3*blockSize))
	if len(ct) < 3*blockSize {
		return crypto.NonECB, fmt.Errorf("%w: %d-byte ciphertext for a %d-byte probe", ErrOracleContract, len(ct), 3*blockSize)
	}
	if bytes.Equal(ct[blockSize:2*blockSize], ct[2*blockSize:3*blockSize]) {
		return crypto.ECB, nil
	}
	return crypto.NonECB, nil
}

// FindECB returns the index of the ciphertext with the most repeated
// blocks, or -1 if none repeats.
func FindECB(cts [][]byte) int {
	best, bestPairs := -1, 0
	for i, ct := range cts {
		if len(ct)%blockSize != 0 {
			continue
		}
		if pairs := crypto.RepeatedBlocks(ct, blockSize); pairs > bestPairs {
			best, bestPairs = i, pairs
		}
	}
	return best
}
