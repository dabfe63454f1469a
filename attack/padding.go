package attack

import (
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/VictiniX888/cryptopals/crypto"
	"github.com/VictiniX888/cryptopals/oracle"
)

// DecryptCBC recovers the plaintext of a CBC ciphertext from a padding
// oracle alone. Each block is attacked through a forged predecessor: the
// oracle accepts the pair only when the decrypted block ends in valid
// padding, which reveals the block cipher's output one byte at a time.
//
// Blocks are independent and are solved WithWorkers at a time. The result
// has its padding stripped.
func DecryptCBC(ct, iv []byte, o oracle.PaddingOracle, opts ...Option) ([]byte, error) {
	if len(ct) == 0 || len(ct)%blockSize != 0 {
		return nil, fmt.Errorf("%w: ciphertext length %d not a positive multiple of %d", crypto.ErrMalformedInput, len(ct), blockSize)
	}
	if len(iv) != blockSize {
		return nil, fmt.Errorf("%w: iv length %d, want %d", crypto.ErrMalformedInput, len(iv), blockSize)
	}
	cfg := newConfig(opts)

	blocks := crypto.Blocks(ct, blockSize)
	pt := make([]byte, len(ct))
	g := &errgroup.Group{}
	g.SetLimit(cfg.workers)
	for i, cur := range blocks {
		i, cur := i, cur
		prev := iv
		if i > 0 {
			prev = blocks[i-1]
		}
		g.Go(func() error {
			ptb, err := decryptBlock(o, prev, cur)
			if err != nil {
				return fmt.Errorf("block %d: %w", i, err)
			}
			copy(pt[i*blockSize:], ptb)
			cfg.logger.Printf("padding oracle: recovered block %d of %d", i+1, len(blocks))
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return crypto.Unpad(pt)
}

// decryptBlock recovers the plaintext of cur, whose predecessor in the
// chain is prev.
func decryptBlock(o oracle.PaddingOracle, prev, cur []byte) ([]byte, error) {
	// probe is a forged predecessor followed by cur. inter collects the
	// block cipher's decryption of cur, from the last byte backwards.
	probe := make([]byte, 2*blockSize)
	forged := probe[:blockSize]
	copy(forged, prev)
	copy(probe[blockSize:], cur)
	inter := make([]byte, blockSize)

	for p := blockSize - 1; p >= 0; p-- {
		pad := byte(blockSize - p)

		// Make every solved byte decrypt to the new padding value.
		crypto.XORByte(forged[p+1:], inter[p+1:], pad)

		found := false
		for b := 0; b < 256 && !found; b++ {
			forged[p] = byte(b)
			if !o.ValidPadding(probe) {
				continue
			}
			if p == blockSize-1 {
				// The last byte may have completed a longer padding such as
				// 02 02. Disturbing the byte before it only keeps the
				// padding valid if the padding is 01.
				forged[p-1] ^= 1
				ok := o.ValidPadding(probe)
				forged[p-1] ^= 1
				if !ok {
					continue
				}
			}
			inter[p] = byte(b) ^ pad
			found = true
		}
		if !found {
			return nil, fmt.Errorf("%w: no byte value gives valid padding at position %d", ErrOracleContract, p)
		}
	}
	return crypto.XOR(nil, inter, prev), nil
}
