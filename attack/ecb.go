package attack

import (
	"bytes"
	"fmt"

	"github.com/VictiniX888/cryptopals/oracle"
)

// maxBlockSize bounds the probe used to discover the block size.
const maxBlockSize = 256

// DiscoverBlockSize feeds o increasingly long inputs until the ciphertext
// grows and returns the size of the step.
func DiscoverBlockSize(o oracle.Encrypter) (int, error) {
	bs, _, _, err := discoverGrowth(o)
	return bs, err
}

// discoverGrowth returns the block size, the smallest input length that adds
// a block to the ciphertext, and the ciphertext length for empty input.
func discoverGrowth(o oracle.Encrypter) (bs, grow, minLen int, err error) {
	zero := make([]byte, maxBlockSize)
	minLen = len(o.Encrypt(nil))
	for i := 1; i <= len(zero); i++ {
		if n := len(o.Encrypt(zero[:i])); n > minLen {
			return n - minLen, i, minLen, nil
		}
	}
	return 0, 0, 0, fmt.Errorf("%w: ciphertext did not grow after %d bytes of input", ErrOracleContract, len(zero))
}

// ecbLayout describes where attacker input lands in an ECB oracle's
// plaintext.
type ecbLayout struct {
	// fill is the number of bytes that pad the hidden prefix out to a block
	// boundary. It is in [1, blockSize]: an aligned prefix takes a whole
	// block of fill.
	fill int

	// start is the offset of the first block after prefix and fill.
	start int

	// suffixLen is the length of the hidden suffix.
	suffixLen int
}

// DecryptECBSuffix recovers the hidden suffix of an oracle computing
// ECB(prefix || input || suffix), where prefix and suffix are fixed and the
// prefix may be empty. It recovers one byte at a time by lining the
// unknown byte up at the end of a block and trying all 256 values.
//
// An oracle that is not ECB, or whose prefix or suffix changes between
// calls, yields an error wrapping ErrOracleContract.
func DecryptECBSuffix(o oracle.Encrypter, opts ...Option) ([]byte, error) {
	cfg := newConfig(opts)

	lay, err := findECBLayout(o)
	if err != nil {
		return nil, err
	}
	cfg.logger.Printf("ecb: prefix is %d bytes, suffix is %d bytes", lay.start-lay.fill, lay.suffixLen)

	// Encrypt the suffix behind zero prefixes of every length up to the
	// block size. cts[i] has the first suffix byte at offset i of the block
	// at lay.start.
	zero := make([]byte, lay.fill+blockSize)
	cts := make([][]byte, blockSize)
	for i := range cts {
		cts[i] = o.Encrypt(zero[:lay.fill+i])
	}

	// probe is the fill followed by one block whose first blockSize-1 bytes
	// slide over the plaintext recovered so far.
	probe := make([]byte, lay.fill+blockSize)
	scratch := probe[lay.fill:]
	pt := make([]byte, 0, lay.suffixLen)
	for i := 0; i < lay.suffixLen; i++ {
		blockIndex := i / blockSize
		byteIndex := i % blockSize

		// Pick the ciphertext where byte i is the last byte of its block.
		ct := cts[blockSize-byteIndex-1]
		off := lay.start + blockIndex*blockSize
		if len(ct) < off+blockSize {
			return nil, fmt.Errorf("%w: ciphertext too short to hold suffix byte %d", ErrOracleContract, i)
		}
		ctb := ct[off : off+blockSize]

		found := false
		for c := 0; c < 256 && !found; c++ {
			scratch[blockSize-1] = byte(c)
			db := o.Encrypt(probe)
			if len(db) >= lay.start+blockSize && bytes.Equal(db[lay.start:lay.start+blockSize], ctb) {
				pt = append(pt, byte(c))
				found = true
			}
		}
		if !found {
			return nil, fmt.Errorf("%w: no candidate matches suffix byte %d", ErrOracleContract, i)
		}
		if byteIndex == blockSize-1 {
			cfg.logger.Printf("ecb: recovered block %d", blockIndex)
		}

		copy(scratch[:blockSize-1], scratch[1:])
	}
	return pt, nil
}

func findECBLayout(o oracle.Encrypter) (ecbLayout, error) {
	bs, grow, minLen, err := discoverGrowth(o)
	if err != nil {
		return ecbLayout{}, err
	}
	if bs != blockSize {
		return ecbLayout{}, fmt.Errorf("%w: block size is %d, want %d", ErrOracleContract, bs, blockSize)
	}

	// Changing the first input byte changes the block it lands in and every
	// block after it, so the first difference is in the block where the
	// prefix ends. A one-byte input equal to the first suffix byte only
	// differs from the next byte on, so two values are tried.
	empty := o.Encrypt(nil)
	diff := -1
	for _, v := range []byte{0, 1} {
		d := firstDiff(empty, o.Encrypt([]byte{v}))
		if d >= 0 && (diff < 0 || d < diff) {
			diff = d
		}
	}
	if diff < 0 {
		return ecbLayout{}, fmt.Errorf("%w: input does not affect the ciphertext", ErrOracleContract)
	}
	offset := diff / blockSize * blockSize

	// Find how much fill completes the prefix block: with it, two more
	// blocks of one repeated byte encrypt to two equal blocks. A suffix
	// starting with that byte makes a smaller fill look complete, and it
	// cannot start with both, so the larger answer of two runs is right.
	// No fill doing so means the oracle is not ECB.
	var fill int
	for _, v := range []byte{0, 1} {
		k, err := findFill(o, offset, v)
		if err != nil {
			return ecbLayout{}, err
		}
		fill = max(fill, k)
	}

	start := offset + blockSize
	suffixLen := minLen - grow - (start - fill)
	if suffixLen < 0 {
		return ecbLayout{}, fmt.Errorf("%w: inconsistent lengths (prefix %d, total %d)", ErrOracleContract, start-fill, minLen-grow)
	}
	return ecbLayout{fill: fill, start: start, suffixLen: suffixLen}, nil
}

// findFill returns the smallest k for which k+2*blockSize copies of v
// produce two equal ciphertext blocks right after the block at offset.
func findFill(o oracle.Encrypter, offset int, v byte) (int, error) {
	for k := 1; k <= blockSize; k++ {
		ct := o.Encrypt(bytes.Repeat([]byte{v}, k+2*blockSize))
		if len(ct) < offset+3*blockSize {
			return 0, fmt.Errorf("%w: %d-byte ciphertext for %d bytes of input", ErrOracleContract, len(ct), k+2*blockSize)
		}
		if bytes.Equal(ct[offset+blockSize:offset+2*blockSize], ct[offset+2*blockSize:offset+3*blockSize]) {
			return k, nil
		}
	}
	return 0, fmt.Errorf("%w: no repeated blocks, oracle is not ECB", ErrOracleContract)
}

func firstDiff(a, b []byte) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if a[i] != b[i] {
			return i
		}
	}
	return -1
}
