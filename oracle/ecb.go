package oracle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/VictiniX888/cryptopals/crypto"
)

// MaxRandomPrefix is the longest prefix NewRandomECBSuffix will pick.
const MaxRandomPrefix = 64

// ECBSuffix encrypts prefix || pt || suffix under AES-ECB, where prefix and
// suffix are fixed and hidden.
type ECBSuffix struct {
	enc            cipher.BlockMode
	prefix, suffix []byte
}

// NewECBSuffix returns an oracle with a random key and prefixLen random
// prefix bytes that hides suffix.
func NewECBSuffix(rng io.Reader, prefixLen int, suffix []byte) (*ECBSuffix, error) {
	if prefixLen < 0 {
		return nil, fmt.Errorf("negative prefix length %d", prefixLen)
	}
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	prefix, err := randomBytes(rng, prefixLen)
	if err != nil {
		return nil, err
	}
	return &ECBSuffix{
		enc:    crypto.NewECBEncrypter(c),
		prefix: prefix,
		suffix: append([]byte(nil), suffix...),
	}, nil
}

// NewRandomECBSuffix is NewECBSuffix with a prefix length chosen uniformly
// from [0, MaxRandomPrefix].
func NewRandomECBSuffix(rng io.Reader, suffix []byte) (*ECBSuffix, error) {
	n, err := randomIntn(rng, MaxRandomPrefix+1)
	if err != nil {
		return nil, err
	}
	return NewECBSuffix(rng, n, suffix)
}

func (o *ECBSuffix) Encrypt(pt []byte) []byte {
	ptLen := len(o.prefix) + len(pt) + len(o.suffix)
	buf := make([]byte, 0, crypto.PadLength(ptLen, aes.BlockSize))
	buf = append(buf, o.prefix...)
	buf = append(buf, pt...)
	buf = append(buf, o.suffix...)
	buf = crypto.Pad(buf[:0], buf, aes.BlockSize)
	o.enc.CryptBlocks(buf, buf)
	return buf
}

// RandomMode surrounds its input with 5 to 10 random bytes on each side and
// encrypts it under either ECB or CBC, chosen when it is built.
type RandomMode struct {
	mode       crypto.Mode
	block      cipher.Block
	iv         []byte
	head, tail []byte
}

// NewRandomMode flips a coin between ECB and CBC and picks a random key, IV
// and junk.
func NewRandomMode(rng io.Reader) (*RandomMode, error) {
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	iv, err := randomBytes(rng, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	coin, err := randomIntn(rng, 2)
	if err != nil {
		return nil, err
	}
	o := &RandomMode{mode: crypto.NonECB, block: c, iv: iv}
	if coin == 0 {
		o.mode = crypto.ECB
	}
	if o.head, err = randomJunk(rng); err != nil {
		return nil, err
	}
	if o.tail, err = randomJunk(rng); err != nil {
		return nil, err
	}
	return o, nil
}

func randomJunk(rng io.Reader) ([]byte, error) {
	n, err := randomIntn(rng, 6)
	if err != nil {
		return nil, err
	}
	return randomBytes(rng, 5+n)
}

// Mode reports crypto.ECB or, for CBC, crypto.NonECB, so a guess can be
// checked.
func (o *RandomMode) Mode() crypto.Mode {
	return o.mode
}

func (o *RandomMode) Encrypt(pt []byte) []byte {
	buf := make([]byte, 0, len(o.head)+len(pt)+len(o.tail)+aes.BlockSize)
	buf = append(buf, o.head...)
	buf = append(buf, pt...)
	buf = append(buf, o.tail...)
	buf = crypto.Pad(buf[:0], buf, aes.BlockSize)

	var enc cipher.BlockMode
	if o.mode == crypto.ECB {
		enc = crypto.NewECBEncrypter(o.block)
	} else {
		enc = crypto.NewCBCEncrypter(o.block, o.iv)
	}
	enc.CryptBlocks(buf, buf)
	return buf
}
