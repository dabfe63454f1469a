package crypto_test

import (
	"bytes"
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/VictiniX888/cryptopals/crypto"
)

func randomBytes(t *testing.T, n int) []byte {
	t.Helper()
	buf := make([]byte, n)
	_, err := rand.Read(buf)
	require.NoError(t, err)
	return buf
}

func TestECBRoundTrip(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	for n := 0; n <= 64; n++ {
		pt := randomBytes(t, n)
		ct, err := crypto.EncryptECB(pt, key)
		require.NoError(t, err)
		require.Equal(t, crypto.PadLength(n, aes.BlockSize), len(ct))

		dec, err := crypto.DecryptECB(ct, key)
		require.NoError(t, err)
		got, err := crypto.Unpad(dec)
		require.NoError(t, err)
		require.Equal(t, pt, got)
	}
}

func TestECBMatchesBlockCipher(t *testing.T) {
	t.Parallel()
	key := []byte("YELLOW SUBMARINE")
	c, err := aes.NewCipher(key)
	require.NoError(t, err)
	pt := []byte("0123456789abcdef0123456789abcdef")
	ct, err := crypto.EncryptECB(pt, key)
	require.NoError(t, err)

	want := make([]byte, 16)
	c.Encrypt(want, pt[:16])
	assert.Equal(t, want, ct[:16])
	assert.Equal(t, ct[:16], ct[16:32], "equal plaintext blocks must encrypt equally")
	assert.True(t, crypto.DetectECB(ct))
	assert.Equal(t, 1, crypto.RepeatedBlocks(ct, 16))
}

func TestDecryptECBUnaligned(t *testing.T) {
	t.Parallel()
	_, err := crypto.DecryptECB(make([]byte, 17), make([]byte, 16))
	assert.ErrorIs(t, err, crypto.ErrMalformedInput)
}

func TestCBCRoundTrip(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	iv := randomBytes(t, 16)
	for n := 0; n <= 64; n++ {
		pt := randomBytes(t, n)
		ct, err := crypto.EncryptCBC(pt, key, iv)
		require.NoError(t, err)
		require.Equal(t, crypto.PadLength(n, aes.BlockSize), len(ct))
		got, err := crypto.DecryptCBC(ct, key, iv)
		require.NoError(t, err)
		require.Equal(t, pt, got)
	}
}

func TestCBCMatchesStandardLibrary(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	iv := randomBytes(t, 16)
	c, err := aes.NewCipher(key)
	require.NoError(t, err)
	pt := crypto.Pad(nil, randomBytes(t, 75), 16)

	want := make([]byte, len(pt))
	cipher.NewCBCEncrypter(c, iv).CryptBlocks(want, pt)
	got := make([]byte, len(pt))
	crypto.NewCBCEncrypter(c, iv).CryptBlocks(got, pt)
	assert.Equal(t, want, got)

	// Decrypt in place, the way the oracles do.
	crypto.NewCBCDecrypter(c, iv).CryptBlocks(got, got)
	assert.Equal(t, pt, got)
}

func TestCBCAlignedPlaintextGetsPaddingBlock(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	iv := randomBytes(t, 16)
	ct, err := crypto.EncryptCBC(bytes.Repeat([]byte{'x'}, 32), key, iv)
	require.NoError(t, err)
	assert.Len(t, ct, 48)
}

func TestDecryptCBCErrors(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	iv := randomBytes(t, 16)

	_, err := crypto.DecryptCBC(make([]byte, 20), key, iv)
	assert.ErrorIs(t, err, crypto.ErrMalformedInput)
	_, err = crypto.DecryptCBC(nil, key, iv)
	assert.ErrorIs(t, err, crypto.ErrMalformedInput)
	_, err = crypto.EncryptCBC([]byte("x"), key, iv[:8])
	assert.ErrorIs(t, err, crypto.ErrMalformedInput)

	// Flipping a bit of the IV corrupts the padding of a one-block message.
	ct, err := crypto.EncryptCBC([]byte("ICE ICE BABY"), key, iv)
	require.NoError(t, err)
	bad := make([]byte, len(iv))
	copy(bad, iv)
	bad[15] ^= 0x10
	_, err = crypto.DecryptCBC(ct, key, bad)
	assert.ErrorIs(t, err, crypto.ErrInvalidPadding)
}

func TestCTRKnownAnswer(t *testing.T) {
	t.Parallel()
	ct, err := base64.StdEncoding.DecodeString("L77na/nrFsKvynd6HzOoG7GHTLXsTVu9qvY/2syLXzhPweyyMTJULu/6/kXX0KSvoOLSFQ==")
	require.NoError(t, err)
	pt, err := crypto.DecryptCTR(ct, []byte("YELLOW SUBMARINE"), make([]byte, crypto.NonceSize))
	require.NoError(t, err)
	assert.Equal(t, "Yo, VIP Let's kick it Ice, Ice, baby Ice, Ice, baby ", string(pt))
}

func TestCTRRoundTrip(t *testing.T) {
	t.Parallel()
	key := randomBytes(t, 16)
	nonce := randomBytes(t, crypto.NonceSize)
	for _, n := range []int{0, 1, 15, 16, 17, 100} {
		pt := randomBytes(t, n)
		ct, err := crypto.EncryptCTR(pt, key, nonce)
		require.NoError(t, err)
		require.Len(t, ct, n)
		got, err := crypto.DecryptCTR(ct, key, nonce)
		require.NoError(t, err)
		require.Equal(t, pt, got)
	}
}

func TestCTREmpty(t *testing.T) {
	t.Parallel()
	ct, err := crypto.EncryptCTR(nil, randomBytes(t, 16), randomBytes(t, crypto.NonceSize))
	require.NoError(t, err)
	assert.Empty(t, ct)
}

func TestCTRBadNonce(t *testing.T) {
	t.Parallel()
	_, err := crypto.EncryptCTR([]byte("x"), randomBytes(t, 16), randomBytes(t, 16))
	assert.ErrorIs(t, err, crypto.ErrMalformedInput)
}

func TestCTRSeek(t *testing.T) {
	t.Parallel()
	c, err := aes.NewCipher(randomBytes(t, 16))
	require.NoError(t, err)
	nonce := randomBytes(t, crypto.NonceSize)
	ks := make([]byte, 100)
	crypto.NewCTR(c, nonce).XORKeyStream(ks, ks)

	for _, offsets := range [][]int{{0}, {5}, {16}, {37}, {3, 20}, {16, 16, 1}} {
		str := crypto.NewCTR(c, nonce)
		pos := 0
		for _, off := range offsets {
			str.Seek(off)
			pos += off
		}
		got := make([]byte, 20)
		str.XORKeyStream(got, got)
		assert.Equal(t, ks[pos:pos+20], got, "offsets %v", offsets)
	}
}

func TestCTRStreamChunks(t *testing.T) {
	t.Parallel()
	c, err := aes.NewCipher(randomBytes(t, 16))
	require.NoError(t, err)
	nonce := randomBytes(t, crypto.NonceSize)
	want := make([]byte, 64)
	crypto.NewCTR(c, nonce).XORKeyStream(want, want)

	str := crypto.NewCTR(c, nonce)
	got := make([]byte, 0, 64)
	for _, n := range []int{3, 13, 16, 1, 31} {
		chunk := make([]byte, n)
		str.XORKeyStream(chunk, chunk)
		got = append(got, chunk...)
	}
	assert.Equal(t, want, got)
}
