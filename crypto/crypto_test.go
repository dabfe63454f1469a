package crypto_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/VictiniX888/cryptopals/crypto"
)

func TestXOR(t *testing.T) {
	t.Parallel()
	got := crypto.XOR(nil, []byte{0x0f, 0xf0, 0xaa}, []byte{0xff, 0xff, 0x55})
	assert.Equal(t, []byte{0xf0, 0x0f, 0xff}, got)
	assert.Panics(t, func() { crypto.XOR(nil, []byte{1}, []byte{1, 2}) })
}

func TestXORByte(t *testing.T) {
	t.Parallel()
	assert.Equal(t, []byte{0x03, 0x00, 0xfc}, crypto.XORByte(nil, []byte{0x00, 0x03, 0xff}, 0x03))

	// Writing into the tail of a larger buffer leaves the head alone.
	buf := []byte("abcd")
	got := crypto.XORByte(buf[2:], []byte{0x01, 0x02}, 0x10)
	assert.Equal(t, []byte{0x11, 0x12}, got)
	assert.Equal(t, []byte{'a', 'b', 0x11, 0x12}, buf)

	assert.Empty(t, crypto.XORByte(buf[4:], nil, 0x10))
}

func TestBlocks(t *testing.T) {
	t.Parallel()
	buf := []byte("0123456789")
	assert.Equal(t, [][]byte{[]byte("012"), []byte("345"), []byte("678")}, crypto.Blocks(buf, 3))
	assert.Empty(t, crypto.Blocks(buf[:2], 3))
}

func TestModeString(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "ECB", crypto.ECB.String())
	assert.Equal(t, "non-ECB", crypto.NonECB.String())
}
