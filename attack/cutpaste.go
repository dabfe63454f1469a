package attack

import (
	"bytes"
	"fmt"

	"github.com/VictiniX888/cryptopals/crypto"
	"github.com/VictiniX888/cryptopals/oracle"
)

// Layout of oracle.ProfileFor around the email and role values.
const (
	profileHead = "email="
	profileMid  = "&uid=10&role="
)

// CutAndPasteAdmin builds an ECB profile cookie for role=admin out of two
// honest ones. The first places "admin" plus valid padding alone in a
// block; the second ends a block right before the role value, whose block
// is then replaced.
func CutAndPasteAdmin(o oracle.ProfileEncrypter) ([]byte, error) {
	// Fill the first block so the admin block starts on a boundary.
	fill := blockSize - len(profileHead)%blockSize
	admin := crypto.Pad(nil, []byte("admin"), blockSize)
	email := string(bytes.Repeat([]byte{'a'}, fill)) + string(admin)
	ct := o.EncryptProfile(email)
	off := len(profileHead) + fill
	if len(ct) < off+blockSize {
		return nil, fmt.Errorf("%w: %d-byte profile cookie", ErrOracleContract, len(ct))
	}
	adminBlock := ct[off : off+blockSize]

	// Pick an email length that puts "role=" at the end of a block.
	n := len(profileHead) + len(profileMid)
	emailLen := (blockSize - n%blockSize) % blockSize
	if emailLen < len("@b.c") {
		emailLen += blockSize
	}
	email = string(bytes.Repeat([]byte{'a'}, emailLen-len("@b.c"))) + "@b.c"
	ct = o.EncryptProfile(email)
	keep := n + emailLen
	if len(ct) < keep+blockSize {
		return nil, fmt.Errorf("%w: %d-byte profile cookie", ErrOracleContract, len(ct))
	}

	forged := make([]byte, 0, keep+blockSize)
	forged = append(forged, ct[:keep]...)
	forged = append(forged, adminBlock...)
	return forged, nil
}
