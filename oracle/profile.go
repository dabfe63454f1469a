package oracle

import (
	"crypto/aes"
	"crypto/cipher"
	"fmt"
	"io"

	"github.com/VictiniX888/cryptopals/crypto"
)

// Profile is a user record as stored in an encrypted cookie.
type Profile struct {
	Email, UID, Role string
}

// ProfileFor returns the query string for a new user with the given email.
func ProfileFor(email string) string {
	return EncodeQuery([]Pair{
		{"email", email},
		{"uid", "10"},
		{"role", "user"},
	})
}

// ProfileEncrypter is the part of Profiles an attacker can reach: it hands
// out encrypted profiles for any email.
type ProfileEncrypter interface {
	EncryptProfile(email string) []byte
}

// Profiles encrypts and decrypts profile cookies under AES-ECB.
type Profiles struct {
	enc, dec cipher.BlockMode
}

func NewProfiles(rng io.Reader) (*Profiles, error) {
	c, err := randomCipher(rng)
	if err != nil {
		return nil, err
	}
	return &Profiles{
		enc: crypto.NewECBEncrypter(c),
		dec: crypto.NewECBDecrypter(c),
	}, nil
}

func (o *Profiles) EncryptProfile(email string) []byte {
	ct := crypto.Pad(nil, []byte(ProfileFor(email)), aes.BlockSize)
	o.enc.CryptBlocks(ct, ct)
	return ct
}

// DecryptProfile decrypts and parses a profile cookie.
func (o *Profiles) DecryptProfile(ct []byte) (Profile, error) {
	if len(ct) == 0 || len(ct)%aes.BlockSize != 0 {
		return Profile{}, crypto.ErrMalformedInput
	}
	pt := make([]byte, len(ct))
	o.dec.CryptBlocks(pt, ct)
	pt, err := crypto.Unpad(pt)
	if err != nil {
		return Profile{}, err
	}
	pairs, err := ParseQuery(string(pt))
	if err != nil {
		return Profile{}, err
	}
	var p Profile
	for _, pair := range pairs {
		switch pair.Key {
		case "email":
			p.Email = pair.Value
		case "uid":
			p.UID = pair.Value
		case "role":
			p.Role = pair.Value
		default:
			return Profile{}, fmt.Errorf("unknown key: %s", pair.Key)
		}
	}
	return p, nil
}
