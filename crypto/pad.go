package crypto

import (
	"fmt"
)

// PadLength returns the length of an n-byte message after PKCS#7 padding to
// blockSize. The result is always greater than n: a message that is already
// aligned gets a full block of padding.
func PadLength(n, blockSize int) int {
	return n + blockSize - n%blockSize
}

// Pad appends src followed by PKCS#7 padding to dst[:0] and returns the
// result. dst may alias src as long as it starts at the same address.
func Pad(dst, src []byte, blockSize int) []byte {
	if blockSize < 1 || blockSize > 255 {
		panic(fmt.Sprintf("block size %d out of range [1, 255]", blockSize))
	}
	n := PadLength(len(src), blockSize)
	if cap(dst) < n {
		buf := make([]byte, len(src), n)
		copy(buf, src)
		dst = buf
	} else {
		dst = dst[:len(src)]
		copy(dst, src)
	}
	p := byte(n - len(src))
	for len(dst) < n {
		dst = append(dst, p)
	}
	return dst
}

// Unpad returns buf with its PKCS#7 padding removed. The returned slice
// aliases buf. An error wrapping ErrInvalidPadding is returned if the last
// byte is zero, larger than the buffer, or not repeated that many times.
func Unpad(buf []byte) ([]byte, error) {
	if len(buf) == 0 {
		return nil, fmt.Errorf("%w: empty buffer", ErrInvalidPadding)
	}
	p := buf[len(buf)-1]
	if p == 0 {
		return nil, fmt.Errorf("%w: last byte is zero", ErrInvalidPadding)
	}
	n := int(p)
	if n > len(buf) {
		return nil, fmt.Errorf("%w: padding length %d exceeds buffer length %d", ErrInvalidPadding, n, len(buf))
	}
	for _, b := range buf[len(buf)-n:] {
		if b != p {
			return nil, fmt.Errorf("%w: expected %d bytes of %#02x", ErrInvalidPadding, n, p)
		}
	}
	return buf[:len(buf)-n], nil
}

// ValidPadding reports whether buf ends in valid PKCS#7 padding.
func ValidPadding(buf []byte) bool {
	_, err := Unpad(buf)
	return err == nil
}
